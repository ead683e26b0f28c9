package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/recepcao-visitantes/internal/audit"
	"github.com/BruksfildServices01/recepcao-visitantes/internal/middleware"
	"github.com/BruksfildServices01/recepcao-visitantes/internal/models"
)

// resolveActor carrega o usuário autenticado para compor a auditoria.
func resolveActor(db *gorm.DB, c *gin.Context) (audit.Actor, error) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var user models.User
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return audit.Actor{}, err
	}

	return audit.Actor{
		ID:   user.ID,
		Name: user.Name,
		CPF:  user.CPF,
	}, nil
}

func originFrom(c *gin.Context) audit.Origin {
	return audit.Origin{
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
}
