package handlers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/recepcao-visitantes/internal/audit"
	"github.com/BruksfildServices01/recepcao-visitantes/internal/httperr"
	"github.com/BruksfildServices01/recepcao-visitantes/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type SystemLogsHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewSystemLogsHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *SystemLogsHandler {
	return &SystemLogsHandler{db: db, audit: dispatcher}
}

func (h *SystemLogsHandler) List(c *gin.Context) {
	actor, err := resolveActor(h.db, c)
	if err != nil {
		httperr.Internal(c, "user_not_found", "Erro interno do servidor.")
		return
	}

	action := c.Query("action")
	userID := c.Query("userId")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if limit <= 0 {
		limit = 100
	}
	if limit > 1000 {
		limit = 1000
	}

	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if offset < 0 {
		offset = 0
	}

	// --------------------------------------------------
	// Filtros opcionais
	// --------------------------------------------------

	q := h.db.Model(&models.SystemLog{})

	if action != "" {
		q = q.Where("action = ?", action)
	}

	if userID != "" {
		q = q.Where("user_id = ?", userID)
	}

	// --------------------------------------------------
	// Total + listagem
	// --------------------------------------------------

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "logs_count_failed", "Erro ao contar logs.")
		return
	}

	var logs []models.SystemLog
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error; err != nil {

		httperr.Internal(c, "logs_list_failed", "Erro ao listar logs.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:   actor,
		Origin:  originFrom(c),
		Action:  audit.ActionViewSystemLogs,
		Details: fmt.Sprintf("Logs do sistema acessados - %d de %d registros", len(logs), total),
	})

	c.JSON(200, gin.H{
		"logs":     logs,
		"total":    total,
		"limit":    limit,
		"offset":   offset,
		"has_more": int64(offset+len(logs)) < total,
	})
}
