package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/recepcao-visitantes/internal/httperr"
	"github.com/BruksfildServices01/recepcao-visitantes/internal/httpresp"
	ucVisitor "github.com/BruksfildServices01/recepcao-visitantes/internal/usecase/visitor"
)

type RoomsHandler struct {
	statusUC *ucVisitor.RoomStatus
}

func NewRoomsHandler(statusUC *ucVisitor.RoomStatus) *RoomsHandler {
	return &RoomsHandler{statusUC: statusUC}
}

func (h *RoomsHandler) Status(c *gin.Context) {
	status, err := h.statusUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "room_status_failed", "Erro ao consultar as salas.")
		return
	}

	httpresp.List(c, status)
}
