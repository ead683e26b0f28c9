package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/recepcao-visitantes/internal/cache"
	"github.com/BruksfildServices01/recepcao-visitantes/internal/httperr"
	ucVisitor "github.com/BruksfildServices01/recepcao-visitantes/internal/usecase/visitor"
)

// ======================================================
// HANDLER
// ======================================================

type VisitorHandler struct {
	db    *gorm.DB
	cache *cache.OccupancyCache

	registerUC *ucVisitor.RegisterVisitor
	checkInUC  *ucVisitor.CheckInVisitor
	checkOutUC *ucVisitor.CheckOutVisitor
	deleteUC   *ucVisitor.DeleteVisitor
	listUC     *ucVisitor.ListVisitors
	searchUC   *ucVisitor.SearchVisitors
	historyUC  *ucVisitor.VisitHistory
}

func NewVisitorHandler(
	db *gorm.DB,
	occupancyCache *cache.OccupancyCache,
	registerUC *ucVisitor.RegisterVisitor,
	checkInUC *ucVisitor.CheckInVisitor,
	checkOutUC *ucVisitor.CheckOutVisitor,
	deleteUC *ucVisitor.DeleteVisitor,
	listUC *ucVisitor.ListVisitors,
	searchUC *ucVisitor.SearchVisitors,
	historyUC *ucVisitor.VisitHistory,
) *VisitorHandler {
	return &VisitorHandler{
		db:         db,
		cache:      occupancyCache,
		registerUC: registerUC,
		checkInUC:  checkInUC,
		checkOutUC: checkOutUC,
		deleteUC:   deleteUC,
		listUC:     listUC,
		searchUC:   searchUC,
		historyUC:  historyUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateVisitorRequest struct {
	Name           string `json:"name"`
	CPF            string `json:"cpf"`
	SalaDestino    string `json:"sala_destino"`
	DataNascimento string `json:"data_nascimento"` // YYYY-MM-DD
	Email          string `json:"email"`
}

// ======================================================
// ERROS
// ======================================================

func writeVisitorError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "invalid_name"):
		httperr.BadRequest(c, "invalid_name", "Nome é obrigatório.")
	case httperr.IsBusiness(err, "invalid_cpf"):
		httperr.BadRequest(c, "invalid_cpf", "CPF deve ter entre 10 e 14 dígitos.")
	case httperr.IsBusiness(err, "invalid_room"):
		httperr.BadRequest(c, "invalid_room", "Sala destino inválida.")
	case httperr.IsBusiness(err, "invalid_email"):
		httperr.BadRequest(c, "invalid_email", "Email inválido.")
	case httperr.IsBusiness(err, "room_full"):
		httperr.BadRequest(c, "room_full", "A sala já possui 3 visitantes ativos. Limite máximo atingido.")
	case httperr.IsBusiness(err, "already_active"):
		httperr.BadRequest(c, "already_active", "Visitante já está com check-in ativo.")
	case httperr.IsBusiness(err, "already_checked_out"):
		httperr.BadRequest(c, "already_checked_out", "Visitante já fez checkout.")
	case httperr.IsBusiness(err, "visitor_active"):
		httperr.BadRequest(c, "visitor_active", "Não é possível excluir um visitante ativo. Faça o checkout primeiro.")
	case httperr.IsBusiness(err, "visitor_not_found"):
		httperr.NotFound(c, "visitor_not_found", "Visitante não encontrado.")
	case httperr.IsUniqueViolation(err) || httperr.IsExclusionConflict(err):
		// Corrida perdida no banco: a invariante segurou a escrita.
		httperr.BadRequest(c, "conflict", "Operação conflitou com outra requisição. Tente novamente.")
	default:
		httperr.Internal(c, "internal_error", "Erro interno do servidor.")
	}
}

// ======================================================
// CREATE
// ======================================================

func (h *VisitorHandler) Create(c *gin.Context) {
	actor, err := resolveActor(h.db, c)
	if err != nil {
		httperr.Internal(c, "user_not_found", "Erro interno do servidor.")
		return
	}

	var req CreateVisitorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var dataNascimento *time.Time
	if req.DataNascimento != "" {
		parsed, err := time.Parse("2006-01-02", req.DataNascimento)
		if err != nil {
			httperr.BadRequest(c, "invalid_birth_date", "Data de nascimento inválida.")
			return
		}
		dataNascimento = &parsed
	}

	v, err := h.registerUC.Execute(c.Request.Context(), actor, originFrom(c), ucVisitor.RegisterVisitorInput{
		Name:           req.Name,
		CPF:            req.CPF,
		SalaDestino:    req.SalaDestino,
		DataNascimento: dataNascimento,
		Email:          req.Email,
	})
	if err != nil {
		writeVisitorError(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context())

	c.JSON(201, gin.H{"visitor": v})
}

// ======================================================
// LIST
// ======================================================

func (h *VisitorHandler) List(c *gin.Context) {
	actor, err := resolveActor(h.db, c)
	if err != nil {
		httperr.Internal(c, "user_not_found", "Erro interno do servidor.")
		return
	}

	activeOnly := c.Query("active") == "true"

	visitors, err := h.listUC.Execute(c.Request.Context(), actor, originFrom(c), activeOnly)
	if err != nil {
		writeVisitorError(c, err)
		return
	}

	c.JSON(200, gin.H{"visitors": visitors})
}

// ======================================================
// CHECK-IN
// ======================================================

func (h *VisitorHandler) CheckIn(c *gin.Context) {
	actor, err := resolveActor(h.db, c)
	if err != nil {
		httperr.Internal(c, "user_not_found", "Erro interno do servidor.")
		return
	}

	id := c.Param("id")

	v, err := h.checkInUC.Execute(c.Request.Context(), actor, originFrom(c), id)
	if err != nil {
		writeVisitorError(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context())

	c.JSON(200, gin.H{"visitor": v})
}

// ======================================================
// CHECKOUT
// ======================================================

func (h *VisitorHandler) CheckOut(c *gin.Context) {
	actor, err := resolveActor(h.db, c)
	if err != nil {
		httperr.Internal(c, "user_not_found", "Erro interno do servidor.")
		return
	}

	id := c.Param("id")

	v, err := h.checkOutUC.Execute(c.Request.Context(), actor, originFrom(c), id)
	if err != nil {
		writeVisitorError(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context())

	c.JSON(200, gin.H{"visitor": v})
}

// ======================================================
// DELETE
// ======================================================

func (h *VisitorHandler) Delete(c *gin.Context) {
	actor, err := resolveActor(h.db, c)
	if err != nil {
		httperr.Internal(c, "user_not_found", "Erro interno do servidor.")
		return
	}

	id := c.Param("id")

	deleted, err := h.deleteUC.Execute(c.Request.Context(), actor, originFrom(c), id)
	if err != nil {
		writeVisitorError(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context())

	c.JSON(200, gin.H{
		"message":         "Visitante excluído com sucesso",
		"deleted_visitor": deleted,
	})
}

// ======================================================
// SEARCH
// ======================================================

func (h *VisitorHandler) Search(c *gin.Context) {
	actor, err := resolveActor(h.db, c)
	if err != nil {
		httperr.Internal(c, "user_not_found", "Erro interno do servidor.")
		return
	}

	cpf := c.Query("cpf")
	if cpf == "" {
		httperr.BadRequest(c, "missing_cpf", "CPF é obrigatório.")
		return
	}

	visitors, err := h.searchUC.Execute(c.Request.Context(), actor, originFrom(c), cpf)
	if err != nil {
		writeVisitorError(c, err)
		return
	}

	c.JSON(200, gin.H{"visitors": visitors})
}

// ======================================================
// HISTORY
// ======================================================

func (h *VisitorHandler) History(c *gin.Context) {
	actor, err := resolveActor(h.db, c)
	if err != nil {
		httperr.Internal(c, "user_not_found", "Erro interno do servidor.")
		return
	}

	result, err := h.historyUC.Execute(c.Request.Context(), actor, originFrom(c))
	if err != nil {
		writeVisitorError(c, err)
		return
	}

	c.JSON(200, result)
}
