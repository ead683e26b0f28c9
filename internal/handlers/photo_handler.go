package handlers

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/recepcao-visitantes/internal/audit"
	domain "github.com/BruksfildServices01/recepcao-visitantes/internal/domain/visitor"
	"github.com/BruksfildServices01/recepcao-visitantes/internal/httperr"
	"github.com/BruksfildServices01/recepcao-visitantes/internal/storage"
)

const maxPhotoUploadBytes = 8 << 20

// PhotoHandler recebe a foto do crachá, normaliza e manda para o S3.
type PhotoHandler struct {
	db    *gorm.DB
	repo  domain.Repository
	store *storage.PhotoStore
	audit *audit.Dispatcher
}

func NewPhotoHandler(
	db *gorm.DB,
	repo domain.Repository,
	store *storage.PhotoStore,
	dispatcher *audit.Dispatcher,
) *PhotoHandler {
	return &PhotoHandler{
		db:    db,
		repo:  repo,
		store: store,
		audit: dispatcher,
	}
}

func (h *PhotoHandler) Upload(c *gin.Context) {
	if !h.store.Enabled() {
		httperr.Write(c, 503, "photo_storage_disabled", "Armazenamento de fotos não configurado.")
		return
	}

	actor, err := resolveActor(h.db, c)
	if err != nil {
		httperr.Internal(c, "user_not_found", "Erro interno do servidor.")
		return
	}

	id := c.Param("id")

	v, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		writeVisitorError(c, err)
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "Arquivo de foto é obrigatório.")
		return
	}
	if fileHeader.Size > maxPhotoUploadBytes {
		httperr.BadRequest(c, "photo_too_large", "Foto excede o tamanho máximo de 8MB.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "photo_read_failed", "Erro ao ler a foto.")
		return
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		httperr.BadRequest(c, "invalid_photo", "Foto inválida. Envie JPEG ou PNG.")
		return
	}

	key, err := h.store.Save(c.Request.Context(), v.ID, img)
	if err != nil {
		httperr.Internal(c, "photo_upload_failed", "Erro ao salvar a foto.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:      actor,
		Origin:     originFrom(c),
		Action:     audit.ActionUploadPhoto,
		Details:    fmt.Sprintf("Foto do visitante enviada - %s", key),
		TargetID:   &v.ID,
		TargetName: v.Name,
	})

	c.JSON(200, gin.H{"photo_key": key})
}
