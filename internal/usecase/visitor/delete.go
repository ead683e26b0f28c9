package visitor

import (
	"context"

	"github.com/BruksfildServices01/recepcao-visitantes/internal/audit"
	domain "github.com/BruksfildServices01/recepcao-visitantes/internal/domain/visitor"
	"github.com/BruksfildServices01/recepcao-visitantes/internal/httperr"
	"github.com/BruksfildServices01/recepcao-visitantes/internal/models"
)

type DeleteVisitor struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteVisitor(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteVisitor {
	return &DeleteVisitor{
		repo:  repo,
		audit: audit,
	}
}

// Execute remove o registro definitivamente e devolve o snapshot
// excluído. Visita ativa é protegida: checkout antes de excluir.
func (uc *DeleteVisitor) Execute(
	ctx context.Context,
	actor audit.Actor,
	origin audit.Origin,
	id string,
) (*models.Visitor, error) {

	src, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if httperr.IsBusiness(err, "visitor_not_found") {
			uc.audit.Dispatch(audit.Event{
				Actor:    actor,
				Origin:   origin,
				Action:   audit.ActionDeleteVisitor,
				Details:  "Tentativa de exclusão de visitante inexistente",
				TargetID: &id,
			})
		}
		return nil, err
	}

	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		if httperr.IsBusiness(err, "visitor_active") {
			uc.audit.Dispatch(audit.Event{
				Actor:      actor,
				Origin:     origin,
				Action:     audit.ActionDeleteVisitor,
				Details:    "Tentativa de exclusão de visitante ativo",
				TargetID:   &src.ID,
				TargetName: src.Name,
			})
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:      actor,
		Origin:     origin,
		Action:     audit.ActionDeleteVisitor,
		Details:    "Visitante excluído com sucesso",
		TargetID:   &deleted.ID,
		TargetName: deleted.Name,
	})

	return deleted, nil
}
