package visitor

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/recepcao-visitantes/internal/audit"
	domain "github.com/BruksfildServices01/recepcao-visitantes/internal/domain/visitor"
	"github.com/BruksfildServices01/recepcao-visitantes/internal/models"
)

type ListVisitors struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewListVisitors(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ListVisitors {
	return &ListVisitors{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ListVisitors) Execute(
	ctx context.Context,
	actor audit.Actor,
	origin audit.Origin,
	activeOnly bool,
) ([]models.Visitor, error) {

	visitors, err := uc.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:   actor,
		Origin:  origin,
		Action:  audit.ActionAccessControle,
		Details: fmt.Sprintf("Lista de visitantes acessada - %d registros", len(visitors)),
	})

	return visitors, nil
}
