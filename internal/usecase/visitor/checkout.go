package visitor

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/recepcao-visitantes/internal/audit"
	domain "github.com/BruksfildServices01/recepcao-visitantes/internal/domain/visitor"
	"github.com/BruksfildServices01/recepcao-visitantes/internal/httperr"
	"github.com/BruksfildServices01/recepcao-visitantes/internal/models"
	"github.com/BruksfildServices01/recepcao-visitantes/internal/timezone"
)

type CheckOutVisitor struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCheckOutVisitor(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CheckOutVisitor {
	return &CheckOutVisitor{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CheckOutVisitor) Execute(
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
				Action:   audit.ActionCheckOutVisitor,
				Details:  "Tentativa de checkout de visitante inexistente",
				TargetID: &id,
			})
		}
		return nil, err
	}

	v, err := uc.repo.CheckOut(ctx, id, timezone.Now())
	if err != nil {
		if httperr.IsBusiness(err, "already_checked_out") {
			uc.audit.Dispatch(audit.Event{
				Actor:      actor,
				Origin:     origin,
				Action:     audit.ActionCheckOutVisitor,
				Details:    "Tentativa de checkout de visitante já com checkout",
				TargetID:   &src.ID,
				TargetName: src.Name,
			})
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:      actor,
		Origin:     origin,
		Action:     audit.ActionCheckOutVisitor,
		Details:    fmt.Sprintf("Checkout realizado - %s", v.SalaDestino),
		TargetID:   &v.ID,
		TargetName: v.Name,
	})

	return v, nil
}
