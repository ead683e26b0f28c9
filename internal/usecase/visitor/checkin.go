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

type CheckInVisitor struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCheckInVisitor(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CheckInVisitor {
	return &CheckInVisitor{
		repo:  repo,
		audit: audit,
	}
}

// Execute faz o check-in de revisita: clona o registro de origem em um
// registro novo. A linha antiga nunca é reaberta.
func (uc *CheckInVisitor) Execute(
	ctx context.Context,
	actor audit.Actor,
	origin audit.Origin,
	sourceID string,
) (*models.Visitor, error) {

	// Leitura fora da transação, só para enriquecer a auditoria;
	// as invariantes são reconferidas dentro de CheckInClone.
	src, err := uc.repo.GetByID(ctx, sourceID)
	if err != nil {
		if httperr.IsBusiness(err, "visitor_not_found") {
			uc.audit.Dispatch(audit.Event{
				Actor:    actor,
				Origin:   origin,
				Action:   audit.ActionCheckInVisitor,
				Details:  "Tentativa de check-in de visitante inexistente",
				TargetID: &sourceID,
			})
		}
		return nil, err
	}

	clone, err := uc.repo.CheckInClone(ctx, sourceID, timezone.Now())
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "already_active"):
			uc.audit.Dispatch(audit.Event{
				Actor:      actor,
				Origin:     origin,
				Action:     audit.ActionCheckInVisitor,
				Details:    fmt.Sprintf("Tentativa de check-in de visitante já ativo - %s", src.Name),
				TargetID:   &src.ID,
				TargetName: src.Name,
			})
		case httperr.IsBusiness(err, "room_full"):
			uc.audit.Dispatch(audit.Event{
				Actor:      actor,
				Origin:     origin,
				Action:     audit.ActionCheckInVisitor,
				Details:    fmt.Sprintf("Tentativa de check-in na %s - sala cheia", src.SalaDestino),
				TargetID:   &src.ID,
				TargetName: src.Name,
			})
		case httperr.IsBusiness(err, "visitor_not_found"):
			uc.audit.Dispatch(audit.Event{
				Actor:    actor,
				Origin:   origin,
				Action:   audit.ActionCheckInVisitor,
				Details:  "Tentativa de check-in de visitante inexistente",
				TargetID: &sourceID,
			})
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:      actor,
		Origin:     origin,
		Action:     audit.ActionCheckInVisitor,
		Details:    fmt.Sprintf("Check-in realizado - %s", clone.SalaDestino),
		TargetID:   &clone.ID,
		TargetName: clone.Name,
	})

	return clone, nil
}
