package visitor

import (
	"context"
	"fmt"
	"time"

	"github.com/BruksfildServices01/recepcao-visitantes/internal/audit"
	domain "github.com/BruksfildServices01/recepcao-visitantes/internal/domain/visitor"
	"github.com/BruksfildServices01/recepcao-visitantes/internal/httperr"
	"github.com/BruksfildServices01/recepcao-visitantes/internal/models"
	"github.com/BruksfildServices01/recepcao-visitantes/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type RegisterVisitorInput struct {
	Name           string
	CPF            string
	SalaDestino    string
	DataNascimento *time.Time
	Email          string
}

// ======================================================
// USE CASE
// ======================================================

type RegisterVisitor struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRegisterVisitor(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RegisterVisitor {
	return &RegisterVisitor{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *RegisterVisitor) Execute(
	ctx context.Context,
	actor audit.Actor,
	origin audit.Origin,
	in RegisterVisitorInput,
) (*models.Visitor, error) {

	now := timezone.Now()

	v, err := domain.NewVisitor(domain.NewVisitorInput{
		Name:           in.Name,
		CPF:            in.CPF,
		SalaDestino:    in.SalaDestino,
		DataNascimento: in.DataNascimento,
		Email:          in.Email,
	}, now)
	if err != nil {
		uc.audit.Dispatch(audit.Event{
			Actor:      actor,
			Origin:     origin,
			Action:     audit.ActionCreateVisitor,
			Details:    "Tentativa de criação de visitante com dados inválidos",
			TargetName: in.Name,
		})
		return nil, err
	}

	if err := uc.repo.Create(ctx, v); err != nil {
		if httperr.IsBusiness(err, "room_full") {
			uc.audit.Dispatch(audit.Event{
				Actor:      actor,
				Origin:     origin,
				Action:     audit.ActionCreateVisitor,
				Details:    fmt.Sprintf("Tentativa de criação de visitante na %s - sala cheia", in.SalaDestino),
				TargetName: v.Name,
			})
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:      actor,
		Origin:     origin,
		Action:     audit.ActionCreateVisitor,
		Details:    fmt.Sprintf("Visitante criado na %s", v.SalaDestino),
		TargetID:   &v.ID,
		TargetName: v.Name,
	})

	return v, nil
}
