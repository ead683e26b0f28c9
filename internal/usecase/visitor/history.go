package visitor

import (
	"context"
	"fmt"
	"time"

	"github.com/BruksfildServices01/recepcao-visitantes/internal/audit"
	domain "github.com/BruksfildServices01/recepcao-visitantes/internal/domain/visitor"
)

// ======================================================
// DTOs
// ======================================================

type HistoryEntry struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	CPF            string     `json:"cpf"`
	SalaDestino    string     `json:"sala_destino"`
	DataNascimento *time.Time `json:"data_nascimento"`
	Email          string     `json:"email"`
	CheckIn        time.Time  `json:"check_in"`
	CheckOut       *time.Time `json:"check_out"`
	CreatedAt      time.Time  `json:"created_at"`

	Status string `json:"status"`
	// Horas com duas casas decimais; nil enquanto a visita está ativa.
	Duration *float64 `json:"duration"`
}

type HistoryResult struct {
	History   []HistoryEntry `json:"history"`
	Total     int            `json:"total"`
	Active    int            `json:"active"`
	Completed int            `json:"completed"`
}

// ======================================================
// USE CASE
// ======================================================

type VisitHistory struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewVisitHistory(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *VisitHistory {
	return &VisitHistory{
		repo:  repo,
		audit: audit,
	}
}

func (uc *VisitHistory) Execute(
	ctx context.Context,
	actor audit.Actor,
	origin audit.Origin,
) (*HistoryResult, error) {

	visitors, err := uc.repo.List(ctx, false)
	if err != nil {
		return nil, err
	}

	result := &HistoryResult{
		History: make([]HistoryEntry, 0, len(visitors)),
	}

	for i := range visitors {
		v := &visitors[i]
		status := domain.StatusOf(v)

		result.History = append(result.History, HistoryEntry{
			ID:             v.ID,
			Name:           v.Name,
			CPF:            v.CPF,
			SalaDestino:    v.SalaDestino,
			DataNascimento: v.DataNascimento,
			Email:          v.Email,
			CheckIn:        v.CheckIn,
			CheckOut:       v.CheckOut,
			CreatedAt:      v.CreatedAt,
			Status:         string(status),
			Duration:       domain.DurationHours(v),
		})

		if status == domain.StatusActive {
			result.Active++
		} else {
			result.Completed++
		}
	}
	result.Total = len(result.History)

	uc.audit.Dispatch(audit.Event{
		Actor:  actor,
		Origin: origin,
		Action: audit.ActionViewHistory,
		Details: fmt.Sprintf(
			"Histórico acessado - %d registros (%d ativos, %d checkouts)",
			result.Total, result.Active, result.Completed,
		),
	})

	return result, nil
}
