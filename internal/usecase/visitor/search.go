package visitor

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/recepcao-visitantes/internal/audit"
	domain "github.com/BruksfildServices01/recepcao-visitantes/internal/domain/visitor"
	"github.com/BruksfildServices01/recepcao-visitantes/internal/httperr"
	"github.com/BruksfildServices01/recepcao-visitantes/internal/models"
	"github.com/BruksfildServices01/recepcao-visitantes/internal/validators"
)

type SearchVisitors struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSearchVisitors(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *SearchVisitors {
	return &SearchVisitors{
		repo:  repo,
		audit: audit,
	}
}

// Execute busca por fragmento de CPF e devolve o registro mais recente
// de cada pessoa, para alimentar o check-in por perfil existente.
func (uc *SearchVisitors) Execute(
	ctx context.Context,
	actor audit.Actor,
	origin audit.Origin,
	cpfFragment string,
) ([]models.Visitor, error) {

	fragment := validators.NormalizeCPF(cpfFragment)
	if fragment == "" {
		return nil, httperr.ErrBusiness("invalid_cpf")
	}

	visitors, err := uc.repo.SearchByCPF(ctx, fragment)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:   actor,
		Origin:  origin,
		Action:  audit.ActionSearchVisitors,
		Details: fmt.Sprintf("Busca por CPF: %s - %d resultados", fragment, len(visitors)),
	})

	return visitors, nil
}
