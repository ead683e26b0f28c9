package visitor

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/recepcao-visitantes/internal/httperr"
	"github.com/BruksfildServices01/recepcao-visitantes/internal/models"
	"github.com/BruksfildServices01/recepcao-visitantes/internal/validators"
)

// ===============================
// Domain Actions
// ===============================

type NewVisitorInput struct {
	Name           string
	CPF            string
	SalaDestino    string
	DataNascimento *time.Time
	Email          string
}

// NewVisitor valida os dados e monta o registro com check-in agora.
// O CPF é normalizado para dígitos antes de persistir.
func NewVisitor(in NewVisitorInput, now time.Time) (*models.Visitor, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, httperr.ErrBusiness("invalid_name")
	}

	cpf := validators.NormalizeCPF(in.CPF)
	if !validators.IsValidCPF(cpf) {
		return nil, httperr.ErrBusiness("invalid_cpf")
	}

	if !IsValidRoom(in.SalaDestino) {
		return nil, httperr.ErrBusiness("invalid_room")
	}

	email := strings.TrimSpace(in.Email)
	if email != "" && !validators.IsEmailSyntaxValid(email) {
		return nil, httperr.ErrBusiness("invalid_email")
	}

	return &models.Visitor{
		ID:             uuid.NewString(),
		Name:           name,
		CPF:            cpf,
		SalaDestino:    in.SalaDestino,
		DataNascimento: in.DataNascimento,
		Email:          email,
		CheckIn:        now,
	}, nil
}

// CloneForCheckIn cria um registro novo a partir do último conhecido.
// Revisita nunca reativa a linha antiga.
func CloneForCheckIn(src *models.Visitor, now time.Time) *models.Visitor {
	return &models.Visitor{
		ID:             uuid.NewString(),
		Name:           src.Name,
		CPF:            src.CPF,
		SalaDestino:    src.SalaDestino,
		DataNascimento: src.DataNascimento,
		Email:          src.Email,
		CheckIn:        now,
	}
}

// CanCheckOut falha se o checkout já foi feito; checkout é imutável.
func CanCheckOut(v *models.Visitor) error {
	if v.CheckOut != nil {
		return httperr.ErrBusiness("already_checked_out")
	}
	return nil
}

// CanDelete protege visitas ativas contra exclusão.
func CanDelete(v *models.Visitor) error {
	if v.CheckOut == nil {
		return httperr.ErrBusiness("visitor_active")
	}
	return nil
}
