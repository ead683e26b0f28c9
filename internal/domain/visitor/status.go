package visitor

import (
	"math"

	"github.com/BruksfildServices01/recepcao-visitantes/internal/models"
)

// ===============================
// Status derivado
// ===============================

type Status string

const (
	StatusActive   Status = "Ativo"
	StatusCheckout Status = "Checkout"
)

func StatusOf(v *models.Visitor) Status {
	if v.CheckOut == nil {
		return StatusActive
	}
	return StatusCheckout
}

// DurationHours devolve a permanência em horas com duas casas decimais.
// Nil enquanto o visitante não fez checkout.
func DurationHours(v *models.Visitor) *float64 {
	if v.CheckOut == nil {
		return nil
	}
	hours := v.CheckOut.Sub(v.CheckIn).Hours()
	rounded := math.Round(hours*100) / 100
	return &rounded
}
