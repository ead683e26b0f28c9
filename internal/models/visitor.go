package models

import "time"

// Cada check-in físico gera um registro novo; revisita da mesma pessoa
// clona o registro anterior em vez de reativá-lo.
type Visitor struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name string `gorm:"size:100;not null" json:"name"`
	CPF  string `gorm:"size:14;not null;index" json:"cpf"`

	SalaDestino string `gorm:"size:20;not null;index:idx_sala_ativa" json:"sala_destino"`

	DataNascimento *time.Time `json:"data_nascimento"`
	Email          string     `gorm:"size:100" json:"email"`

	CheckIn  time.Time  `gorm:"not null" json:"check_in"`
	CheckOut *time.Time `gorm:"index:idx_sala_ativa" json:"check_out"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
