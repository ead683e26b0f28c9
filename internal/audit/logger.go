package audit

import (
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/recepcao-visitantes/internal/models"
)

// Sink persiste um evento de auditoria.
type Sink interface {
	Record(ev Event) error
}

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Record(ev Event) error {

	row := models.SystemLog{
		ID:         uuid.NewString(),
		UserID:     ev.Actor.ID,
		UserName:   ev.Actor.Name,
		UserCPF:    ev.Actor.CPF,
		Action:     ev.Action,
		Details:    ev.Details,
		TargetID:   ev.TargetID,
		TargetName: ev.TargetName,
		IPAddress:  ev.Origin.IP,
		UserAgent:  ev.Origin.UserAgent,
	}

	if err := l.db.Create(&row).Error; err != nil {
		return err
	}

	log.Printf("[SYSTEM LOG] %s - %s (%s) - %s", ev.Action, ev.Actor.Name, ev.Actor.CPF, ev.Details)
	return nil
}

var _ Sink = (*Logger)(nil)
