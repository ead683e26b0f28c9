package visitor

import (
	"context"
	"time"

	"github.com/BruksfildServices01/recepcao-visitantes/internal/models"
)

// Repository é o contrato de persistência do ciclo de vida do visitante.
//
// As operações que criam registro (Create, CheckInClone) são atômicas:
// a contagem de ocupação da sala e, no check-in, a checagem de visita
// ativa por CPF acontecem na mesma transação da escrita. Fora disso
// duas requisições concorrentes poderiam ver count=2 e estourar o teto.
type Repository interface {
	// -------- Escrita (atômica) --------

	// Create insere o registro se a sala tiver vaga.
	// Devolve room_full quando a sala já tem RoomCapacity ativos.
	Create(ctx context.Context, v *models.Visitor) error

	// CheckInClone clona o registro de origem em um registro novo
	// com check-in = now. Devolve visitor_not_found, already_active
	// ou room_full conforme o caso.
	CheckInClone(ctx context.Context, sourceID string, now time.Time) (*models.Visitor, error)

	// CheckOut grava o checkout uma única vez. Devolve
	// already_checked_out se outra requisição chegou antes.
	CheckOut(ctx context.Context, id string, now time.Time) (*models.Visitor, error)

	// Delete remove o registro, se inativo, e devolve o snapshot.
	Delete(ctx context.Context, id string) (*models.Visitor, error)

	// -------- Leitura --------

	GetByID(ctx context.Context, id string) (*models.Visitor, error)

	List(ctx context.Context, activeOnly bool) ([]models.Visitor, error)

	// SearchByCPF devolve o registro mais recente de cada CPF distinto
	// que contenha o fragmento, do mais novo para o mais antigo.
	SearchByCPF(ctx context.Context, fragment string) ([]models.Visitor, error)

	ActiveCount(ctx context.Context, room string) (int64, error)

	ActiveCountByRoom(ctx context.Context) (map[string]int64, error)
}
