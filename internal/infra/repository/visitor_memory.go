package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/recepcao-visitantes/internal/domain/visitor"
	"github.com/BruksfildServices01/recepcao-visitantes/internal/httperr"
	"github.com/BruksfildServices01/recepcao-visitantes/internal/models"
)

// VisitorMemoryRepository guarda tudo em memória sob um mutex único,
// o que já dá a atomicidade exigida pelo contrato. Serve para testes
// e desenvolvimento sem Postgres.
type VisitorMemoryRepository struct {
	mu       sync.Mutex
	visitors map[string]models.Visitor
	seq      map[string]int
	nextSeq  int
}

func NewVisitorMemoryRepository() *VisitorMemoryRepository {
	return &VisitorMemoryRepository{
		visitors: make(map[string]models.Visitor),
		seq:      make(map[string]int),
	}
}

// --------------------------------------------------
// Escrita
// --------------------------------------------------

func (r *VisitorMemoryRepository) Create(
	ctx context.Context,
	v *models.Visitor,
) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.activeInRoomLocked(v.SalaDestino) >= domain.RoomCapacity {
		return httperr.ErrBusiness("room_full")
	}

	r.insertLocked(v)
	return nil
}

func (r *VisitorMemoryRepository) CheckInClone(
	ctx context.Context,
	sourceID string,
	now time.Time,
) (*models.Visitor, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	src, ok := r.visitors[sourceID]
	if !ok {
		return nil, httperr.ErrBusiness("visitor_not_found")
	}

	for _, v := range r.visitors {
		if v.CPF == src.CPF && v.CheckOut == nil {
			return nil, httperr.ErrBusiness("already_active")
		}
	}

	if r.activeInRoomLocked(src.SalaDestino) >= domain.RoomCapacity {
		return nil, httperr.ErrBusiness("room_full")
	}

	clone := domain.CloneForCheckIn(&src, now)
	r.insertLocked(clone)

	out := *clone
	return &out, nil
}

func (r *VisitorMemoryRepository) CheckOut(
	ctx context.Context,
	id string,
	now time.Time,
) (*models.Visitor, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.visitors[id]
	if !ok {
		return nil, httperr.ErrBusiness("visitor_not_found")
	}
	if v.CheckOut != nil {
		return nil, httperr.ErrBusiness("already_checked_out")
	}

	v.CheckOut = &now
	r.visitors[id] = v

	out := v
	return &out, nil
}

func (r *VisitorMemoryRepository) Delete(
	ctx context.Context,
	id string,
) (*models.Visitor, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.visitors[id]
	if !ok {
		return nil, httperr.ErrBusiness("visitor_not_found")
	}

	if err := domain.CanDelete(&v); err != nil {
		return nil, err
	}

	delete(r.visitors, id)
	delete(r.seq, id)

	out := v
	return &out, nil
}

// --------------------------------------------------
// Leitura
// --------------------------------------------------

func (r *VisitorMemoryRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.Visitor, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.visitors[id]
	if !ok {
		return nil, httperr.ErrBusiness("visitor_not_found")
	}

	out := v
	return &out, nil
}

func (r *VisitorMemoryRepository) List(
	ctx context.Context,
	activeOnly bool,
) ([]models.Visitor, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Visitor, 0, len(r.visitors))
	for _, v := range r.visitors {
		if activeOnly && v.CheckOut != nil {
			continue
		}
		out = append(out, v)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CheckIn.Equal(out[j].CheckIn) {
			return out[i].CheckIn.After(out[j].CheckIn)
		}
		return r.seq[out[i].ID] > r.seq[out[j].ID]
	})

	return out, nil
}

func (r *VisitorMemoryRepository) SearchByCPF(
	ctx context.Context,
	fragment string,
) ([]models.Visitor, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	matches := make([]models.Visitor, 0)
	for _, v := range r.visitors {
		if strings.Contains(v.CPF, fragment) {
			matches = append(matches, v)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if !matches[i].CreatedAt.Equal(matches[j].CreatedAt) {
			return matches[i].CreatedAt.After(matches[j].CreatedAt)
		}
		return r.seq[matches[i].ID] > r.seq[matches[j].ID]
	})

	seen := make(map[string]bool, len(matches))
	out := make([]models.Visitor, 0, len(matches))
	for _, v := range matches {
		if seen[v.CPF] {
			continue
		}
		seen[v.CPF] = true
		out = append(out, v)
	}

	return out, nil
}

func (r *VisitorMemoryRepository) ActiveCount(
	ctx context.Context,
	room string,
) (int64, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	return int64(r.activeInRoomLocked(room)), nil
}

func (r *VisitorMemoryRepository) ActiveCountByRoom(
	ctx context.Context,
) (map[string]int64, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[string]int64)
	for _, v := range r.visitors {
		if v.CheckOut == nil {
			out[v.SalaDestino]++
		}
	}
	return out, nil
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func (r *VisitorMemoryRepository) activeInRoomLocked(room string) int {
	count := 0
	for _, v := range r.visitors {
		if v.SalaDestino == room && v.CheckOut == nil {
			count++
		}
	}
	return count
}

func (r *VisitorMemoryRepository) insertLocked(v *models.Visitor) {
	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now()
	}
	r.nextSeq++
	r.seq[v.ID] = r.nextSeq
	r.visitors[v.ID] = *v
}

// Compile-time check
var _ domain.Repository = (*VisitorMemoryRepository)(nil)
