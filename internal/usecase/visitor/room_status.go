package visitor

import (
	"context"
	"encoding/json"

	"github.com/BruksfildServices01/recepcao-visitantes/internal/cache"
	domain "github.com/BruksfildServices01/recepcao-visitantes/internal/domain/visitor"
)

type RoomStatusEntry struct {
	Sala   string `json:"sala"`
	Active int64  `json:"active"`
	Full   bool   `json:"full"`
}

// RoomStatus alimenta o painel de salas. A leitura passa pelo cache
// Redis quando disponível; o cache nunca participa da decisão de teto.
type RoomStatus struct {
	repo  domain.Repository
	cache *cache.OccupancyCache
}

func NewRoomStatus(
	repo domain.Repository,
	cache *cache.OccupancyCache,
) *RoomStatus {
	return &RoomStatus{
		repo:  repo,
		cache: cache,
	}
}

func (uc *RoomStatus) Execute(ctx context.Context) ([]RoomStatusEntry, error) {

	if payload, ok := uc.cache.Get(ctx); ok {
		var cached []RoomStatusEntry
		if err := json.Unmarshal(payload, &cached); err == nil {
			return cached, nil
		}
	}

	counts, err := uc.repo.ActiveCountByRoom(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]RoomStatusEntry, 0, len(domain.Rooms))
	for _, room := range domain.Rooms {
		active := counts[room]
		out = append(out, RoomStatusEntry{
			Sala:   room,
			Active: active,
			Full:   active >= domain.RoomCapacity,
		})
	}

	if payload, err := json.Marshal(out); err == nil {
		uc.cache.Set(ctx, payload)
	}

	return out, nil
}
