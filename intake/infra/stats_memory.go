package infra

import (
	"context"
	"strings"
	"sync"

	"applicant-intake/intake/domain"
)

// MemoryStatsStore é a implementação padrão das estatísticas, em memória.
//
// Não faz expiração; zera quando o processo reinicia (igual aos cadastros).
type MemoryStatsStore struct {
	mu         sync.Mutex
	total      int64
	byPosition map[string]int64
}

func NewMemoryStatsStore() *MemoryStatsStore {
	return &MemoryStatsStore{byPosition: make(map[string]int64)}
}

func (s *MemoryStatsStore) Record(_ context.Context, ev domain.StatsEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.total++
	// mesma chave que o RedisStatsStore usa
	if p := strings.TrimSpace(ev.Position); p != "" {
		s.byPosition[p]++
	}
	return nil
}

func (s *MemoryStatsStore) Snapshot(context.Context) (domain.StatsSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]int64, len(s.byPosition))
	for k, v := range s.byPosition {
		out[k] = v
	}
	return domain.StatsSnapshot{Total: s.total, ByPosition: out}, nil
}
