package domain

import (
	"context"
	"time"
)

// StatsEvent representa um cadastro aceito, para fins de estatística.
//
// Observação: Position é texto livre vindo do formulário, então a
// cardinalidade não é controlada (cuidado ao usar em Redis/Prometheus).
type StatsEvent struct {
	ApplicantID int64
	Position    string
	At          time.Time
}

// StatsStore é a estratégia de persistência das estatísticas.
//
// Implementações podem armazenar em Redis, memória, etc.
// O serviço de cadastro trata erro como best-effort (não derruba request).
type StatsStore interface {
	Record(ctx context.Context, ev StatsEvent) error
}

// StatsSnapshot é a leitura agregada exposta em GET /api/stats.
type StatsSnapshot struct {
	Total      int64            `json:"total"`
	ByPosition map[string]int64 `json:"by_position"`
}

// StatsReader é implementado pelos stores que conseguem devolver um snapshot.
type StatsReader interface {
	Snapshot(ctx context.Context) (StatsSnapshot, error)
}
