package application

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"applicant-intake/intake/domain"
)

// ErrBusy indica que nenhuma vaga ficou livre dentro do prazo.
var ErrBusy = errors.New("server busy")

// Admission controla quantas requisições ficam em andamento ao mesmo tempo.
// Também conta as requisições em andamento, exposto em /health.
type Admission struct {
	Pool domain.SlotPool
	// Timeout <= 0 espera até o ctx da requisição cancelar.
	Timeout time.Duration

	inFlight atomic.Int64
}

// Admit reserva uma vaga. O release devolvido deve ser chamado uma única vez.
func (a *Admission) Admit(ctx context.Context) (func(), error) {
	if a.Pool == nil {
		a.inFlight.Add(1)
		return func() { a.inFlight.Add(-1) }, nil
	}

	if a.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.Timeout)
		defer cancel()
	}

	release, ok := a.Pool.Acquire(ctx)
	if !ok {
		return nil, ErrBusy
	}
	a.inFlight.Add(1)
	return func() {
		a.inFlight.Add(-1)
		release()
	}, nil
}

func (a *Admission) InFlight() int64 { return a.inFlight.Load() }
