package infra

import (
	"context"

	"applicant-intake/intake/domain"
)

type chanPool struct {
	sem chan struct{}
}

// NewChanPool cria um pool baseado em channel com capacidade `size`.
// Com size <= 0 o pool não limita nada.
func NewChanPool(size int) domain.SlotPool {
	if size <= 0 {
		return unlimitedPool{}
	}
	return &chanPool{sem: make(chan struct{}, size)}
}

func (p *chanPool) Acquire(ctx context.Context) (func(), bool) {
	select {
	case p.sem <- struct{}{}:
		return func() { <-p.sem }, true
	case <-ctx.Done():
		return nil, false
	}
}

type unlimitedPool struct{}

func (unlimitedPool) Acquire(context.Context) (func(), bool) { return func() {}, true }
