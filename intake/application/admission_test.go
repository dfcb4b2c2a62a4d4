package application

import (
	"context"
	"errors"
	"testing"
	"time"
)

type blockingPool struct{}

func (p *blockingPool) Acquire(ctx context.Context) (func(), bool) {
	select {
	case <-ctx.Done():
		return nil, false
	case <-time.After(5 * time.Second):
		// não deve chegar aqui nos testes
		return nil, false
	}
}

type immediatePool struct {
	acquired int
	released int
}

func (p *immediatePool) Acquire(context.Context) (func(), bool) {
	p.acquired++
	return func() { p.released++ }, true
}

func TestAdmission_AllowsWhenNoPool(t *testing.T) {
	a := &Admission{}
	release, err := a.Admit(context.Background())
	if err != nil {
		t.Fatalf("expected admit, got %v", err)
	}
	if a.InFlight() != 1 {
		t.Fatalf("expected 1 in flight, got %d", a.InFlight())
	}
	release()
	if a.InFlight() != 0 {
		t.Fatalf("expected 0 in flight after release, got %d", a.InFlight())
	}
}

func TestAdmission_TimesOutWithErrBusy(t *testing.T) {
	a := &Admission{Pool: &blockingPool{}, Timeout: 10 * time.Millisecond}

	_, err := a.Admit(context.Background())
	if !errors.Is(err, ErrBusy) {
		t.Fatalf("expected ErrBusy, got %v", err)
	}
	if a.InFlight() != 0 {
		t.Fatalf("rejected request must not count as in flight")
	}
}

func TestAdmission_ReleaseReturnsSlotToPool(t *testing.T) {
	pool := &immediatePool{}
	a := &Admission{Pool: pool}

	release, err := a.Admit(context.Background())
	if err != nil {
		t.Fatalf("expected admit, got %v", err)
	}
	release()
	if pool.acquired != 1 || pool.released != 1 {
		t.Fatalf("expected one acquire and one release, got %d/%d", pool.acquired, pool.released)
	}
}
