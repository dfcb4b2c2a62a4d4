package application

import (
	"context"
	"log"
	"time"

	"applicant-intake/intake/domain"

	"golang.org/x/time/rate"
)

// RegistrationService concentra a regra de cadastro, sem saber nada sobre HTTP.
type RegistrationService struct {
	Store domain.ApplicantStore
	// Stats é opcional. Falha ao gravar estatística só gera log.
	Stats domain.StatsStore
	// Now é o relógio usado em SubmittedOn. nil => time.Now.
	Now func() time.Time

	// evita inundar o log quando o Redis de estatísticas cai
	statsWarn rate.Sometimes
}

func NewRegistrationService(store domain.ApplicantStore, stats domain.StatsStore) *RegistrationService {
	return &RegistrationService{
		Store:     store,
		Stats:     stats,
		statsWarn: rate.Sometimes{First: 1, Interval: 30 * time.Second},
	}
}

// Register valida, carimba a data e grava o cadastro.
// Em erro de validação o store não é alterado.
func (s *RegistrationService) Register(ctx context.Context, reg domain.Registration) (domain.Applicant, error) {
	if err := reg.Validate(); err != nil {
		return domain.Applicant{}, err
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	at := now()

	a := s.Store.Append(reg.Applicant(at))
	log.Printf("New applicant registered: %s", a.FullName)

	if s.Stats != nil {
		err := s.Stats.Record(ctx, domain.StatsEvent{
			ApplicantID: a.ID,
			Position:    a.Position,
			At:          at,
		})
		if err != nil {
			s.statsWarn.Do(func() {
				log.Printf("stats record failed (applicant_id=%d): %v", a.ID, err)
			})
		}
	}
	return a, nil
}
