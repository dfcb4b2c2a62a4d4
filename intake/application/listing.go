package application

import (
	"context"
	"log"

	"applicant-intake/intake/domain"
)

// ListingService devolve todos os cadastros, sem paginação nem filtro.
type ListingService struct {
	Store domain.ApplicantStore
}

func (s ListingService) List(_ context.Context) []domain.Applicant {
	out := s.Store.List()
	log.Printf("Retrieved %d applicants.", len(out))
	return out
}

// StatsService lê o snapshot de estatísticas, se o store suportar leitura.
type StatsService struct {
	Reader domain.StatsReader
}

func (s StatsService) Snapshot(ctx context.Context) (domain.StatsSnapshot, error) {
	if s.Reader == nil {
		return domain.StatsSnapshot{ByPosition: map[string]int64{}}, nil
	}
	return s.Reader.Snapshot(ctx)
}
