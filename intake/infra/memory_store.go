package infra

import (
	"sync"

	"applicant-intake/intake/domain"
)

// MemoryStore implementa domain.ApplicantStore em memória.
//
// Os dados somem quando o processo termina. Não há limite de tamanho.
type MemoryStore struct {
	mu         sync.Mutex
	applicants []domain.Applicant
	nextID     int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

// Append atribui o próximo ID e anexa o registro, tudo sob o mesmo lock.
func (s *MemoryStore) Append(a domain.Applicant) domain.Applicant {
	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = s.nextID
	s.nextID++
	s.applicants = append(s.applicants, a)
	return a
}

// List devolve uma cópia, em ordem de inserção. Nunca retorna nil.
func (s *MemoryStore) List() []domain.Applicant {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Applicant, len(s.applicants))
	copy(out, s.applicants)
	return out
}

func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.applicants)
}
