package domain

import "time"

// TimestampLayout é o formato de SubmittedOn (hora local do servidor).
const TimestampLayout = "2006-01-02 15:04:05"

// Applicant é um cadastro aceito. Depois de criado nunca é alterado.
type Applicant struct {
	ID          int64  `json:"id"`
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Position    string `json:"position"`
	Interest    string `json:"interest"`
	SubmittedOn string `json:"submittedOn"`
}

// Registration é o payload de POST /api/register.
//
// Phone e Interest são opcionais; ausentes viram string vazia.
type Registration struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Position string `json:"position"`
	Interest string `json:"interest"`
}

// Validate checa apenas presença dos campos obrigatórios.
// Não há validação de formato (ex.: e-mail).
func (r Registration) Validate() error {
	if r.FullName == "" || r.Email == "" || r.Position == "" {
		return &ValidationError{Err: ErrMissingFields}
	}
	return nil
}

// Applicant monta o registro a partir do payload. O ID fica zerado: quem
// atribui é o ApplicantStore.
func (r Registration) Applicant(at time.Time) Applicant {
	return Applicant{
		FullName:    r.FullName,
		Email:       r.Email,
		Phone:       r.Phone,
		Position:    r.Position,
		Interest:    r.Interest,
		SubmittedOn: at.Format(TimestampLayout),
	}
}

// ApplicantStore guarda todos os cadastros durante a vida do processo.
//
// Append atribui o próximo ID (1, 2, 3...) e devolve o registro já com ID.
// Append precisa ser atômico: ler contador, atribuir, incrementar e anexar
// formam uma única operação.
// List devolve os registros em ordem de inserção.
type ApplicantStore interface {
	Append(Applicant) Applicant
	List() []Applicant
	Len() int
}
