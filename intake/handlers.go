package intake

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"applicant-intake/intake/application"
	"applicant-intake/intake/domain"
)

// maxRegisterBody limita o corpo de POST /api/register.
const maxRegisterBody = 1 << 20

const registeredMessage = "Application received successfully!"

type registerResponse struct {
	Message     string `json:"message"`
	ApplicantID int64  `json:"applicant_id"`
}

type healthResponse struct {
	OK       bool  `json:"ok"`
	InFlight int64 `json:"in_flight"`
}

// RegisterHandler atende POST /api/register.
func RegisterHandler(svc *application.RegistrationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reg, err := decodeRegistration(w, r)
		if err != nil {
			writeError(w, http.StatusBadRequest, validationMessage(err))
			return
		}

		a, err := svc.Register(r.Context(), reg)
		if err != nil {
			if domain.IsValidation(err) {
				writeError(w, http.StatusBadRequest, validationMessage(err))
				return
			}
			log.Printf("[/api/register] unexpected error: %v", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusCreated, registerResponse{
			Message:     registeredMessage,
			ApplicantID: a.ID,
		})
	}
}

// decodeRegistration lê exatamente um objeto JSON do corpo.
// Corpo vazio, JSON inválido, valor que não é objeto, campo que não é
// string ou lixo depois do objeto viram ErrInvalidPayload. `null` e `{}`
// passam e caem na validação de campos obrigatórios.
//
// As chaves são comparadas exatamente ("fullName", não "FULLNAME"):
// json.Unmarshal direto na struct aceitaria qualquer caixa.
func decodeRegistration(w http.ResponseWriter, r *http.Request) (domain.Registration, error) {
	invalid := &domain.ValidationError{Err: domain.ErrInvalidPayload}
	if r.Body == nil {
		return domain.Registration{}, invalid
	}
	defer r.Body.Close()

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRegisterBody))

	var fields map[string]json.RawMessage
	if err := dec.Decode(&fields); err != nil {
		log.Printf("[/api/register] JSON decode error: %v", err)
		return domain.Registration{}, invalid
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		log.Printf("[/api/register] trailing data after JSON object")
		return domain.Registration{}, invalid
	}

	var reg domain.Registration
	for key, dst := range map[string]*string{
		"fullName": &reg.FullName,
		"email":    &reg.Email,
		"phone":    &reg.Phone,
		"position": &reg.Position,
		"interest": &reg.Interest,
	} {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		// null deixa o campo vazio (conta como ausente)
		if err := json.Unmarshal(raw, dst); err != nil {
			log.Printf("[/api/register] field %q: %v", key, err)
			return domain.Registration{}, invalid
		}
	}
	return reg, nil
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingFields):
		return "Missing required fields"
	case errors.Is(err, domain.ErrInvalidPayload):
		return "Invalid JSON payload"
	default:
		return err.Error()
	}
}

// MethodNotAllowedHandler responde 405 em JSON para uma rota conhecida
// chamada com o método errado.
func MethodNotAllowedHandler(allow ...string) http.HandlerFunc {
	allowed := strings.Join(allow, ", ")
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", allowed)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// ListHandler atende GET /api/applicants.
func ListHandler(svc application.ListingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out := svc.List(r.Context())
		if out == nil {
			out = []domain.Applicant{}
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// StatsHandler atende GET /api/stats.
func StatsHandler(svc application.StatsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := svc.Snapshot(r.Context())
		if err != nil {
			log.Printf("[/api/stats] snapshot error: %v", err)
			writeError(w, http.StatusInternalServerError, "stats unavailable")
			return
		}
		if snap.ByPosition == nil {
			snap.ByPosition = map[string]int64{}
		}
		writeJSON(w, http.StatusOK, snap)
	}
}

// HealthHandler atende GET /health.
func HealthHandler(adm *application.Admission) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := healthResponse{OK: true}
		if adm != nil {
			resp.InFlight = adm.InFlight()
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
