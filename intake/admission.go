package intake

import (
	"net/http"

	"applicant-intake/intake/application"
)

// AdmissionMiddleware limita requisições em andamento. Sem vaga dentro do
// prazo responde 503.
func AdmissionMiddleware(adm *application.Admission) func(next http.Handler) http.Handler {
	if adm == nil {
		return func(next http.Handler) http.Handler { return next }
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			release, err := adm.Admit(r.Context())
			if err != nil {
				writeError(w, http.StatusServiceUnavailable, http.StatusText(http.StatusServiceUnavailable))
				return
			}
			defer release()

			next.ServeHTTP(w, r)
		})
	}
}
