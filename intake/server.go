package intake

import (
	"net/http"

	"applicant-intake/intake/application"

	"github.com/go-chi/chi/v5/middleware"
)

// Config reúne as dependências do servidor. Cada serviço é construído uma
// vez em main e vive enquanto o processo viver.
type Config struct {
	Registration *application.RegistrationService
	Listing      application.ListingService
	Stats        application.StatsService
	Admission    *application.Admission
	Static       StaticOptions
}

type Server struct {
	static  *Static
	handler http.Handler
}

func New(cfg Config) (*Server, error) {
	static, err := NewStatic(cfg.Static)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/register", RegisterHandler(cfg.Registration))
	// sem isso GET /api/register cairia no estático e daria 404
	for _, m := range []string{http.MethodGet, http.MethodPut, http.MethodPatch, http.MethodDelete} {
		mux.HandleFunc(m+" /api/register", MethodNotAllowedHandler(http.MethodPost))
	}
	mux.HandleFunc("GET /api/applicants", ListHandler(cfg.Listing))
	mux.HandleFunc("GET /api/stats", StatsHandler(cfg.Stats))
	mux.HandleFunc("GET /health", HealthHandler(cfg.Admission))

	// "/{$}" casa só a raiz; "/" é o fallback para os demais arquivos.
	mux.Handle("GET /{$}", static)
	mux.Handle("GET /", static)

	return &Server{
		static:  static,
		handler: Wrap(mux, cfg.Admission),
	}, nil
}

// Wrap aplica a cadeia de middlewares: request id -> access log -> recover -> admissão.
// Panic inesperado vira 500 em vez de derrubar o processo.
func Wrap(h http.Handler, adm *application.Admission) http.Handler {
	h = AdmissionMiddleware(adm)(h)
	h = middleware.Recoverer(h)
	h = middleware.Logger(h)
	h = RequestID(h)
	return h
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Server) Close() error { return s.static.Close() }
