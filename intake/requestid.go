package intake

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// maxClientRequestID evita aceitar IDs gigantes vindos do cliente.
const maxClientRequestID = 128

// RequestID garante um ID por requisição: reaproveita o X-Request-ID do
// cliente (se razoável) ou gera um UUID. O ID volta no header da resposta e
// fica no contexto sob a chave do chi, então middleware.Logger o imprime.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(RequestIDHeader))
		if id == "" || len(id) > maxClientRequestID {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)

		ctx := context.WithValue(r.Context(), middleware.RequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
