// Package requestid tags every request with an identifier that flows into
// logs and the X-Request-ID response header.
package requestid

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"veracity/pkg/requestcontext"
)

// Header is the header read from callers and echoed on responses.
const Header = "X-Request-ID"

// maxInboundLength bounds caller-supplied IDs so they cannot bloat logs.
const maxInboundLength = 64

// Middleware reuses a sane inbound X-Request-ID or generates a UUIDv4.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(Header))
		if id == "" || len(id) > maxInboundLength {
			id = uuid.NewString()
		}
		w.Header().Set(Header, id)
		ctx := requestcontext.WithRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
