package middleware

import (
	"net/http"
)

/*
REQUEST GUARDRAILS

WHY THIS EXISTS:
- Reject traffic the surface cannot serve, early and cheaply
- Every route here is a read-only GET; nothing else has meaning

WHY IT IS SIMPLE:
- No payload inspection
- No schema validation
- net/http already does enough; we add guardrails only

FAIL-CLOSED PRINCIPLE:
- If the request cannot possibly be served -> reject before routing
*/

/*
Configuration (constants only)
*/

const (
	// Maximum allowed request path length in bytes.
	MaxPathBytes = 2048
)

func GuardMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		if len(r.URL.Path) > MaxPathBytes {
			http.Error(w, "request path too long", http.StatusRequestURITooLong)
			return
		}

		next.ServeHTTP(w, r)
	})
}
