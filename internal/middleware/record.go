package middleware

import (
	"net/http"

	"UpstreamRelayDemoServer/internal/reqlog"
	"UpstreamRelayDemoServer/internal/stats"
)

/*
Request recording wraps the ENTIRE chain so it sees all requests,
including ones the guardrails reject. One timestamped line per request
goes to the diagnostic stream after the handler finishes.
*/

func RecordMiddleware(log *reqlog.Logger, collector *stats.Collector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			rr := &responseRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rr, r)

			collector.IncrementRequests()
			log.Request(r.Method, r.URL.Path, rr.status)
		})
	}
}

/*
Response recorder (standard pattern)
*/

type responseRecorder struct {
	http.ResponseWriter
	status int
}

func (r *responseRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
