package relay

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"UpstreamRelayDemoServer/internal/reqlog"
	"UpstreamRelayDemoServer/internal/stats"
)

/*
UPSTREAM RELAY DESIGN

one GET per inbound request.
 Statically configured upstream URL
 No custom headers, no retry, no timeout override
 Whatever the platform's default client does is what we do

two outcomes only.
 2xx upstream status AND a JSON-parseable body -> 200, body forwarded
 Anything else (bad status, transport error, parse error) -> 500 with
 a fixed message; the upstream's own status and body are discarded

errors stay local.
 The underlying cause goes to the diagnostic stream only,
 never into a response
*/

// Fixed failure messages, one per relayed route. These are part of the
// HTTP contract: callers see exactly this string and nothing else.
const (
	PostsFailureMessage      = "Failed to fetch posts from external service."
	RandomFactFailureMessage = "Failed to fetch random fact from external service."
)

type Relay struct {
	name    string
	url     string
	failMsg string

	client *http.Client
	log    *reqlog.Logger
	stats  *stats.Collector
}

// New builds a relay for one fixed upstream URL. name appears only in
// diagnostic lines; failMsg is the exact message returned on any failure.
func New(name, url, failMsg string, log *reqlog.Logger, collector *stats.Collector) *Relay {
	return &Relay{
		name:    name,
		url:     url,
		failMsg: failMsg,
		client:  &http.Client{},
		log:     log,
		stats:   collector,
	}
}

func (rl *Relay) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rl.log.Printf("relay %s: fetching %s", rl.name, rl.url)

	body, err := rl.fetch()
	if err != nil {
		rl.log.Error("relay "+rl.name, err)
		rl.stats.IncrementRelayFailure()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"message": rl.failMsg})
		return
	}

	rl.stats.IncrementRelaySuccess()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(body)
}

// fetch performs the single upstream GET and collapses every failure
// mode into one error.
func (rl *Relay) fetch() (any, error) {
	resp, err := rl.client.Get(rl.url)
	if err != nil {
		return nil, fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("upstream returned status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read upstream body: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("upstream body is not valid JSON: %w", err)
	}

	return parsed, nil
}
