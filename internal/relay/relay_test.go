package relay

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"UpstreamRelayDemoServer/internal/reqlog"
	"UpstreamRelayDemoServer/internal/stats"
)

func newTestRelay(upstreamURL string) *Relay {
	return New(
		"posts",
		upstreamURL,
		PostsFailureMessage,
		reqlog.NewLogger(io.Discard),
		stats.NewCollector(),
	)
}

func TestSuccessForwardsJSONArray(t *testing.T) {
	payload := `[{"id":1,"title":"first"},{"id":2,"title":"second"}]`

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, payload)
	}))
	defer upstream.Close()

	rl := newTestRelay(upstream.URL)
	rr := httptest.NewRecorder()
	rl.ServeHTTP(rr, httptest.NewRequest("GET", "/posts", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var want, got any
	if err := json.Unmarshal([]byte(payload), &want); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("body not forwarded verbatim:\nwant %v\ngot  %v", want, got)
	}
}

func TestNonSuccessStatusCollapsesTo500(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"gone"}`, http.StatusNotFound)
	}))
	defer upstream.Close()

	rl := newTestRelay(upstream.URL)
	rr := httptest.NewRecorder()
	rl.ServeHTTP(rr, httptest.NewRequest("GET", "/posts", nil))

	assertFixedFailure(t, rr)
}

func TestUnreachableUpstreamCollapsesTo500(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := upstream.URL
	upstream.Close()

	rl := newTestRelay(url)
	rr := httptest.NewRecorder()
	rl.ServeHTTP(rr, httptest.NewRequest("GET", "/posts", nil))

	assertFixedFailure(t, rr)
}

func TestMalformedJSONCollapsesTo500(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"broken":`)
	}))
	defer upstream.Close()

	rl := newTestRelay(upstream.URL)
	rr := httptest.NewRecorder()
	rl.ServeHTTP(rr, httptest.NewRequest("GET", "/posts", nil))

	assertFixedFailure(t, rr)
}

func TestUpstreamBodyNeverLeaksOnFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "secret upstream detail", http.StatusBadGateway)
	}))
	defer upstream.Close()

	rl := newTestRelay(upstream.URL)
	rr := httptest.NewRecorder()
	rl.ServeHTTP(rr, httptest.NewRequest("GET", "/posts", nil))

	if got := rr.Body.String(); got != `{"message":"Failed to fetch posts from external service."}`+"\n" {
		t.Fatalf("failure body must be the fixed message only, got: %q", got)
	}
}

func TestFailureCountsAgainstStats(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer upstream.Close()

	collector := stats.NewCollector()
	rl := New("posts", upstream.URL, PostsFailureMessage,
		reqlog.NewLogger(io.Discard), collector)

	rr := httptest.NewRecorder()
	rl.ServeHTTP(rr, httptest.NewRequest("GET", "/posts", nil))

	_, success, failure, _ := collector.Snapshot()
	if success != 0 || failure != 1 {
		t.Fatalf("expected 0 successes / 1 failure, got %d/%d", success, failure)
	}
}

func assertFixedFailure(t *testing.T, rr *httptest.ResponseRecorder) {
	t.Helper()

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("failure body is not valid JSON: %v", err)
	}
	if body["message"] != "Failed to fetch posts from external service." {
		t.Fatalf("unexpected failure message: %q", body["message"])
	}
}
