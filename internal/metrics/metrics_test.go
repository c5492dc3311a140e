package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/polkiloo/campusmart/internal/domain/model"
)

func TestCounters(t *testing.T) {
	m := New()

	m.CodeIssued(model.DeliveryAPI)
	m.CodeIssued(model.DeliveryAPI)
	m.CodeIssued(model.DeliveryClickToSend)
	m.VerificationAttempt(model.OutcomeExpired)
	m.HandoffComposed()
	m.OrderTransitioned(model.OrderStatusConfirmed)

	if got := testutil.ToFloat64(m.codesIssued.WithLabelValues("api")); got != 2 {
		t.Fatalf("expected 2 api codes, got %v", got)
	}
	if got := testutil.ToFloat64(m.codesIssued.WithLabelValues("click_to_send")); got != 1 {
		t.Fatalf("expected 1 click-to-send code, got %v", got)
	}
	if got := testutil.ToFloat64(m.verifications.WithLabelValues("expired")); got != 1 {
		t.Fatalf("expected 1 expired attempt, got %v", got)
	}
	if got := testutil.ToFloat64(m.handoffs); got != 1 {
		t.Fatalf("expected 1 handoff, got %v", got)
	}
	if got := testutil.ToFloat64(m.transitions.WithLabelValues("confirmed")); got != 1 {
		t.Fatalf("expected 1 transition, got %v", got)
	}
}

func TestObserveRequestAndHandler(t *testing.T) {
	m := New()
	m.ObserveRequest(http.MethodGet, "/api/user/cart", http.StatusOK, 20*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "", http.StatusNotFound, time.Millisecond)

	if n := testutil.CollectAndCount(m.requests); n != 2 {
		t.Fatalf("expected 2 request series, got %d", n)
	}

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body, _ := io.ReadAll(rec.Body)
	for _, want := range []string{
		"campusmart_http_request_duration_seconds_count",
		`route="unmatched"`,
		"go_goroutines",
	} {
		if !strings.Contains(string(body), want) {
			t.Fatalf("expected %q in exposition output", want)
		}
	}
}

func TestNewUsesIsolatedRegistry(t *testing.T) {
	a, b := New(), New()
	a.HandoffComposed()
	if got := testutil.ToFloat64(b.handoffs); got != 0 {
		t.Fatalf("registries must not share state, got %v", got)
	}
}
