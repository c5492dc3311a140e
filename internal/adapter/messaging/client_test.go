package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	domainErrors "github.com/polkiloo/campusmart/internal/domain/errors"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestNewCloudAPIClientValidates(t *testing.T) {
	if _, err := NewCloudAPIClient("://bad-url", "1", "t", testLogger()); err == nil {
		t.Fatal("expected error for invalid url")
	}
	if _, err := NewCloudAPIClient("/relative", "1", "t", testLogger()); err == nil {
		t.Fatal("expected error for relative url")
	}
	if _, err := NewCloudAPIClient("https://example.com", "", "t", testLogger()); err == nil {
		t.Fatal("expected error for missing sender id")
	}
}

func TestSendTextPostsMessage(t *testing.T) {
	var (
		gotPath string
		gotAuth string
		gotMsg  textMessage
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method %s", r.Method)
		}
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotMsg); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"messages":[{"id":"wamid.1"}]}`))
	}))
	defer srv.Close()

	client, err := NewCloudAPIClient(srv.URL+"/v19.0", "1234", "secret", testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	if err := client.SendText(context.Background(), "+15550001111", "code 123456"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/v19.0/1234/messages" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotAuth != "Bearer secret" {
		t.Fatalf("unexpected auth header %q", gotAuth)
	}
	if gotMsg.MessagingProduct != "whatsapp" || gotMsg.Type != "text" || gotMsg.To != "15550001111" || gotMsg.Text.Body != "code 123456" {
		t.Fatalf("unexpected payload %+v", gotMsg)
	}
}

func TestSendTextFailures(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		header     http.Header
	}{
		{name: "server error", statusCode: http.StatusInternalServerError},
		{name: "unauthorized", statusCode: http.StatusUnauthorized},
		{name: "too many requests", statusCode: http.StatusTooManyRequests, header: http.Header{"Retry-After": []string{"5"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				for key, values := range tt.header {
					for _, v := range values {
						w.Header().Add(key, v)
					}
				}
				w.WriteHeader(tt.statusCode)
			}))
			defer srv.Close()

			client, err := NewCloudAPIClient(srv.URL, "1", "t", testLogger())
			if err != nil {
				t.Fatalf("failed to create client: %v", err)
			}
			err = client.SendText(context.Background(), "+15550001111", "hi")
			if !errors.Is(err, domainErrors.ErrExternalUnavailable) {
				t.Fatalf("expected unavailable, got %v", err)
			}
			if tt.statusCode == http.StatusTooManyRequests {
				var tm TooManyRequestsError
				if !errors.As(err, &tm) || tm.RetryAfter != 5*time.Second {
					t.Fatalf("expected retry after 5s, got %v", err)
				}
			}
		})
	}
}

func TestSendTextTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client, err := NewCloudAPIClient(url, "1", "t", testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	if err := client.SendText(context.Background(), "+15550001111", "hi"); !errors.Is(err, domainErrors.ErrExternalUnavailable) {
		t.Fatalf("expected unavailable, got %v", err)
	}
}

func TestSendTextLogsErrorResponses(t *testing.T) {
	called := make(chan struct{}, 1)
	handler := slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.LevelKey && a.Value.Any() == slog.LevelError {
			select {
			case called <- struct{}{}:
			default:
			}
		}
		return a
	}})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	client, err := NewCloudAPIClient(srv.URL, "1", "t", slog.New(handler))
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	if err := client.SendText(context.Background(), "+15550001111", "hi"); err == nil {
		t.Fatal("expected error from server")
	}

	select {
	case <-called:
	case <-time.After(time.Second):
		t.Fatal("expected error log to be written")
	}
}

func TestDisabledSender(t *testing.T) {
	if err := (Disabled{}).SendText(context.Background(), "+15550001111", "hi"); !errors.Is(err, domainErrors.ErrExternalUnavailable) {
		t.Fatalf("expected unavailable, got %v", err)
	}
}

func TestParseRetryAfter(t *testing.T) {
	now := time.Now()
	httpTime := now.Add(2 * time.Second).UTC().Format(http.TimeFormat)

	cases := []struct {
		name   string
		header string
		want   time.Duration
	}{
		{name: "empty", header: "", want: 5 * time.Second},
		{name: "seconds", header: "7", want: 7 * time.Second},
		{name: "http date", header: httpTime, want: 2 * time.Second},
		{name: "fallback", header: "bad", want: 5 * time.Second},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := parseRetryAfter(tc.header)
			if tc.header == httpTime {
				if got <= 0 || got > 3*time.Second {
					t.Fatalf("unexpected retry duration %v", got)
				}
			} else if got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
