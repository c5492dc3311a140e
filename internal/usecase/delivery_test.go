package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/polkiloo/campusmart/internal/config"
	domainErrors "github.com/polkiloo/campusmart/internal/domain/errors"
	"github.com/polkiloo/campusmart/internal/domain/model"
	testhelpers "github.com/polkiloo/campusmart/internal/test"
)

func newDispatcher(t *testing.T, sender *testhelpers.MessageSenderStub, fallback string, enabled bool) *DeliveryDispatcher {
	t.Helper()
	cfg := &config.Config{
		CodeTTL:                  15 * time.Minute,
		MessagingFallbackNumber:  fallback,
		MessagingFallbackEnabled: enabled,
	}
	d, err := NewDeliveryDispatcher(sender, cfg, discardLogger())
	if err != nil {
		t.Fatalf("new dispatcher: %v", err)
	}
	return d
}

func TestDeliveryPushSucceeds(t *testing.T) {
	sender := &testhelpers.MessageSenderStub{}
	d := newDispatcher(t, sender, "+15559990000", true)

	res := d.Send(context.Background(), "+15550001111", "123456")
	if res.Method != model.DeliveryAPI || res.DeepLink != "" {
		t.Fatalf("unexpected result: %+v", res)
	}
	if len(sender.Sent) != 1 {
		t.Fatalf("expected one push, got %d", len(sender.Sent))
	}
	msg := sender.Sent[0]
	if msg.To != "+15550001111" {
		t.Fatalf("unexpected recipient %q", msg.To)
	}
	if !strings.Contains(msg.Body, "123456") || !strings.Contains(msg.Body, "15 minutes") {
		t.Fatalf("unexpected body %q", msg.Body)
	}
}

func TestDeliveryFallsBackToClickToSend(t *testing.T) {
	sender := &testhelpers.MessageSenderStub{Err: errors.New("upstream 500")}
	d := newDispatcher(t, sender, "+15559990000", true)

	res := d.Send(context.Background(), "+15550001111", "123456")
	if res.Method != model.DeliveryClickToSend {
		t.Fatalf("expected click-to-send, got %+v", res)
	}
	want := "https://wa.me/15559990000?text=CampusMart%20verification%20code%3A%20123456"
	if res.DeepLink != want {
		t.Fatalf("unexpected link\n got: %s\nwant: %s", res.DeepLink, want)
	}
}

func TestDeliveryFallbackWithoutNumberTargetsUser(t *testing.T) {
	sender := &testhelpers.MessageSenderStub{Err: errors.New("timeout")}
	d := newDispatcher(t, sender, "", true)

	res := d.Send(context.Background(), "+15550001111", "654321")
	if res.Method != model.DeliveryClickToSend {
		t.Fatalf("expected click-to-send, got %+v", res)
	}
	if !strings.HasPrefix(res.DeepLink, "https://wa.me/15550001111?text=") {
		t.Fatalf("unexpected link %s", res.DeepLink)
	}
}

func TestDeliveryFallbackDisabled(t *testing.T) {
	sender := &testhelpers.MessageSenderStub{Err: errors.New("timeout")}
	d := newDispatcher(t, sender, "+15559990000", false)

	res := d.Send(context.Background(), "+15550001111", "654321")
	if res.Method != model.DeliveryUnavailable || res.DeepLink != "" {
		t.Fatalf("expected unavailable, got %+v", res)
	}
}

func TestDeliveryFallbackNumberIsNormalized(t *testing.T) {
	sender := &testhelpers.MessageSenderStub{Err: errors.New("upstream 500")}
	d := newDispatcher(t, sender, " +1 (555) 999-0000 ", true)

	res := d.Send(context.Background(), "+15550001111", "123456")
	if !strings.HasPrefix(res.DeepLink, "https://wa.me/15559990000?text=") {
		t.Fatalf("expected normalized fallback link, got %q", res.DeepLink)
	}
}

func TestNewDeliveryDispatcherRejectsInvalidFallbackNumber(t *testing.T) {
	cfg := &config.Config{MessagingFallbackNumber: "front desk", MessagingFallbackEnabled: true}
	if _, err := NewDeliveryDispatcher(&testhelpers.MessageSenderStub{}, cfg, discardLogger()); !errors.Is(err, domainErrors.ErrInvalidPhone) {
		t.Fatalf("expected invalid phone, got %v", err)
	}
}
