package model

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/campusmart/internal/domain/errors"
)

func TestOrderStatusValues(t *testing.T) {
	cases := []struct {
		name  string
		got   OrderStatus
		value string
	}{
		{"pending", OrderStatusPending, "pending"},
		{"confirmed", OrderStatusConfirmed, "confirmed"},
		{"preparing", OrderStatusPreparing, "preparing"},
		{"ready", OrderStatusReady, "ready"},
		{"completed", OrderStatusCompleted, "completed"},
		{"cancelled", OrderStatusCancelled, "cancelled"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if string(tc.got) != tc.value {
				t.Fatalf("expected %s, got %s", tc.value, tc.got)
			}
			parsed, err := ParseOrderStatus(tc.value)
			if err != nil || parsed != tc.got {
				t.Fatalf("parse %q: got %s err=%v", tc.value, parsed, err)
			}
		})
	}

	if _, err := ParseOrderStatus("shipped"); !errors.Is(err, domainErrors.ErrInvalidStatus) {
		t.Fatalf("expected invalid status, got %v", err)
	}
}

func TestOrderStatusTransitions(t *testing.T) {
	all := []OrderStatus{
		OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusReady, OrderStatusCompleted, OrderStatusCancelled,
	}
	allowed := map[OrderStatus]map[OrderStatus]bool{
		OrderStatusPending:   {OrderStatusConfirmed: true, OrderStatusCancelled: true},
		OrderStatusConfirmed: {OrderStatusPreparing: true, OrderStatusCancelled: true},
		OrderStatusPreparing: {OrderStatusReady: true, OrderStatusCancelled: true},
		OrderStatusReady:     {OrderStatusCompleted: true, OrderStatusCancelled: true},
	}

	for _, from := range all {
		for _, to := range all {
			want := allowed[from][to]
			if got := from.CanTransitionTo(to); got != want {
				t.Errorf("%s -> %s: expected %v, got %v", from, to, want, got)
			}
		}
	}

	if !OrderStatusCompleted.IsTerminal() || !OrderStatusCancelled.IsTerminal() {
		t.Fatal("expected completed and cancelled to be terminal")
	}
	if OrderStatusReady.IsTerminal() {
		t.Fatal("ready must not be terminal")
	}
}

func TestVerificationCodeStatusAt(t *testing.T) {
	issued := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	code := VerificationCode{CreatedAt: issued, ExpiresAt: issued.Add(15 * time.Minute)}

	if got := code.StatusAt(issued.Add(14*time.Minute + 59*time.Second)); got != CodeStatusPending {
		t.Fatalf("expected pending before expiry, got %s", got)
	}
	if got := code.StatusAt(issued.Add(15 * time.Minute)); got != CodeStatusExpired {
		t.Fatalf("expected expired at expiry instant, got %s", got)
	}
	if got := code.StatusAt(issued.Add(16 * time.Minute)); got != CodeStatusExpired {
		t.Fatalf("expected expired after expiry, got %s", got)
	}

	consumedAt := issued.Add(time.Minute)
	code.ConsumedAt = &consumedAt
	if got := code.StatusAt(issued.Add(2 * time.Minute)); got != CodeStatusConsumed {
		t.Fatalf("expected consumed, got %s", got)
	}
}

func TestCartLineSubtotal(t *testing.T) {
	line := CartLine{UnitPrice: decimal.RequireFromString("10.10"), Quantity: 3}
	if !line.Subtotal().Equal(decimal.RequireFromString("30.30")) {
		t.Fatalf("unexpected subtotal %s", line.Subtotal())
	}
}

func TestContactInfoComplete(t *testing.T) {
	full := ContactInfo{FirstName: "Ana", LastName: "Diaz", Location: "Dorm B", Phone: "+15550001111"}
	if !full.Complete() {
		t.Fatal("expected complete contact")
	}
	blank := full
	blank.Location = "   "
	if blank.Complete() {
		t.Fatal("whitespace location must be incomplete")
	}
}

func TestUserPhoneVerified(t *testing.T) {
	now := time.Now()
	if (User{Phone: "+15550001111"}).PhoneVerified() {
		t.Fatal("phone without timestamp must not be verified")
	}
	if !(User{Phone: "+15550001111", PhoneVerifiedAt: &now}).PhoneVerified() {
		t.Fatal("expected verified phone")
	}
}

func TestValidQuantity(t *testing.T) {
	for q, want := range map[int]bool{-1: false, 0: false, 1: true, MaxQuantity: true, MaxQuantity + 1: false, 5_000_000_000: false} {
		if got := ValidQuantity(q); got != want {
			t.Fatalf("ValidQuantity(%d) = %v, want %v", q, got, want)
		}
	}
}

func TestNormalizePrice(t *testing.T) {
	cases := []struct {
		in    string
		want  string
		valid bool
	}{
		{"12.5", "12.5", true},
		{"0.005", "0.01", true},
		{"0.001", "0", false},
		{"-3", "-3", false},
		{"999999.99", "999999.99", true},
		{"999999.995", "1000000", false},
		{"12345678901234", "12345678901234", false},
	}
	for _, tc := range cases {
		got, ok := NormalizePrice(decimal.RequireFromString(tc.in))
		if ok != tc.valid {
			t.Fatalf("%s: expected valid=%v, got %v", tc.in, tc.valid, ok)
		}
		if !got.Equal(decimal.RequireFromString(tc.want)) {
			t.Fatalf("%s: expected %s, got %s", tc.in, tc.want, got)
		}
	}
}
