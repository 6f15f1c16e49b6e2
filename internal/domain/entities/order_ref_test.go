package entities

import (
	"testing"
	"time"
)

func TestNewOrderRef(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	got := NewOrderRef("3f2a9c1e-7b4d-4e2a-9c1e-0a1b2c3d4e5f", at)
	want := "WSB-3f2a9c1e-7b4d-4e2a-9c1e-0a1b2c3d4e5f-1773480600"
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestParseBookingID(t *testing.T) {
	tests := []struct {
		name   string
		ref    string
		wantID string
		wantOK bool
	}{
		{"uuid booking id", "WSB-3f2a9c1e-7b4d-4e2a-9c1e-0a1b2c3d4e5f-1773480600", "3f2a9c1e-7b4d-4e2a-9c1e-0a1b2c3d4e5f", true},
		{"simple booking id", "WSB-b1-1700000000", "b1", true},
		{"surrounding whitespace", "  WSB-b1-1700000000  ", "b1", true},
		{"empty", "", "", false},
		{"wrong prefix", "ORD-b1-1700000000", "", false},
		{"missing suffix", "WSB-b1", "", false},
		{"non-numeric suffix", "WSB-b1-abc", "", false},
		{"empty booking id", "WSB--1700000000", "", false},
		{"foreign reference", "payment-12345", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			id, ok := ParseBookingID(tc.ref)
			if ok != tc.wantOK {
				t.Fatalf("expected ok=%v, got %v", tc.wantOK, ok)
			}
			if id != tc.wantID {
				t.Fatalf("expected id %q, got %q", tc.wantID, id)
			}
		})
	}
}

func TestOrderRefRoundTrip(t *testing.T) {
	ref := NewOrderRef("9a8b7c6d-1e2f-4a5b-8c9d-0e1f2a3b4c5d", time.Now())
	id, ok := ParseBookingID(ref)
	if !ok || id != "9a8b7c6d-1e2f-4a5b-8c9d-0e1f2a3b4c5d" {
		t.Fatalf("round trip failed: ref=%s id=%q ok=%v", ref, id, ok)
	}
}
