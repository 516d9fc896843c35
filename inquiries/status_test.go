package inquiries

import "testing"

func TestClassifyAliases(t *testing.T) {
	cases := map[string]Status{
		"Pending":           StatusPending,
		"Accepted":          StatusPending,
		"Proposal Sent":     StatusPending,
		"Sent":              StatusPending,
		"Open":              StatusPending,
		"Verifying":         StatusVerifying,
		"For Verification":  StatusVerifying,
		"Payment Submitted": StatusVerifying,
		"Reserved":          StatusReserved,
		"Confirmed":         StatusReserved,
		"Paid":              StatusReserved,
		"Booked":            StatusReserved,
	}
	for raw, want := range cases {
		if got := Classify(raw); got != want {
			t.Errorf("Classify(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	if got := Classify("  confirmed "); got != StatusReserved {
		t.Errorf("Classify lowercased/padded alias = %q, want %q", got, StatusReserved)
	}
	if got := Classify("PAYMENT SUBMITTED"); got != StatusVerifying {
		t.Errorf("Classify uppercase alias = %q, want %q", got, StatusVerifying)
	}
}

func TestClassifyUnknownFallsThroughToPending(t *testing.T) {
	for _, raw := range []string{"", "Cancelled", "banana", "Reserved!"} {
		if got := Classify(raw); got != StatusPending {
			t.Errorf("Classify(%q) = %q, want Pending fallthrough", raw, got)
		}
	}
}

func TestNormalizeStatusRejectsUnknown(t *testing.T) {
	if _, ok := NormalizeStatus("Cancelled"); ok {
		t.Error("NormalizeStatus should reject unrecognized spellings")
	}
	if s, ok := NormalizeStatus("Booked"); !ok || s != StatusReserved {
		t.Errorf("NormalizeStatus(Booked) = %q, %v", s, ok)
	}
}

func TestIsEditable(t *testing.T) {
	for _, raw := range []string{"Pending", "Accepted", "Proposal Sent", "Sent", "Open"} {
		if !IsEditable(raw) {
			t.Errorf("IsEditable(%q) = false, want true", raw)
		}
	}
	for _, raw := range []string{"Verifying", "For Verification", "Payment Submitted", "Reserved", "Confirmed", "Paid", "Booked"} {
		if IsEditable(raw) {
			t.Errorf("IsEditable(%q) = true, want false", raw)
		}
	}
}
