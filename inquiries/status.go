package inquiries

import "strings"

// Status is the canonical workflow state of a booking. Persisted records
// may carry any recognized alias spelling; classification collapses them.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusVerifying Status = "Verifying"
	StatusReserved  Status = "Reserved"
)

// statusAliases maps lowercased spellings to their canonical state.
var statusAliases = map[string]Status{
	"pending":           StatusPending,
	"accepted":          StatusPending,
	"proposal sent":     StatusPending,
	"sent":              StatusPending,
	"open":              StatusPending,
	"verifying":         StatusVerifying,
	"for verification":  StatusVerifying,
	"payment submitted": StatusVerifying,
	"reserved":          StatusReserved,
	"confirmed":         StatusReserved,
	"paid":              StatusReserved,
	"booked":            StatusReserved,
}

// NormalizeStatus resolves a raw status string to its canonical state.
// The second return is false for unrecognized spellings.
func NormalizeStatus(raw string) (Status, bool) {
	s, ok := statusAliases[strings.ToLower(strings.TrimSpace(raw))]
	return s, ok
}

// Classify collapses a stored status value to its canonical state.
// Unrecognized values fall through to Pending, which keeps the record in
// the editable branch the same way the customer UI treats them.
func Classify(raw string) Status {
	if s, ok := NormalizeStatus(raw); ok {
		return s
	}
	return StatusPending
}

// IsEditable reports whether a booking with this status still accepts
// client-side selection and payment-proof submission.
func IsEditable(raw string) bool {
	return Classify(raw) == StatusPending
}
