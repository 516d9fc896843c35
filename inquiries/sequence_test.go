package inquiries

import "testing"

func TestFormatRefID(t *testing.T) {
	cases := []struct {
		prefix string
		n      int
		want   string
	}{
		{"BK", 1, "BK-001"},
		{"BK", 18, "BK-018"},
		{"CL", 7, "CL-007"},
		{"BK", 999, "BK-999"},
		{"BK", 1000, "BK-1000"},
	}
	for _, c := range cases {
		if got := FormatRefID(c.prefix, c.n); got != c.want {
			t.Errorf("FormatRefID(%q, %d) = %q, want %q", c.prefix, c.n, got, c.want)
		}
	}
}

func TestParseRefSeq(t *testing.T) {
	cases := []struct {
		id   string
		want int
	}{
		{"BK-001", 1},
		{"BK-017", 17},
		{"CL-042", 42},
		{"BK-1000", 1000},
		{"BK-", 0},
		{"BK-xyz", 0},
		{"nonsense", 0},
		{"", 0},
	}
	for _, c := range cases {
		if got := ParseRefSeq(c.id); got != c.want {
			t.Errorf("ParseRefSeq(%q) = %d, want %d", c.id, got, c.want)
		}
	}
}

func TestSequenceRoundTrip(t *testing.T) {
	// BK-017 followed by BK-018
	next := ParseRefSeq("BK-017") + 1
	if got := FormatRefID("BK", next); got != "BK-018" {
		t.Errorf("successor of BK-017 = %q, want BK-018", got)
	}
}
