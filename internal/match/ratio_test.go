package match

import "testing"

func TestRatioKnownValues(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"AAPL", "AAPL", 100},
		{"", "", 100},
		{"abc", "", 0},
		{"", "abc", 0},
		{"APPL", "AAPL", 75},  // one substitution over length 4
		{"TSLA", "TLSA", 50},  // transposition costs two edits
		{"kitten", "sitting", 57},
		{"AAPL.", "AAPL", 80}, // trailing punctuation costs one deletion
		{"abc", "abd", 67},    // 66.67 rounds up
		{"ab", "ac", 50},
		{"abc", "xyz", 0},
	}

	for _, test := range tests {
		if got := Ratio(test.a, test.b); got != test.want {
			t.Errorf("Ratio(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
		}
	}
}

func TestRatioSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"AAPL", "APPL"},
		{"Tesla Inc", "Tesla"},
		{"Microsoft", "Microsfot"},
		{"", "GME"},
	}

	for _, p := range pairs {
		if Ratio(p[0], p[1]) != Ratio(p[1], p[0]) {
			t.Errorf("Ratio(%q, %q) not symmetric", p[0], p[1])
		}
	}
}

func TestRatioCaseSensitive(t *testing.T) {
	// Case normalization is the caller's decision, not the primitive's.
	if Ratio("aapl", "AAPL") == 100 {
		t.Error("Ratio must be case sensitive")
	}
	if Ratio("AAPL", "AAPL") != 100 {
		t.Error("identical uppercase strings must score 100")
	}
}

func TestMaxDistWithin(t *testing.T) {
	// For length 4 and threshold 90, no edit is affordable:
	// one edit gives round(100*3/4) = 75.
	if got := maxDistWithin(4, 90); got != 0 {
		t.Errorf("maxDistWithin(4, 90) = %d, want 0", got)
	}
	// Threshold 0 accepts everything.
	if got := maxDistWithin(5, 0); got != 5 {
		t.Errorf("maxDistWithin(5, 0) = %d, want 5", got)
	}
	// kitten/sitting at 57 needs distance 3 over max length 7.
	if got := maxDistWithin(7, 57); got < 3 {
		t.Errorf("maxDistWithin(7, 57) = %d, want >= 3", got)
	}
}
