package stemmer

import "testing"

func TestSnowballStem(t *testing.T) {
	s := Snowball{}

	for _, w := range []string{"connected", "connecting", "connection", "connects"} {
		if got := s.Stem(w); got != "connect" {
			t.Errorf("Stem(%q) = %q, want connect", w, got)
		}
	}

	if got := s.Stem("  "); got != "" {
		t.Errorf("expected empty stem for blank input, got %q", got)
	}
}

func TestSnowballIsDeterministic(t *testing.T) {
	s := Snowball{}
	for _, w := range []string{"overthinking", "anxious", "relieved"} {
		if s.Stem(w) != s.Stem(w) {
			t.Errorf("Stem(%q) is not deterministic", w)
		}
	}
}
