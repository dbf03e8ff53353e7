package knowledge

import (
	"testing"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{
			name: "identical strings",
			a:    "how do i reset my password",
			b:    "how do i reset my password",
			want: 1.0,
		},
		{
			name: "same tokens different order",
			a:    "reset password",
			b:    "password reset",
			want: 1.0,
		},
		{
			name: "empty left",
			a:    "",
			b:    "anything",
			want: 0,
		},
		{
			name: "empty right",
			a:    "anything",
			b:    "",
			want: 0,
		},
		{
			name: "both empty",
			a:    "",
			b:    "",
			want: 0,
		},
		{
			// Accented variant shares no token and no prefix, but the
			// character lengths are equal, so the blend is exactly 0.6.
			name: "multi-byte runes count as single characters",
			a:    "crème",
			b:    "creme",
			want: 0.6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Similarity(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("Similarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSimilarityBounds(t *testing.T) {
	pairs := [][2]string{
		{"how do i reset my password", "forgot my password"},
		{"pricing", "how much does the service cost"},
		{"a", "a much longer phrase with many words"},
		{"how do i", "how do i reset my password"},
		{"totally unrelated words here", "different content entirely"},
	}

	for _, pair := range pairs {
		got := Similarity(pair[0], pair[1])
		if got < 0 || got > 1 {
			t.Errorf("Similarity(%q, %q) = %v, out of [0,1]", pair[0], pair[1], got)
		}
	}
}

func TestSimilaritySymmetric(t *testing.T) {
	pairs := [][2]string{
		{"how do i reset my password", "forgot my password"},
		{"how do i", "how do i reset my password"},
		{"custom domain", "can i use my own domain"},
	}

	for _, pair := range pairs {
		ab := Similarity(pair[0], pair[1])
		ba := Similarity(pair[1], pair[0])
		if ab != ba {
			t.Errorf("Similarity not symmetric for (%q, %q): %v vs %v", pair[0], pair[1], ab, ba)
		}
	}
}

func TestSimilarityPrefixBeatsJaccardAlone(t *testing.T) {
	// A truncated query shares a prefix; the blended heuristic must keep it
	// above the raw token overlap.
	a := "how do i reset"
	b := "how do i reset my password"

	aTokens, bTokens := 4.0, 6.0
	jaccard := aTokens / bTokens // intersection 4, union 6
	got := Similarity(a, b)
	if got <= jaccard {
		t.Errorf("Similarity(%q, %q) = %v, want > plain jaccard %v", a, b, got, jaccard)
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("  How Do I Reset My Password  "); got != "how do i reset my password" {
		t.Errorf("Normalize = %q", got)
	}
}
