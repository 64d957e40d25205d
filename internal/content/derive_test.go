package content

import (
	"strings"
	"testing"
)

func TestReadingTimeBoundaries(t *testing.T) {
	cases := []struct {
		words    int
		expected int
	}{
		{0, 1},
		{1, 1},
		{199, 1},
		{200, 1},
		{201, 2},
		{400, 2},
		{401, 3},
	}

	for _, tc := range cases {
		if got := ReadingTime(tc.words, 200); got != tc.expected {
			t.Fatalf("ReadingTime(%d, 200) = %d, expected %d", tc.words, got, tc.expected)
		}
	}
}

func TestReadingTimeDefaultsRate(t *testing.T) {
	if got := ReadingTime(400, 0); got != 2 {
		t.Fatalf("expected default words-per-minute rate, got %d minutes", got)
	}
}

func TestCountWords(t *testing.T) {
	body := []byte("one two\nthree\t four\n\nfive")
	if got := CountWords(body); got != 5 {
		t.Fatalf("expected 5 words, got %d", got)
	}
	if got := CountWords(nil); got != 0 {
		t.Fatalf("expected 0 words for empty body, got %d", got)
	}
}

func TestFirstParagraphSkipsHeadingsAndFences(t *testing.T) {
	body := []byte("# Title\n\n```go\nfmt.Println(\"hi\")\n```\n\nThe actual\nopening paragraph.\n\nSecond paragraph.")
	got := FirstParagraph(body)
	if got != "The actual opening paragraph." {
		t.Fatalf("unexpected first paragraph: %q", got)
	}
}

func TestFirstParagraphEmptyBody(t *testing.T) {
	if got := FirstParagraph([]byte("# Only a heading")); got != "" {
		t.Fatalf("expected empty paragraph, got %q", got)
	}
}

func TestExcerptShortTextUntouched(t *testing.T) {
	text := "short enough"
	if got := Excerpt(text, 150); got != text {
		t.Fatalf("expected text unchanged, got %q", got)
	}
}

func TestExcerptTruncatesMidWord(t *testing.T) {
	text := strings.Repeat("abcde ", 30) // 180 chars
	got := Excerpt(text, 150)
	if len([]rune(got)) != 153 {
		t.Fatalf("expected 150 runes plus ellipsis, got %d", len([]rune(got)))
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("expected ellipsis suffix, got %q", got)
	}
	// Truncation lands on the exact character boundary, even inside a word.
	if got[:150] != text[:150] {
		t.Fatalf("expected prefix preserved, got %q", got[:150])
	}
}

func TestExcerptRespectsRuneBoundaries(t *testing.T) {
	text := strings.Repeat("é", 200)
	got := Excerpt(text, 150)
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("expected ellipsis suffix, got %q", got)
	}
	if len([]rune(got)) != 153 {
		t.Fatalf("expected 150 runes plus ellipsis, got %d", len([]rune(got)))
	}
}
