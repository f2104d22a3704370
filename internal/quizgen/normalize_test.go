package quizgen

import "testing"

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no fences", `{"quiz":[]}`, `{"quiz":[]}`},
		{"plain fences", "```\n{\"quiz\":[]}\n```", `{"quiz":[]}`},
		{"json tag", "```json\n{\"quiz\":[]}\n```", `{"quiz":[]}`},
		{"surrounding whitespace", "  ```json\n{\"quiz\":[]}\n```  ", `{"quiz":[]}`},
		{"leading fence only", "```json\n{\"quiz\":[]}", `{"quiz":[]}`},
		{"brace on fence line", "```{\"quiz\":[]}```", `{"quiz":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripFences(tt.in); got != tt.want {
				t.Fatalf("stripFences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExtractObject(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{"bare object", `{"a":1}`, `{"a":1}`, true},
		{"prose around object", `Here you go: {"a":1} hope it helps`, `{"a":1}`, true},
		{"nested braces span widest", `x {"a":{"b":2}} y`, `{"a":{"b":2}}`, true},
		{"no object", "nothing here", "", false},
		{"only open brace", "{oops", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractObject(tt.in)
			if ok != tt.wantOK || got != tt.want {
				t.Fatalf("extractObject(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestTruncateSource(t *testing.T) {
	if got := truncateSource("short", 2000); got != "short" {
		t.Fatalf("short text should pass through, got %q", got)
	}

	long := make([]rune, 3000)
	for i := range long {
		long[i] = 'x'
	}
	got := truncateSource(string(long), 2000)
	if len([]rune(got)) != 2000 {
		t.Fatalf("expected 2000 chars, got %d", len([]rune(got)))
	}
}
