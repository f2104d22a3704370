package quizgen

import "strings"

// stripFences removes an optional markdown code-fence wrapper from the
// model's response: a leading ``` with an optional language tag, and a
// trailing ```. The content between is returned trimmed.
func stripFences(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "```") {
		s = s[3:]
		// Drop a language tag like "json" up to the first newline.
		if i := strings.IndexByte(s, '\n'); i >= 0 && isFenceTag(s[:i]) {
			s = s[i+1:]
		}
	}
	if strings.HasSuffix(strings.TrimSpace(s), "```") {
		s = strings.TrimSpace(s)
		s = s[:len(s)-3]
	}

	return strings.TrimSpace(s)
}

func isFenceTag(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) > 10 {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

// extractObject returns the widest substring spanning from the first '{'
// to the last '}'. This is the fallback when the response carries prose
// around the JSON payload.
func extractObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start < 0 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}
