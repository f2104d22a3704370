package quizgen

// Question is a single multiple-choice question as shown to the user.
type Question struct {
	// Question is the prompt text.
	Question string `json:"question"`

	// Options holds exactly 4 answer choices in display order.
	Options []string `json:"options"`

	// Answer is the correct choice, always equal to one of Options.
	// It is matched by value, never by position, so reordering Options
	// cannot invalidate it.
	Answer string `json:"answer"`

	// Explanation is an optional short rationale shown after scoring.
	Explanation string `json:"explanation,omitempty"`
}

// Quiz is an ordered set of questions generated from one source paragraph.
type Quiz []Question

// AnswerIndex returns the position of the correct answer within Options,
// or -1 if it is absent (which validation prevents).
func (q Question) AnswerIndex() int {
	for i, opt := range q.Options {
		if opt == q.Answer {
			return i
		}
	}
	return -1
}
