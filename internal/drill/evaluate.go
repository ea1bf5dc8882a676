package drill

import "strings"

// Verdict is the outcome of judging one submitted answer.
type Verdict struct {
	// Correct is true when the normalized submission equals any accepted answer.
	Correct bool

	// Matched is the accepted answer (original spelling) the submission
	// matched. Empty when Correct is false.
	Matched string

	// Expected is the first accepted answer, used for display.
	Expected string
}

// Evaluate judges a submitted answer against the question's accepted set.
// Both sides are normalized by trimming surrounding whitespace and
// lower-casing; kana strings are unaffected by case folding. Callers reject
// blank input before evaluation; a blank submission evaluates to incorrect
// regardless.
func Evaluate(q Question, submitted string) Verdict {
	v := Verdict{}
	if len(q.AcceptedAnswers) > 0 {
		v.Expected = q.AcceptedAnswers[0]
	}

	norm := normalize(submitted)
	if norm == "" {
		return v
	}

	for _, accepted := range q.AcceptedAnswers {
		if normalize(accepted) == norm {
			v.Correct = true
			v.Matched = accepted
			return v
		}
	}
	return v
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
