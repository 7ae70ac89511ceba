package llm

import "context"

const (
	MoodPositive = "positive"
	MoodNeutral  = "neutral"
	MoodNegative = "negative"
)

type Analysis struct {
	Mood        string
	Explanation string
	ModelUsed   string
}

// MoodAnalyzer classifies a batch of headlines. Implementations return
// errors as-is; degrading to a default mood is the caller's decision.
type MoodAnalyzer interface {
	Analyze(ctx context.Context, headlines []string) (*Analysis, error)
	Name() string
}
