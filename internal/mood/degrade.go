package mood

import (
	"log/slog"
	"moodmeter/internal/model"
	"moodmeter/pkg/llm"
)

// Degrade is the one place an analyzer failure becomes the fallback mood.
// The second return value reports whether the fallback was used.
func Degrade(analysis *llm.Analysis, err error) (model.MoodResult, bool) {
	if err != nil {
		slog.Error("mood analysis failed, using fallback", "error", err)
		return model.FallbackMood(), true
	}

	if analysis == nil {
		slog.Error("mood analysis returned no result, using fallback")
		return model.FallbackMood(), true
	}

	explanation := analysis.Explanation
	if explanation == "" {
		explanation = llm.NoExplanation
	}

	return model.MoodResult{
		Mood:        model.ParseMoodLabel(analysis.Mood),
		Explanation: explanation,
	}, false
}
