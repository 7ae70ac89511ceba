package llm

import (
	"regexp"
	"strings"
)

const NoExplanation = "No explanation provided."

var (
	moodPattern   = regexp.MustCompile(`(?i)MOOD:[ \t]*(positive|neutral|negative)`)
	reasonPattern = regexp.MustCompile(`(?i)REASON:[ \t]*([^\r\n]*)`)
)

// ParseMood extracts the two-line MOOD/REASON answer. Each line is matched on
// its own, so a REASON without a MOOD still yields its explanation.
func ParseMood(text string) (mood, explanation string) {
	mood = MoodNeutral
	if m := moodPattern.FindStringSubmatch(text); m != nil {
		mood = strings.ToLower(m[1])
	}

	explanation = NoExplanation
	if m := reasonPattern.FindStringSubmatch(text); m != nil {
		if reason := strings.TrimSpace(m[1]); reason != "" {
			explanation = reason
		}
	}

	return mood, explanation
}
