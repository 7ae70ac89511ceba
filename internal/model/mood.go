package model

type Mood string

const (
	MoodPositive Mood = "positive"
	MoodNeutral  Mood = "neutral"
	MoodNegative Mood = "negative"
)

const (
	FallbackExplanation = "Unable to analyze mood due to technical issues."

	colorPositive = "#22c55e"
	colorNegative = "#ef4444"
	colorNeutral  = "#f59e0b"
)

type MoodResult struct {
	Mood        Mood
	Explanation string
}

// FallbackMood is shown whenever lookup or analysis failed.
func FallbackMood() MoodResult {
	return MoodResult{Mood: MoodNeutral, Explanation: FallbackExplanation}
}

// ParseMoodLabel maps free text onto the three labels, neutral otherwise.
func ParseMoodLabel(s string) Mood {
	switch Mood(s) {
	case MoodPositive:
		return MoodPositive
	case MoodNegative:
		return MoodNegative
	default:
		return MoodNeutral
	}
}

func ColorFor(m Mood) string {
	switch m {
	case MoodPositive:
		return colorPositive
	case MoodNegative:
		return colorNegative
	default:
		return colorNeutral
	}
}

type MoodReport struct {
	Country   string
	Headlines []HeadlineItem
	Mood      MoodResult
	Degraded  bool
}
