package llm

import "testing"

func TestParseMood(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		mood        string
		explanation string
	}{
		{
			name:        "well formed answer",
			input:       "MOOD: positive\nREASON: Economy is strong",
			mood:        "positive",
			explanation: "Economy is strong",
		},
		{
			name:        "case insensitive and lower-cased",
			input:       "mood:   NEGATIVE\nreason: Protests continue",
			mood:        "negative",
			explanation: "Protests continue",
		},
		{
			name:        "no mood and no reason",
			input:       "I cannot determine that.",
			mood:        "neutral",
			explanation: "No explanation provided.",
		},
		{
			name:        "reason without mood",
			input:       "REASON: Mixed economic signals",
			mood:        "neutral",
			explanation: "Mixed economic signals",
		},
		{
			name:        "mood outside the allowed set",
			input:       "MOOD: ecstatic\nREASON: Festival season",
			mood:        "neutral",
			explanation: "Festival season",
		},
		{
			name:        "reason stops at end of line",
			input:       "MOOD: neutral\nREASON: Mixed economic signals\nHEADLINES: a\nb",
			mood:        "neutral",
			explanation: "Mixed economic signals",
		},
		{
			name:        "surrounding prose and CRLF",
			input:       "Sure!\r\nMOOD: positive\r\nREASON: Record tourism\r\n",
			mood:        "positive",
			explanation: "Record tourism",
		},
		{
			name:        "blank reason line does not borrow the next line",
			input:       "MOOD: negative\nREASON:\nHEADLINES: Floods hit the coast",
			mood:        "negative",
			explanation: "No explanation provided.",
		},
		{
			name:        "mood label on the following line is ignored",
			input:       "MOOD:\npositive\nREASON: Calm week",
			mood:        "neutral",
			explanation: "Calm week",
		},
		{
			name:        "empty text",
			input:       "",
			mood:        "neutral",
			explanation: "No explanation provided.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mood, explanation := ParseMood(tt.input)
			if mood != tt.mood {
				t.Errorf("mood: got %q, want %q", mood, tt.mood)
			}
			if explanation != tt.explanation {
				t.Errorf("explanation: got %q, want %q", explanation, tt.explanation)
			}
		})
	}
}

func TestBuildMoodPrompt(t *testing.T) {
	prompt := buildMoodPrompt([]string{"First", "Second"})

	want := "HEADLINES: First\nSecond\n"
	if len(prompt) < len(want) || prompt[len(prompt)-len(want):] != want {
		t.Errorf("prompt does not end with joined headlines: %q", prompt)
	}
}
