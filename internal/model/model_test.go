package model

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestColorFor(t *testing.T) {
	assert.Equal(t, "#22c55e", ColorFor(MoodPositive))
	assert.Equal(t, "#ef4444", ColorFor(MoodNegative))
	assert.Equal(t, "#f59e0b", ColorFor(MoodNeutral))
	assert.Equal(t, "#f59e0b", ColorFor(Mood("")))
}

func TestParseMoodLabel(t *testing.T) {
	assert.Equal(t, MoodPositive, ParseMoodLabel("positive"))
	assert.Equal(t, MoodNegative, ParseMoodLabel("negative"))
	assert.Equal(t, MoodNeutral, ParseMoodLabel("neutral"))
	assert.Equal(t, MoodNeutral, ParseMoodLabel("Positive"))
	assert.Equal(t, MoodNeutral, ParseMoodLabel(""))
}

func TestFallbackMood(t *testing.T) {
	fb := FallbackMood()
	assert.Equal(t, MoodNeutral, fb.Mood)
	assert.Equal(t, "Unable to analyze mood due to technical issues.", fb.Explanation)
}

func TestTitles(t *testing.T) {
	items := []HeadlineItem{{Title: "A"}, {Title: "B", Snippet: "s"}}
	assert.Equal(t, []string{"A", "B"}, Titles(items))
	assert.Equal(t, 0, len(Titles(nil)))
}

func TestFilterCountries(t *testing.T) {
	tests := []struct {
		name string
		term string
		want []string
	}{
		{"case insensitive substring", "GUINEA", []string{"Equatorial Guinea", "Guinea", "Guinea-Bissau", "Papua New Guinea"}},
		{"surrounding whitespace", "  japan ", []string{"Japan"}},
		{"no match", "atlantis", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterCountries(tt.term))
		})
	}
}

func TestFilterCountries_EmptyReturnsAll(t *testing.T) {
	all := FilterCountries("")
	assert.Equal(t, len(Countries()), len(all))
	assert.Equal(t, "Afghanistan", all[0])
	assert.Equal(t, "Zimbabwe", all[len(all)-1])
}

func TestCountries_ReturnsCopy(t *testing.T) {
	c := Countries()
	c[0] = "Changed"
	assert.Equal(t, "Afghanistan", Countries()[0])
}
