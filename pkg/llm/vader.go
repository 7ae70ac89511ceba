package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonreiter/govader"
)

const vaderThreshold = 0.20

// VaderClient scores headlines locally with the VADER lexicon. It needs no
// credentials and makes no network calls.
type VaderClient struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderClient() *VaderClient {
	return &VaderClient{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (c *VaderClient) Name() string {
	return "vader"
}

func (c *VaderClient) Analyze(ctx context.Context, headlines []string) (*Analysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var total float64
	var scored int
	for _, h := range headlines {
		if strings.TrimSpace(h) == "" {
			continue
		}
		total += c.analyzer.PolarityScores(h).Compound
		scored++
	}

	if scored == 0 {
		return &Analysis{
			Mood:        MoodNeutral,
			Explanation: "No headlines to score.",
			ModelUsed:   c.Name(),
		}, nil
	}

	avg := total / float64(scored)

	return &Analysis{
		Mood:        vaderLabel(avg),
		Explanation: fmt.Sprintf("Average headline sentiment %.2f across %d headlines.", avg, scored),
		ModelUsed:   c.Name(),
	}, nil
}

func vaderLabel(score float64) string {
	switch {
	case score >= vaderThreshold:
		return MoodPositive
	case score <= -vaderThreshold:
		return MoodNegative
	default:
		return MoodNeutral
	}
}
