package llm

import (
	"fmt"
	"strings"
)

const moodPromptTemplate = `You are an expert sentiment analyst. Analyze the sentiment and infer the general mood of the country. Format your response as below.
Please focus on:
- If majority public sentiment is positive, then give positive only.
- Overall public sentiment
- Economic indicators
- Social/political stability
- Major events' impact
- simple language, not too many jargons

Required format:
MOOD: [positive/neutral/negative]
REASON: [A concise explanation]
HEADLINES: %s
`

func joinHeadlines(headlines []string) string {
	return strings.Join(headlines, "\n")
}

func buildMoodPrompt(headlines []string) string {
	return fmt.Sprintf(moodPromptTemplate, joinHeadlines(headlines))
}
