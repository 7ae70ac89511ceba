package handler

import "moodmeter/internal/model"

type CountryRequest struct {
	Country string `json:"country"`
}

type AnalyzeRequest struct {
	Headlines []string `json:"headlines"`
}

type HeadlineResponse struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
}

type NewsResponse struct {
	NewsResults []HeadlineResponse `json:"news_results"`
}

type MoodResponse struct {
	Country     string             `json:"country"`
	Mood        string             `json:"mood"`
	Explanation string             `json:"explanation"`
	Color       string             `json:"color"`
	Degraded    bool               `json:"degraded"`
	NewsResults []HeadlineResponse `json:"news_results"`
}

type AnalyzeResponse struct {
	Mood        string `json:"mood"`
	Explanation string `json:"explanation"`
	Color       string `json:"color"`
}

type CountriesResponse struct {
	Countries []string `json:"countries"`
	Total     int      `json:"total"`
}

type HealthResponse struct {
	Status     string `json:"status"`
	Search     string `json:"search"`
	Completion string `json:"completion"`
	Provider   string `json:"provider"`
}

func toHeadlineResponses(items []model.HeadlineItem) []HeadlineResponse {
	res := make([]HeadlineResponse, len(items))
	for i, item := range items {
		res[i] = HeadlineResponse{
			Title:   item.Title,
			Snippet: item.Snippet,
			Link:    item.Link,
		}
	}
	return res
}

func toMoodResponse(r model.MoodReport) MoodResponse {
	return MoodResponse{
		Country:     r.Country,
		Mood:        string(r.Mood.Mood),
		Explanation: r.Mood.Explanation,
		Color:       model.ColorFor(r.Mood.Mood),
		Degraded:    r.Degraded,
		NewsResults: toHeadlineResponses(r.Headlines),
	}
}
