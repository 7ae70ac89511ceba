package mood

import (
	"context"
	"log/slog"
	"moodmeter/internal/model"
	"moodmeter/pkg/llm"
	"moodmeter/pkg/news"
)

type Service struct {
	source   news.NewsClient
	analyzer llm.MoodAnalyzer
}

func NewService(source news.NewsClient, analyzer llm.MoodAnalyzer) *Service {
	return &Service{source: source, analyzer: analyzer}
}

// Lookup fetches headlines for country. The error is one of the pkg/news kinds.
func (s *Service) Lookup(ctx context.Context, country string) ([]model.HeadlineItem, error) {
	headlines, err := s.source.Search(ctx, country)
	if err != nil {
		return nil, err
	}

	items := make([]model.HeadlineItem, len(headlines))
	for i, h := range headlines {
		items[i] = model.HeadlineItem{
			Title:   h.Title,
			Snippet: h.Snippet,
			Link:    h.Link,
		}
	}

	slog.Info("news lookup complete", "source", s.source.Name(), "country", country, "count", len(items))
	return items, nil
}

// Analyze never fails: analyzer errors degrade to the fallback mood.
func (s *Service) Analyze(ctx context.Context, headlines []string) model.MoodResult {
	res, _ := s.analyze(ctx, headlines)
	return res
}

func (s *Service) analyze(ctx context.Context, headlines []string) (model.MoodResult, bool) {
	analysis, err := s.analyzer.Analyze(ctx, headlines)
	res, degraded := Degrade(analysis, err)
	if !degraded {
		slog.Info("mood analysis complete", "analyzer", s.analyzer.Name(), "model", analysis.ModelUsed, "mood", res.Mood)
	}
	return res, degraded
}

// Check runs lookup and then analysis for one country. Analysis is skipped
// when the lookup fails; the report then carries no headlines and the
// fallback mood.
func (s *Service) Check(ctx context.Context, country string) model.MoodReport {
	report := model.MoodReport{Country: country}

	items, err := s.Lookup(ctx, country)
	if err != nil {
		slog.Error("error fetching news", "country", country, "kind", news.Kind(err), "error", err)
		report.Headlines = []model.HeadlineItem{}
		report.Mood = model.FallbackMood()
		report.Degraded = true
		return report
	}

	report.Headlines = items
	report.Mood, report.Degraded = s.analyze(ctx, model.Titles(items))
	return report
}
