package mood

import (
	"context"
	"errors"
	"fmt"
	"moodmeter/internal/model"
	"moodmeter/pkg/llm"
	"moodmeter/pkg/news"
	"testing"

	"github.com/go-playground/assert/v2"
)

type fakeSource struct {
	headlines []news.Headline
	err       error
	calls     int
	countries []string
}

func (f *fakeSource) Search(ctx context.Context, country string) ([]news.Headline, error) {
	f.calls++
	f.countries = append(f.countries, country)
	if country == "" {
		return nil, news.ErrMissingCountry
	}
	return f.headlines, f.err
}

func (f *fakeSource) Name() string { return "fake" }

type fakeAnalyzer struct {
	analysis *llm.Analysis
	err      error
	calls    int
	got      [][]string
}

func (f *fakeAnalyzer) Analyze(ctx context.Context, headlines []string) (*llm.Analysis, error) {
	f.calls++
	f.got = append(f.got, headlines)
	return f.analysis, f.err
}

func (f *fakeAnalyzer) Name() string { return "fake" }

func japanHeadlines() []news.Headline {
	return []news.Headline{
		{Title: "Nikkei closes flat", Snippet: "Stocks end unchanged", Link: "https://example.com/1"},
		{Title: "Yen weakens", Snippet: "Currency slips", Link: "https://example.com/2"},
		{Title: "Cherry blossom season starts early", Snippet: "Tourists arrive", Link: "https://example.com/3"},
	}
}

func TestCheck_EndToEnd(t *testing.T) {
	source := &fakeSource{headlines: japanHeadlines()}
	analyzer := &fakeAnalyzer{analysis: &llm.Analysis{Mood: "neutral", Explanation: "Mixed economic signals", ModelUsed: "m"}}
	svc := NewService(source, analyzer)

	report := svc.Check(context.Background(), "Japan")

	assert.Equal(t, "Japan", report.Country)
	assert.Equal(t, model.MoodNeutral, report.Mood.Mood)
	assert.Equal(t, "Mixed economic signals", report.Mood.Explanation)
	assert.Equal(t, 3, len(report.Headlines))
	assert.Equal(t, false, report.Degraded)
	assert.Equal(t, []string{"Nikkei closes flat", "Yen weakens", "Cherry blossom season starts early"}, analyzer.got[0])
}

func TestCheck_LookupFailureSkipsAnalysis(t *testing.T) {
	source := &fakeSource{err: &news.UpstreamError{Provider: "fake", StatusCode: 502, Body: "bad gateway"}}
	analyzer := &fakeAnalyzer{analysis: &llm.Analysis{Mood: "positive"}}
	svc := NewService(source, analyzer)

	report := svc.Check(context.Background(), "Japan")

	assert.Equal(t, 0, analyzer.calls)
	assert.Equal(t, model.FallbackMood(), report.Mood)
	assert.Equal(t, 0, len(report.Headlines))
	assert.NotEqual(t, nil, report.Headlines)
	assert.Equal(t, true, report.Degraded)
}

func TestCheck_AnalysisFailureDegrades(t *testing.T) {
	source := &fakeSource{headlines: japanHeadlines()}
	analyzer := &fakeAnalyzer{err: errors.New("connection reset by peer")}
	svc := NewService(source, analyzer)

	report := svc.Check(context.Background(), "Japan")

	assert.Equal(t, 3, len(report.Headlines))
	assert.Equal(t, model.MoodResult{Mood: model.MoodNeutral, Explanation: "Unable to analyze mood due to technical issues."}, report.Mood)
	assert.Equal(t, true, report.Degraded)
}

func TestCheck_EmptyHeadlinesStillAnalyzed(t *testing.T) {
	source := &fakeSource{headlines: []news.Headline{}}
	analyzer := &fakeAnalyzer{analysis: &llm.Analysis{Mood: "neutral", Explanation: "Quiet news day"}}
	svc := NewService(source, analyzer)

	report := svc.Check(context.Background(), "Tuvalu")

	assert.Equal(t, 1, analyzer.calls)
	assert.Equal(t, 0, len(analyzer.got[0]))
	assert.Equal(t, "Quiet news day", report.Mood.Explanation)
}

func TestCheck_Idempotent(t *testing.T) {
	source := &fakeSource{headlines: japanHeadlines()}
	analyzer := &fakeAnalyzer{analysis: &llm.Analysis{Mood: "positive", Explanation: "Growth"}}
	svc := NewService(source, analyzer)

	first := svc.Check(context.Background(), "Japan")
	second := svc.Check(context.Background(), "Japan")

	assert.Equal(t, first.Mood, second.Mood)
	assert.Equal(t, first.Headlines, second.Headlines)
	assert.Equal(t, 2, source.calls)
}

func TestLookup_MapsFieldsInOrder(t *testing.T) {
	source := &fakeSource{headlines: []news.Headline{{Title: "A", Snippet: "B", Link: "C"}, {Title: "D"}}}
	svc := NewService(source, &fakeAnalyzer{})

	items, err := svc.Lookup(context.Background(), "Japan")

	assert.Equal(t, nil, err)
	assert.Equal(t, []model.HeadlineItem{{Title: "A", Snippet: "B", Link: "C"}, {Title: "D"}}, items)
}

func TestLookup_PropagatesKind(t *testing.T) {
	source := &fakeSource{err: fmt.Errorf("serpapi decode: %w", news.ErrUnexpectedShape)}
	svc := NewService(source, &fakeAnalyzer{})

	_, err := svc.Lookup(context.Background(), "Japan")

	assert.Equal(t, true, errors.Is(err, news.ErrUnexpectedShape))
}

func TestAnalyze_NeverFails(t *testing.T) {
	svc := NewService(&fakeSource{}, &fakeAnalyzer{err: errors.New("malformed JSON")})

	res := svc.Analyze(context.Background(), []string{"x"})

	assert.Equal(t, model.FallbackMood(), res)
}
