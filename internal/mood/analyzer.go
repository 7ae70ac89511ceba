package mood

import (
	"fmt"
	"moodmeter/internal/config"
	"moodmeter/pkg/llm"
	"moodmeter/pkg/news"
)

func NewAnalyzer(cfg *config.Config) (llm.MoodAnalyzer, error) {
	switch cfg.MoodProvider {
	case config.ProviderOpenRouter:
		return llm.NewOpenRouterClient(cfg.CompletionAPIKey, cfg.CompletionURL, cfg.CompletionModel), nil
	case config.ProviderAnthropic:
		return llm.NewAnthropicClient(cfg.AnthropicAPIKey, "", cfg.AnthropicModel), nil
	case config.ProviderVader:
		return llm.NewVaderClient(), nil
	default:
		return nil, fmt.Errorf("unknown mood provider %q", cfg.MoodProvider)
	}
}

// NewServiceFromConfig wires the search client and the configured analyzer.
func NewServiceFromConfig(cfg *config.Config) (*Service, error) {
	analyzer, err := NewAnalyzer(cfg)
	if err != nil {
		return nil, err
	}

	return NewService(news.NewSerpAPIClient(cfg.SearchAPIKey, cfg.SearchURL), analyzer), nil
}
