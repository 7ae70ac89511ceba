package news

import "context"

type Headline struct {
	Title   string
	Snippet string
	Link    string
}

type NewsClient interface {
	Search(ctx context.Context, country string) ([]Headline, error)
	Name() string
}
