package model

type HeadlineItem struct {
	Title   string
	Snippet string
	Link    string
}

func Titles(items []HeadlineItem) []string {
	titles := make([]string, len(items))
	for i, item := range items {
		titles[i] = item.Title
	}
	return titles
}
