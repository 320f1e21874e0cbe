package model

// PostSummary is the listing view of a post: everything except the
// body, which listings never render.
type PostSummary struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Date        string   `json:"date"`
	Excerpt     string   `json:"excerpt"`
	Tags        []string `json:"tags"`
	HeroType    HeroType `json:"hero_type"`
	HeroAsset   string   `json:"hero_asset,omitempty"`
	ReadingTime string   `json:"reading_time"`
}

func SummaryOf(p *Post) PostSummary {
	return PostSummary{
		Slug:        p.Slug,
		Title:       p.Title,
		Date:        p.Date,
		Excerpt:     p.Excerpt,
		Tags:        p.Tags,
		HeroType:    p.HeroType,
		HeroAsset:   p.HeroAsset,
		ReadingTime: p.ReadingTime,
	}
}
