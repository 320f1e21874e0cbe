package model

// ProjectSummary is the project-grid view: no body.
type ProjectSummary struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Year        int      `json:"year"`
	TechStack   []string `json:"tech_stack"`
	RepoURL     string   `json:"repo_url,omitempty"`
	LiveURL     string   `json:"live_url,omitempty"`
	ComingSoon  bool     `json:"coming_soon"`
	Featured    bool     `json:"featured"`
}

func SummaryOf(p *Project) ProjectSummary {
	return ProjectSummary{
		Slug:        p.Slug,
		Title:       p.Title,
		Description: p.Description,
		Year:        p.Year,
		TechStack:   p.TechStack,
		RepoURL:     p.RepoURL,
		LiveURL:     p.LiveURL,
		ComingSoon:  p.ComingSoon,
		Featured:    p.Featured,
	}
}
