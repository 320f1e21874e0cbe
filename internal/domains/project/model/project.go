package model

import "fmt"

// =====================================================
// FRONTMATTER METADATA
// =====================================================

// Metadata is the frontmatter header of a project case-study file.
type Metadata struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Year        int      `yaml:"year"`
	TechStack   []string `yaml:"techStack"`
	RepoURL     string   `yaml:"repoURL"`
	LiveURL     string   `yaml:"liveURL"`
	ComingSoon  bool     `yaml:"comingSoon"`
	Featured    bool     `yaml:"featured"`
}

// Validate checks the required fields. Description is optional; when
// absent it is derived from the case-study body at load time.
func (m *Metadata) Validate() error {
	if m.Title == "" {
		return fmt.Errorf("missing required frontmatter field: title")
	}
	if m.Year <= 0 {
		return fmt.Errorf("missing or invalid frontmatter field: year")
	}
	return nil
}

// =====================================================
// PROJECT
// =====================================================

// Project is a portfolio case study loaded from the content directory.
type Project struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Year        int      `json:"year"`
	TechStack   []string `json:"tech_stack"`
	RepoURL     string   `json:"repo_url,omitempty"`
	LiveURL     string   `json:"live_url,omitempty"`
	ComingSoon  bool     `json:"coming_soon"`
	Featured    bool     `json:"featured"`
	Content     string   `json:"content,omitempty"`
	ContentHTML string   `json:"content_html,omitempty"`
}
