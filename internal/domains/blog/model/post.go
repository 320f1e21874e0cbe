package model

import (
	"fmt"
	"time"

	"portfolio-backend/pkg/logger"
)

// =====================================================
// HERO TYPE
// =====================================================

// HeroType selects how a post's hero section is rendered.
type HeroType string

const (
	HeroText      HeroType = "text"
	HeroImage     HeroType = "image"
	HeroVideo     HeroType = "video"
	HeroAnimation HeroType = "animation"
)

var validHeroTypes = []HeroType{HeroText, HeroImage, HeroVideo, HeroAnimation}

func (h HeroType) Valid() bool {
	for _, v := range validHeroTypes {
		if h == v {
			return true
		}
	}
	return false
}

// =====================================================
// FRONTMATTER METADATA
// =====================================================

// Metadata is the frontmatter header of a post file. It is validated
// before the post is trusted; a post with bad frontmatter is rejected
// whole rather than partially rendered.
type Metadata struct {
	Title     string   `yaml:"title"`
	Date      string   `yaml:"date"`
	Excerpt   string   `yaml:"excerpt"`
	HeroType  string   `yaml:"heroType"`
	HeroAsset string   `yaml:"heroAsset"`
	Tags      []string `yaml:"tags"`
}

// Validate checks the required-field set and the heroType enumeration.
// A non-text heroType without a heroAsset is only warned about; the
// post still loads.
func (m *Metadata) Validate() error {
	required := map[string]string{
		"title":    m.Title,
		"date":     m.Date,
		"excerpt":  m.Excerpt,
		"heroType": m.HeroType,
	}
	for _, field := range []string{"title", "date", "excerpt", "heroType"} {
		if required[field] == "" {
			return fmt.Errorf("missing required frontmatter field: %s", field)
		}
	}

	if !HeroType(m.HeroType).Valid() {
		return fmt.Errorf("invalid heroType: %q", m.HeroType)
	}

	if HeroType(m.HeroType) != HeroText && m.HeroAsset == "" {
		logger.Warn("heroAsset is recommended for non-text heroType", map[string]interface{}{
			"hero_type": m.HeroType,
		})
	}

	return nil
}

// =====================================================
// POST
// =====================================================

// Post is a fully loaded blog post. One instance per content file on
// disk; read fresh on every request and never mutated after
// construction.
type Post struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Date        string   `json:"date"`
	Excerpt     string   `json:"excerpt"`
	Tags        []string `json:"tags"`
	HeroType    HeroType `json:"hero_type"`
	HeroAsset   string   `json:"hero_asset,omitempty"`
	Content     string   `json:"content,omitempty"`
	ContentHTML string   `json:"content_html,omitempty"`
	ReadingTime string   `json:"reading_time"`
}

// Frontmatter dates are ISO date strings; full timestamps are accepted
// for posts that care about intraday ordering.
var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// ParsedDate returns the post date as a time.Time for sorting. An
// unparseable date yields the zero time, which sorts the post last.
func (p *Post) ParsedDate() time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, p.Date); err == nil {
			return t
		}
	}
	return time.Time{}
}
