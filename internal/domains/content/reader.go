// Package content reads frontmatter-delimited content files from a
// fixed on-disk directory. It is shared by the blog and project
// repositories, which only differ in their frontmatter schemas.
package content

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"

	"portfolio-backend/internal/shared/utils"
	"portfolio-backend/pkg/logger"
)

// Extension is the recognized content file extension. One file per
// slug; slug uniqueness is enforced by the filesystem.
const Extension = ".mdx"

// Diagnostic records why a content file was skipped during a bulk load.
type Diagnostic struct {
	Slug   string `json:"slug"`
	Reason string `json:"reason"`
}

// Reader reads content files from a single directory. The directory is
// read-only from the application's perspective; there are no writers to
// coordinate with.
type Reader struct {
	dir string
}

func NewReader(dir string) *Reader {
	return &Reader{dir: dir}
}

func (r *Reader) Dir() string {
	return r.dir
}

// Read loads the file for slug, decodes its frontmatter into meta and
// returns the remaining markdown body. Callers see plain errors; the
// mapping to "not found" semantics happens in the domain repositories.
func (r *Reader) Read(slug string, meta interface{}) ([]byte, error) {
	// Reject anything that is not a plain slug before touching the
	// filesystem. Path separators must never reach filepath.Join.
	if !utils.IsValidSlug(slug) {
		return nil, fmt.Errorf("invalid slug %q", slug)
	}

	raw, err := os.ReadFile(filepath.Join(r.dir, slug+Extension))
	if err != nil {
		return nil, fmt.Errorf("read content file: %w", err)
	}

	body, err := frontmatter.Parse(bytes.NewReader(raw), meta)
	if err != nil {
		return nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	return body, nil
}

// ListSlugs returns the slugs of all content files in the directory,
// sorted ascending. A directory read failure yields an empty slice
// rather than an error; the condition is logged.
func (r *Reader) ListSlugs() []string {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		logger.Error("Failed to read content directory: "+r.dir, err)
		return []string{}
	}

	slugs := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), Extension) {
			continue
		}
		slugs = append(slugs, utils.SlugFromFilename(entry.Name(), Extension))
	}

	sort.Strings(slugs)
	return slugs
}

// Probe checks that the content directory is readable. Used by the
// health endpoint.
func (r *Reader) Probe() error {
	if _, err := os.ReadDir(r.dir); err != nil {
		return fmt.Errorf("content directory not readable: %w", err)
	}
	return nil
}
