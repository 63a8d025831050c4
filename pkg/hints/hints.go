package hints

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
)

// UsageTopic is printed after a successful installation
const UsageTopic = "usage"

const topicExt = ".md"

//go:embed topics/*.md
var embedded embed.FS

// Renderer formats topic content for display
type Renderer interface {
	Render(content string) string
}

// PlainRenderer returns content as-is
type PlainRenderer struct{}

// Render returns the content unchanged
func (PlainRenderer) Render(content string) string {
	return content
}

// GlamourRenderer renders markdown for a terminal
type GlamourRenderer struct {
	// Style is "auto" or a glamour style name or path
	Style string
	// Width wraps lines; 0 leaves glamour's default
	Width int
}

// NewGlamourRenderer creates a renderer with style auto-detection
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{Style: "auto"}
}

// Render converts markdown to styled terminal output, falling back to the
// raw content on error
func (r *GlamourRenderer) Render(content string) string {
	var options []glamour.TermRendererOption
	if r.Style != "" && r.Style != "auto" {
		options = append(options, glamour.WithStylePath(r.Style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

// Catalog holds help topics keyed by name
type Catalog struct {
	topics   map[string]string
	renderer Renderer
}

// New loads the embedded topics. A nil renderer means PlainRenderer.
func New(renderer Renderer) (*Catalog, error) {
	return Load(embedded, "topics", renderer)
}

// Load reads every markdown file in dir of fsys as a topic
func Load(fsys fs.FS, dir string, renderer Renderer) (*Catalog, error) {
	if renderer == nil {
		renderer = PlainRenderer{}
	}

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read topics: %w", err)
	}

	c := &Catalog{topics: make(map[string]string), renderer: renderer}
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != topicExt {
			continue
		}
		content, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read topic %s: %w", entry.Name(), err)
		}
		c.topics[strings.TrimSuffix(entry.Name(), topicExt)] = string(content)
	}
	return c, nil
}

// Names returns the topic names in sorted order
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.topics))
	for name := range c.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns a topic's raw content. A leading "--" is ignored so flag
// names can be looked up directly.
func (c *Catalog) Get(name string) (string, bool) {
	name = strings.TrimLeft(name, "-")
	content, ok := c.topics[name]
	return content, ok
}

// Render returns a topic formatted by the catalog's renderer
func (c *Catalog) Render(name string) (string, error) {
	content, ok := c.Get(name)
	if !ok {
		return "", fmt.Errorf("unknown topic %q, available: %s", name, strings.Join(c.Names(), ", "))
	}
	return c.renderer.Render(content), nil
}
