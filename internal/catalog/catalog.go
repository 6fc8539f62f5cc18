package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"sync"

	"golang.org/x/mod/semver"
)

// SupportedMajor is the catalog format major version this build understands.
const SupportedMajor = "v1"

//go:embed default_catalog.json
var defaultCatalogJSON []byte

// Catalog is the immutable lesson table for one learning path.
type Catalog struct {
	Version  string    `json:"version"`
	Title    string    `json:"title"`
	Sections []Section `json:"sections"`

	byID map[string]*Lesson
}

// Load parses, schema-checks and validates a catalog document.
func Load(raw []byte) (*Catalog, error) {
	if err := validateSchema(raw); err != nil {
		return nil, err
	}

	var c Catalog
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	if !semver.IsValid(c.Version) {
		return nil, fmt.Errorf("catalog version %q is not a semantic version", c.Version)
	}
	if major := semver.Major(c.Version); major != SupportedMajor {
		return nil, fmt.Errorf("catalog version %s not supported (want %s.x.x)", c.Version, SupportedMajor)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	c.index()
	return &c, nil
}

// LoadFile reads a catalog from disk.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Load(raw)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return c, nil
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
)

// Default returns the built-in catalog. It panics if the embedded document
// is invalid, which the package tests guard against.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load(defaultCatalogJSON)
		if err != nil {
			panic(fmt.Sprintf("catalog: embedded default catalog: %v", err))
		}
		defaultCat = c
	})
	return defaultCat
}

// DefaultJSON returns a copy of the embedded catalog document.
func DefaultJSON() []byte {
	return slices.Clone(defaultCatalogJSON)
}

// index stamps section ids onto lessons and builds the id lookup.
func (c *Catalog) index() {
	c.byID = make(map[string]*Lesson)
	for si := range c.Sections {
		sec := &c.Sections[si]
		for li := range sec.Lessons {
			sec.Lessons[li].Section = sec.ID
			c.byID[sec.Lessons[li].ID] = &sec.Lessons[li]
		}
	}
}

// Lesson returns the lesson with the given id.
func (c *Catalog) Lesson(id string) (Lesson, bool) {
	l, ok := c.byID[id]
	if !ok {
		return Lesson{}, false
	}
	return *l, true
}

// Lessons returns every lesson in path order (section order, then declaration order).
func (c *Catalog) Lessons() []Lesson {
	var out []Lesson
	for _, s := range c.Sections {
		out = append(out, s.Lessons...)
	}
	return out
}

// Section returns the section with the given id.
func (c *Catalog) Section(id SectionID) (Section, bool) {
	for _, s := range c.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// SectionIDs returns section ids in declaration order.
func (c *Catalog) SectionIDs() []SectionID {
	ids := make([]SectionID, len(c.Sections))
	for i, s := range c.Sections {
		ids[i] = s.ID
	}
	return ids
}

// IsLastLesson reports whether id is the final lesson of the whole path.
func (c *Catalog) IsLastLesson(id string) bool {
	if len(c.Sections) == 0 {
		return false
	}
	last := c.Sections[len(c.Sections)-1]
	return len(last.Lessons) > 0 && last.Lessons[len(last.Lessons)-1].ID == id
}
