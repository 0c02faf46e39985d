// Package palette provides the color lookups the renderer uses for
// category badges and owner labels. A Palette is passed explicitly
// wherever a color is needed; there is no package-level palette state.
package palette

import (
	"crypto/sha1"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Palette maps event metadata to display colors.
type Palette struct {
	// Categories maps a category name to its color.
	Categories map[string]string `yaml:"categories"`

	// Owners is the color cycle owner names hash into.
	Owners []string `yaml:"owners"`

	// Default is returned for categories without a mapping (and for
	// owners when the cycle is empty).
	Default string `yaml:"default"`
}

// DefaultPalette returns the built-in palette used when no palette file is
// supplied.
func DefaultPalette() *Palette {
	return &Palette{
		Categories: map[string]string{
			"Talks & Lectures":  "#2a9d8f",
			"Academic Calendar": "#e76f51",
			"Arts":              "#9b5de5",
			"Performances":      "#f15bb5",
			"Exhibits":          "#00bbf9",
			"Special Events":    "#fee440",
		},
		Owners: []string{
			"#264653", "#2a9d8f", "#e9c46a", "#f4a261", "#e76f51",
			"#606c38", "#283618", "#bc6c25",
		},
		Default: "#6c757d",
	}
}

// Load reads a palette from a YAML file.
func Load(path string) (*Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading palette: %w", err)
	}
	return Parse(data)
}

// Parse unmarshals a YAML palette document. A missing default falls back
// to the built-in default color.
func Parse(data []byte) (*Palette, error) {
	var p Palette
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing palette: %w", err)
	}
	if p.Default == "" {
		p.Default = DefaultPalette().Default
	}
	return &p, nil
}

// CategoryColor returns the color assigned to a category, or the default
// when the category has no mapping.
func (p *Palette) CategoryColor(category string) string {
	if color, ok := p.Categories[category]; ok {
		return color
	}
	return p.Default
}

// OwnerColor deterministically assigns one of the owner-cycle colors by
// hashing the owner name. The same owner always gets the same color within
// one palette.
func (p *Palette) OwnerColor(owner string) string {
	if len(p.Owners) == 0 {
		return p.Default
	}
	sum := sha1.Sum([]byte(owner))
	idx := (int(sum[0])<<8 | int(sum[1])) % len(p.Owners)
	return p.Owners[idx]
}
