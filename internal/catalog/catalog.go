// Package catalog holds the immutable exercise table: for every exercise its
// unit and four monthly tier targets. It is loaded once at process start.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type Tier string

const (
	TierS  Tier = "S"
	TierM  Tier = "M"
	TierL  Tier = "L"
	TierXL Tier = "XL"
)

// Tiers lists the difficulty tiers from easiest to hardest.
var Tiers = []Tier{TierS, TierM, TierL, TierXL}

var (
	ErrUnknownExercise = errors.New("unknown exercise")
	ErrUnknownTier     = errors.New("unknown tier")
)

// ParseTier accepts a tier name case-insensitively.
func ParseTier(s string) (Tier, error) {
	t := Tier(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Tiers {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTier, s)
}

// Entry is one catalog row. Tier values are monthly quantities.
type Entry struct {
	Exercise string           `yaml:"exercise" json:"exercise"`
	Unit     string           `yaml:"unit" json:"unit"`
	Tiers    map[Tier]float64 `yaml:"tiers" json:"tiers"`
}

// Monthly returns the monthly target for tier.
func (e Entry) Monthly(tier Tier) (float64, error) {
	v, ok := e.Tiers[tier]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownTier, tier)
	}
	return v, nil
}

// Annual returns the annual goal target for tier (monthly x 12).
func (e Entry) Annual(tier Tier) (float64, error) {
	v, err := e.Monthly(tier)
	if err != nil {
		return 0, err
	}
	return v * 12, nil
}

type Catalog struct {
	entries []Entry
	byName  map[string]Entry
}

type file struct {
	Exercises []Entry `yaml:"exercises"`
}

// Default returns the catalog embedded in the binary.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads a catalog from path. An empty path yields the default catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(f.Exercises) == 0 {
		return nil, errors.New("catalog has no exercises")
	}

	c := &Catalog{byName: make(map[string]Entry, len(f.Exercises))}
	for i, e := range f.Exercises {
		e.Exercise = strings.TrimSpace(e.Exercise)
		e.Unit = strings.TrimSpace(e.Unit)
		if e.Exercise == "" {
			return nil, fmt.Errorf("catalog entry %d: exercise is required", i)
		}
		if e.Unit == "" {
			return nil, fmt.Errorf("catalog entry %q: unit is required", e.Exercise)
		}
		if _, dup := c.byName[e.Exercise]; dup {
			return nil, fmt.Errorf("catalog entry %q: duplicate exercise", e.Exercise)
		}
		for _, t := range Tiers {
			if v, ok := e.Tiers[t]; !ok || v <= 0 {
				return nil, fmt.Errorf("catalog entry %q: tier %s must be positive", e.Exercise, t)
			}
		}
		c.entries = append(c.entries, e)
		c.byName[e.Exercise] = e
	}
	return c, nil
}

// Entries returns the catalog rows in file order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Lookup finds an exercise by exact name.
func (c *Catalog) Lookup(exercise string) (Entry, error) {
	e, ok := c.byName[exercise]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownExercise, exercise)
	}
	return e, nil
}
