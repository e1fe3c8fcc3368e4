package servicemanager

import (
	"sort"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/core-tools/hsu-sjw/pkg/errors"
)

// UnitSpec declares a unit by ID.
type UnitSpec struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	LogFile string `yaml:"log_file,omitempty"`
}

// Catalog maps unit IDs to service manager unit names. Configured units are
// fixed; units matching a pattern are added on discovery with ID equal to
// their name.
type Catalog struct {
	configured []UnitSpec
	patterns   []string
	byID       map[string]UnitSpec
	byName     map[string]string
	discovered map[string]bool
	mutex      sync.RWMutex
}

func NewCatalog(units []UnitSpec, patterns []string) (*Catalog, error) {
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.NewValidationError("invalid unit pattern", nil).WithContext("pattern", pattern)
		}
	}

	c := &Catalog{
		configured: make([]UnitSpec, 0, len(units)),
		patterns:   append([]string(nil), patterns...),
		byID:       make(map[string]UnitSpec, len(units)),
		byName:     make(map[string]string, len(units)),
		discovered: make(map[string]bool),
	}
	for _, unit := range units {
		if _, exists := c.byID[unit.ID]; exists {
			return nil, errors.NewValidationError("duplicate unit ID", nil).WithContext("unit_id", unit.ID)
		}
		if other, exists := c.byName[unit.Name]; exists {
			return nil, errors.NewValidationError("unit name declared twice", nil).
				WithContext("unit_name", unit.Name).
				WithContext("unit_ids", []string{other, unit.ID})
		}
		c.configured = append(c.configured, unit)
		c.byID[unit.ID] = unit
		c.byName[unit.Name] = unit.ID
	}
	return c, nil
}

// Configured returns the declared units in declaration order.
func (c *Catalog) Configured() []UnitSpec {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return append([]UnitSpec(nil), c.configured...)
}

// HasPatterns reports whether any discovery pattern is configured.
func (c *Catalog) HasPatterns() bool {
	return len(c.patterns) > 0
}

// Resolve returns the spec of a known unit ID.
func (c *Catalog) Resolve(id string) (UnitSpec, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	spec, ok := c.byID[id]
	return spec, ok
}

// IDForName maps a unit name back to its ID.
func (c *Catalog) IDForName(name string) (string, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	id, ok := c.byName[name]
	return id, ok
}

// Matches reports whether name matches a discovery pattern.
func (c *Catalog) Matches(name string) bool {
	for _, pattern := range c.patterns {
		if matched, _ := doublestar.Match(pattern, name); matched {
			return true
		}
	}
	return false
}

// Discover records every name that matches a pattern and is not already
// known, and returns the IDs of all discovered units currently present in
// names, sorted. Configured units are never returned here.
func (c *Catalog) Discover(names []string) []string {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	present := make([]string, 0)
	for _, name := range names {
		if id, known := c.byName[name]; known {
			if c.discovered[id] {
				present = append(present, id)
			}
			continue
		}
		if !c.Matches(name) {
			continue
		}
		spec := UnitSpec{ID: name, Name: name}
		if _, taken := c.byID[spec.ID]; taken {
			continue
		}
		c.byID[spec.ID] = spec
		c.byName[spec.Name] = spec.ID
		c.discovered[spec.ID] = true
		present = append(present, spec.ID)
	}
	sort.Strings(present)
	return present
}
