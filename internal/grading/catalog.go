// Package grading holds the reference grading tables that sieve analyses are
// checked against. A Catalog is built once, validated, and only read afterwards.
package grading

import (
	"errors"
	"fmt"
	"strings"

	"Civilcalc/internal/gradation"
)

type Table struct {
	ID       string                  `json:"id" yaml:"id"`
	Name     string                  `json:"name" yaml:"name"`
	Standard string                  `json:"standard" yaml:"standard"`
	Family   string                  `json:"family" yaml:"family"`
	Grade    string                  `json:"grade" yaml:"grade"`
	Policy   gradation.CorruptPolicy `json:"corrupt_policy" yaml:"corrupt_policy"`
	Sieves   []gradation.SieveSpec   `json:"sieves" yaml:"sieves"`
}

func (t Table) clone() Table {
	t.Sieves = append([]gradation.SieveSpec(nil), t.Sieves...)
	return t
}

// Analyze runs the gradation analysis with this table's bands and policy.
func (t Table) Analyze(weights gradation.Weights, total float64) []gradation.Row {
	return gradation.Analyze(t.Sieves, weights, total, t.Policy)
}

type Catalog struct {
	tables []Table
	byID   map[string]int
}

// NewCatalog validates tables and returns a catalog that keeps its own copy.
func NewCatalog(tables []Table) (*Catalog, error) {
	if err := Validate(tables); err != nil {
		return nil, err
	}
	c := &Catalog{tables: make([]Table, len(tables)), byID: make(map[string]int, len(tables))}
	for i, t := range tables {
		c.tables[i] = t.clone()
		c.byID[t.ID] = i
	}
	return c, nil
}

func (c *Catalog) List() []Table {
	out := make([]Table, len(c.tables))
	for i, t := range c.tables {
		out[i] = t.clone()
	}
	return out
}

func (c *Catalog) Get(id string) (Table, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Table{}, false
	}
	return c.tables[i].clone(), true
}

func (c *Catalog) Len() int { return len(c.tables) }

// Validate reports every problem in tables at once.
func Validate(tables []Table) error {
	var errs []string
	if len(tables) == 0 {
		errs = append(errs, "at least one grading table is required")
	}
	ids := map[string]bool{}
	for i, t := range tables {
		prefix := fmt.Sprintf("tables[%d]", i)
		if strings.TrimSpace(t.ID) == "" {
			errs = append(errs, fmt.Sprintf("%s.id is required", prefix))
		} else {
			prefix = fmt.Sprintf("tables[%s]", t.ID)
			if ids[t.ID] {
				errs = append(errs, fmt.Sprintf("%s: duplicate id", prefix))
			}
			ids[t.ID] = true
		}
		if strings.TrimSpace(t.Name) == "" {
			errs = append(errs, fmt.Sprintf("%s.name is required", prefix))
		}
		if !t.Policy.Valid() {
			errs = append(errs, fmt.Sprintf("%s.corrupt_policy must be %q or %q", prefix, gradation.CorruptFail, gradation.CorruptZero))
		}
		if len(t.Sieves) == 0 {
			errs = append(errs, fmt.Sprintf("%s: at least one sieve is required", prefix))
		}
		sizes := map[string]bool{}
		for _, s := range t.Sieves {
			if err := s.Validate(); err != nil {
				errs = append(errs, fmt.Sprintf("%s: %v", prefix, err))
				continue
			}
			if sizes[s.Size] {
				errs = append(errs, fmt.Sprintf("%s: duplicate sieve %s", prefix, s.Size))
			}
			sizes[s.Size] = true
		}
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}
