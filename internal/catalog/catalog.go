package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalog holds every known case and scenario definition. It is built
// once at startup and read-only afterwards.
type Catalog struct {
	cases     map[string]CaseDefinition
	scenarios map[string]ScenarioDefinition
}

func New() *Catalog {
	c := &Catalog{
		cases:     map[string]CaseDefinition{},
		scenarios: map[string]ScenarioDefinition{},
	}
	for _, def := range seedCases() {
		c.cases[def.Condition] = def
	}
	for _, sc := range seedScenarios() {
		c.scenarios[sc.ID] = sc
	}
	return c
}

// Get looks a case up by condition name, case-insensitively.
func (c *Catalog) Get(condition string) (CaseDefinition, bool) {
	def, ok := c.cases[strings.ToLower(strings.TrimSpace(condition))]
	return def, ok
}

// Conditions lists every known condition name, sorted.
func (c *Catalog) Conditions() []string {
	out := make([]string, 0, len(c.cases))
	for name := range c.cases {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Scenario looks a structured-mode scenario up by id.
func (c *Catalog) Scenario(id string) (ScenarioDefinition, bool) {
	sc, ok := c.scenarios[id]
	return sc, ok
}

// Scenarios filters the scenario list. Empty difficulty or specialty
// matches everything.
func (c *Catalog) Scenarios(difficulty, specialty string) []ScenarioDefinition {
	out := make([]ScenarioDefinition, 0, len(c.scenarios))
	for _, sc := range c.scenarios {
		if difficulty != "" && !strings.EqualFold(sc.Difficulty, difficulty) {
			continue
		}
		if specialty != "" && !strings.EqualFold(sc.Specialty, specialty) {
			continue
		}
		out = append(out, sc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

type overlayFile struct {
	Cases     []CaseDefinition     `yaml:"cases"`
	Scenarios []ScenarioDefinition `yaml:"scenarios"`
}

// LoadOverlay merges case and scenario definitions from cases.yaml in
// dir, if present. Overlay entries replace seeds with the same key.
func (c *Catalog) LoadOverlay(dir string) error {
	path := filepath.Join(dir, "cases.yaml")
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read case overlay: %w", err)
	}
	var f overlayFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return fmt.Errorf("parse case overlay: %w", err)
	}
	for _, def := range f.Cases {
		name := strings.ToLower(strings.TrimSpace(def.Condition))
		if name == "" {
			continue
		}
		def.Condition = name
		c.cases[name] = def
	}
	for _, sc := range f.Scenarios {
		if sc.ID == "" {
			continue
		}
		c.scenarios[sc.ID] = sc
	}
	return nil
}
