package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/louisbranch/man3/internal/services/simulation/engine"
)

const (
	// PracticesFile is the file name Load reads base practices from.
	PracticesFile = "practices.yaml"
	// ScenariosFile is the file name Load reads scenarios from.
	ScenariosFile = "scenarios.yaml"
)

var (
	// ErrNoScenarios indicates a catalog without any playable scenario.
	ErrNoScenarios = errors.New("catalog has no scenarios")
	// ErrDuplicateID indicates two entries share an identifier.
	ErrDuplicateID = errors.New("duplicate catalog id")
	// ErrTooFewOptions indicates a scenario with fewer than two options.
	ErrTooFewOptions = errors.New("scenario needs at least two options")
)

// BasePractice describes one MAN.3 base practice.
type BasePractice struct {
	ID                string   `json:"id" yaml:"id"`
	Name              string   `json:"name" yaml:"name"`
	ShortName         string   `json:"short_name" yaml:"short_name"`
	Description       string   `json:"description" yaml:"description"`
	Inputs            []string `json:"inputs" yaml:"inputs"`
	Outputs           []string `json:"outputs" yaml:"outputs"`
	L2Criteria        []string `json:"l2_criteria" yaml:"l2_criteria"`
	L3Criteria        []string `json:"l3_criteria" yaml:"l3_criteria"`
	AssessorQuestions []string `json:"assessor_questions" yaml:"assessor_questions"`
	CommonPitfalls    []string `json:"common_pitfalls" yaml:"common_pitfalls"`
}

// AskPrompt is the assessor question offered on the practice card.
func (p BasePractice) AskPrompt() string {
	return "Explain " + p.ID + ": " + p.Name + " in the context of ASPICE L3. Give me a template example for the output."
}

// fillLists replaces omitted lists with empty ones so a practice always
// encodes its lists as arrays.
func (p *BasePractice) fillLists() {
	for _, list := range []*[]string{&p.Inputs, &p.Outputs, &p.L2Criteria, &p.L3Criteria, &p.AssessorQuestions, &p.CommonPitfalls} {
		if *list == nil {
			*list = []string{}
		}
	}
}

// Catalog is an immutable snapshot of reference content.
type Catalog struct {
	practices []BasePractice
	scenarios []engine.Scenario
}

type practicesDoc struct {
	Practices []BasePractice `yaml:"practices"`
}

type scenariosDoc struct {
	Scenarios []engine.Scenario `yaml:"scenarios"`
}

// Default returns the compiled-in catalog.
func Default() *Catalog {
	return defaultCatalog
}

// Load reads and validates PracticesFile and ScenariosFile from fsys.
func Load(fsys fs.FS) (*Catalog, error) {
	practices, err := fs.ReadFile(fsys, PracticesFile)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", PracticesFile, err)
	}
	scenarios, err := fs.ReadFile(fsys, ScenariosFile)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", ScenariosFile, err)
	}
	return Parse(practices, scenarios)
}

// Parse validates and decodes the two YAML documents.
func Parse(practicesYAML, scenariosYAML []byte) (*Catalog, error) {
	if err := validateDocument(practicesSchema, practicesYAML); err != nil {
		return nil, fmt.Errorf("validate %s: %w", PracticesFile, err)
	}
	if err := validateDocument(scenariosSchema, scenariosYAML); err != nil {
		return nil, fmt.Errorf("validate %s: %w", ScenariosFile, err)
	}

	var pdoc practicesDoc
	if err := yaml.Unmarshal(practicesYAML, &pdoc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", PracticesFile, err)
	}
	var sdoc scenariosDoc
	if err := yaml.Unmarshal(scenariosYAML, &sdoc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", ScenariosFile, err)
	}

	for i := range pdoc.Practices {
		pdoc.Practices[i].fillLists()
	}
	c := &Catalog{practices: pdoc.Practices, scenarios: sdoc.Scenarios}
	if err := c.check(); err != nil {
		return nil, err
	}
	return c, nil
}

// check enforces the rules the schema cannot express.
func (c *Catalog) check() error {
	if len(c.scenarios) == 0 {
		return ErrNoScenarios
	}
	seen := make(map[string]struct{}, len(c.practices))
	for _, practice := range c.practices {
		key := strings.ToUpper(practice.ID)
		if _, ok := seen[key]; ok {
			return fmt.Errorf("practice %q: %w", practice.ID, ErrDuplicateID)
		}
		seen[key] = struct{}{}
	}
	seen = make(map[string]struct{}, len(c.scenarios))
	for _, scenario := range c.scenarios {
		key := strings.ToUpper(scenario.ID)
		if _, ok := seen[key]; ok {
			return fmt.Errorf("scenario %q: %w", scenario.ID, ErrDuplicateID)
		}
		seen[key] = struct{}{}
		if len(scenario.Options) < 2 {
			return fmt.Errorf("scenario %q: %w", scenario.ID, ErrTooFewOptions)
		}
	}
	return nil
}

// Practices returns a copy of the base practices in catalog order.
func (c *Catalog) Practices() []BasePractice {
	return append([]BasePractice(nil), c.practices...)
}

// Scenarios returns a deep copy of the scenarios in play order, safe to hand
// to engine.New.
func (c *Catalog) Scenarios() []engine.Scenario {
	out := make([]engine.Scenario, len(c.scenarios))
	for i, scenario := range c.scenarios {
		scenario.Options = append([]engine.Option{}, scenario.Options...)
		out[i] = scenario
	}
	return out
}

// Practice looks up a base practice by ID, ignoring case.
func (c *Catalog) Practice(id string) (BasePractice, bool) {
	id = strings.TrimSpace(id)
	for _, practice := range c.practices {
		if strings.EqualFold(practice.ID, id) {
			return practice, true
		}
	}
	return BasePractice{}, false
}

// Scenario looks up a scenario by ID, ignoring case.
func (c *Catalog) Scenario(id string) (engine.Scenario, bool) {
	id = strings.TrimSpace(id)
	for _, scenario := range c.scenarios {
		if strings.EqualFold(scenario.ID, id) {
			scenario.Options = append([]engine.Option(nil), scenario.Options...)
			return scenario, true
		}
	}
	return engine.Scenario{}, false
}
