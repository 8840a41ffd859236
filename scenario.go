package brickfolio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Scenario is a named snapshot of simulation inputs and results. A
// scenario always belongs to an owner, and every store operation is
// scoped to that owner: one owner can never see or touch another
// owner's scenarios.
//
// Results are stored alongside inputs for display, but the inputs are
// the source of truth: re-running the simulator on them reproduces the
// stored numbers exactly.
type Scenario struct {
	Owner string `json:"-"`
	Name  string `json:"name"`

	Property PropertyAssumptions `json:"property"`
	Stock    *StockAssumptions   `json:"stock,omitempty"`

	Results      *FullSimulationResult  `json:"results,omitempty"`
	StockResults *StockSimulationResult `json:"stockResults,omitempty"`

	Summary string `json:"summary,omitempty"`

	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// Recompute re-runs the simulation on the stored inputs, replacing the
// stored results.
func (s *Scenario) Recompute() {
	s.Results = Simulate(s.Property)
	if s.Stock != nil {
		s.StockResults = SimulateStock(*s.Stock, s.Property, s.Results)
	}
}

// ScenarioStore persists scenarios under a directory, one JSONL file
// per owner. The files are human-readable and git-friendly: one
// scenario per line, in a canonical field order.
type ScenarioStore struct {
	path string
}

// NewScenarioStore returns a store rooted at path. The directory is
// created lazily on the first write.
func NewScenarioStore(path string) *ScenarioStore {
	return &ScenarioStore{path: path}
}

// ownerFile maps an owner to its backing file. Owners are plain names,
// not paths.
func (st *ScenarioStore) ownerFile(owner string) (string, error) {
	if owner == "" {
		return "", fmt.Errorf("owner cannot be empty")
	}
	if strings.ContainsAny(owner, `/\`) || owner == "." || owner == ".." {
		return "", fmt.Errorf("invalid owner %q", owner)
	}
	return filepath.Join(st.path, owner+".jsonl"), nil
}

// List returns all scenarios of an owner, in file order. An owner
// without a file simply has no scenarios yet.
func (st *ScenarioStore) List(owner string) ([]*Scenario, error) {
	filename, err := st.ownerFile(owner)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(filename)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scenarios, err := decodeScenarios(filename, f)
	if err != nil {
		return nil, err
	}
	for _, s := range scenarios {
		s.Owner = owner
	}
	return scenarios, nil
}

// Get returns the owner's scenario with the given name.
func (st *ScenarioStore) Get(owner, name string) (*Scenario, error) {
	scenarios, err := st.List(owner)
	if err != nil {
		return nil, err
	}
	for _, s := range scenarios {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("could not find scenario %q for owner %q", name, owner)
}

// Save creates or updates a scenario, matched by name within the
// owner's file. CreatedAt is set on first save, UpdatedAt on every
// save.
func (st *ScenarioStore) Save(sc *Scenario) error {
	if sc.Name == "" {
		return fmt.Errorf("scenario name cannot be empty")
	}
	scenarios, err := st.List(sc.Owner)
	if err != nil {
		return err
	}

	now := time.Now().UTC().Truncate(time.Second)
	sc.UpdatedAt = now

	replaced := false
	for i, s := range scenarios {
		if s.Name == sc.Name {
			if sc.CreatedAt.IsZero() {
				sc.CreatedAt = s.CreatedAt
			}
			scenarios[i] = sc
			replaced = true
			break
		}
	}
	if !replaced {
		if sc.CreatedAt.IsZero() {
			sc.CreatedAt = now
		}
		scenarios = append(scenarios, sc)
	}
	return st.write(sc.Owner, scenarios)
}

// Rename changes a scenario's name, refusing to overwrite an existing
// one.
func (st *ScenarioStore) Rename(owner, oldName, newName string) error {
	if newName == "" {
		return fmt.Errorf("scenario name cannot be empty")
	}
	scenarios, err := st.List(owner)
	if err != nil {
		return err
	}
	var target *Scenario
	for _, s := range scenarios {
		if s.Name == newName {
			return fmt.Errorf("scenario %q already exists for owner %q", newName, owner)
		}
		if s.Name == oldName {
			target = s
		}
	}
	if target == nil {
		return fmt.Errorf("could not find scenario %q for owner %q", oldName, owner)
	}
	target.Name = newName
	target.UpdatedAt = time.Now().UTC().Truncate(time.Second)
	return st.write(owner, scenarios)
}

// Delete removes a scenario from the owner's file.
func (st *ScenarioStore) Delete(owner, name string) error {
	scenarios, err := st.List(owner)
	if err != nil {
		return err
	}
	kept := scenarios[:0]
	for _, s := range scenarios {
		if s.Name != name {
			kept = append(kept, s)
		}
	}
	if len(kept) == len(scenarios) {
		return fmt.Errorf("could not find scenario %q for owner %q", name, owner)
	}
	return st.write(owner, kept)
}

// write replaces the owner's file with the given scenarios.
func (st *ScenarioStore) write(owner string, scenarios []*Scenario) error {
	filename, err := st.ownerFile(owner)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(st.path, 0755); err != nil {
		return fmt.Errorf("could not create scenario store %q: %w", st.path, err)
	}
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("could not write scenario file %q: %w", filename, err)
	}
	defer f.Close()
	for _, s := range scenarios {
		if err := encodeScenario(f, s); err != nil {
			return fmt.Errorf("could not encode scenario %q: %w", s.Name, err)
		}
	}
	return nil
}
