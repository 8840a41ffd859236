package brickfolio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// This file contains code to persist scenarios in a way that is still
// human-readable and git-friendly: one scenario per line, fields in a
// canonical order so that unchanged scenarios produce unchanged lines.

// MarshalJSON renders the scenario in canonical field order.
func (s *Scenario) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("name", s.Name)
	w.Optional("summary", s.Summary)
	w.Append("property", s.Property)
	if s.Stock != nil {
		w.Append("stock", s.Stock)
	}
	if s.Results != nil {
		w.Append("results", s.Results)
	}
	if s.StockResults != nil {
		w.Append("stockResults", s.StockResults)
	}
	w.Optional("createdAt", s.CreatedAt)
	w.Optional("updatedAt", s.UpdatedAt)
	return w.MarshalJSON()
}

// encodeScenario appends one scenario as a single JSONL line.
func encodeScenario(w io.Writer, s *Scenario) error {
	line, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if _, err := w.Write(line); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

// decodeScenarios parses a whole owner file. filename is for error
// messages only.
func decodeScenarios(filename string, r io.Reader) ([]*Scenario, error) {
	var scenarios []*Scenario
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(r)
	// result series make lines bigger than the default token size
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var s Scenario
		if err := json.Unmarshal(line, &s); err != nil {
			return nil, fmt.Errorf("format error in %q on line %q: %w", filename, string(line), err)
		}
		if seen[s.Name] {
			return nil, fmt.Errorf("format error in %q: scenario %q is already defined", filename, s.Name)
		}
		seen[s.Name] = true
		scenarios = append(scenarios, &s)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading %q: %w", filename, err)
	}
	return scenarios, nil
}
