package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"honnef.co/go/dubins"
)

// maxScenarioSize caps the size of scenario files.
const maxScenarioSize = 1 << 20

// PoseSpec is a pose as written by humans: a position and a heading in
// degrees, counter-clockwise from the positive x axis.
type PoseSpec struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Heading float64 `json:"heading_deg"`
}

func (ps PoseSpec) Pose() dubins.Pose {
	return dubins.NewPose(ps.X, ps.Y, ps.Heading*math.Pi/180)
}

// parsePoseSpec parses "x,y,heading".
func parsePoseSpec(s string) (PoseSpec, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 3 {
		return PoseSpec{}, fmt.Errorf("pose %q: want x,y,heading", s)
	}
	var vals [3]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return PoseSpec{}, fmt.Errorf("pose %q: %w", s, err)
		}
		vals[i] = v
	}
	return PoseSpec{X: vals[0], Y: vals[1], Heading: vals[2]}, nil
}

// Case is a single planning request.
type Case struct {
	Name  string   `json:"name,omitempty"`
	Start PoseSpec `json:"start"`
	End   PoseSpec `json:"end"`
	// Radius overrides the scenario's radius for this case.
	Radius *float64 `json:"radius,omitempty"`
}

// Scenario is a batch of planning requests sharing a default turning radius.
type Scenario struct {
	Radius float64 `json:"radius"`
	Cases  []Case  `json:"cases"`
}

// RadiusFor returns the turning radius used for c.
func (s *Scenario) RadiusFor(c Case) float64 {
	if c.Radius != nil {
		return *c.Radius
	}
	return s.Radius
}

// Validate checks that every case has a usable radius and poses.
func (s *Scenario) Validate() error {
	if len(s.Cases) == 0 {
		return errors.New("scenario has no cases")
	}
	for i, c := range s.Cases {
		if _, err := dubins.NewPlanner(s.RadiusFor(c)); err != nil {
			return fmt.Errorf("case %d: %w", i, err)
		}
		if err := c.Start.Pose().Validate(); err != nil {
			return fmt.Errorf("case %d start: %w", i, err)
		}
		if err := c.End.Pose().Validate(); err != nil {
			return fmt.Errorf("case %d end: %w", i, err)
		}
	}
	return nil
}

// LoadScenario reads and validates a scenario from a JSON file.
func LoadScenario(path string) (*Scenario, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("scenario file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat scenario file: %w", err)
	}
	if fileInfo.Size() > maxScenarioSize {
		return nil, fmt.Errorf("scenario file too large: %d bytes (max %d)", fileInfo.Size(), maxScenarioSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var s Scenario
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario JSON: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &s, nil
}
