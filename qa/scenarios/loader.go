package scenarios

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Jamesx86-64/gvsu-snow-removal-scheduler/core/model"
)

type AthleteDef struct {
	Name       string `yaml:"name"`
	Completed  int    `yaml:"completed"`
	Experience string `yaml:"experience"`
	Leader     bool   `yaml:"leader,omitempty"`
	Inactive   bool   `yaml:"inactive,omitempty"`
}

func (a AthleteDef) ToModel() (model.RosterEntry, error) {
	exp, err := model.ParseExperience(a.Experience)
	if err != nil {
		return model.RosterEntry{}, fmt.Errorf("athlete %s: %w", a.Name, err)
	}
	return model.RosterEntry{
		ID:              model.NormalizeID(a.Name),
		Name:            a.Name,
		Experience:      exp,
		ShiftsCompleted: a.Completed,
		LeaderQualified: a.Leader,
		Active:          !a.Inactive,
	}, nil
}

type SubmissionDef struct {
	Name string `yaml:"name"`
	// SubmittedAt is RFC3339; empty keeps list order so later entries win
	// duplicate resolution.
	SubmittedAt string `yaml:"submitted_at,omitempty"`
	Unavailable bool   `yaml:"unavailable,omitempty"`
}

func (s SubmissionDef) ToModel(date time.Time, order int) (model.AvailabilitySubmission, error) {
	ts := time.Time{}.Add(time.Duration(order) * time.Second)
	if s.SubmittedAt != "" {
		parsed, err := time.Parse(time.RFC3339, s.SubmittedAt)
		if err != nil {
			return model.AvailabilitySubmission{}, fmt.Errorf("submission %s: %w", s.Name, err)
		}
		ts = parsed
	}
	return model.AvailabilitySubmission{
		AthleteID:   model.NormalizeID(s.Name),
		ShiftDate:   date,
		SubmittedAt: ts,
		Available:   !s.Unavailable,
	}, nil
}

type Expected struct {
	Leader   string   `yaml:"leader,omitempty"`
	Members  []string `yaml:"members,omitempty"`
	Strategy string   `yaml:"strategy,omitempty"`
	// Error is the stable failure tag, e.g. no_eligible_leader.
	Error    string `yaml:"error,omitempty"`
	Warnings int    `yaml:"warnings,omitempty"`
}

type Scenario struct {
	Name           string          `yaml:"name"`
	Description    string          `yaml:"description,omitempty"`
	Date           string          `yaml:"date"`
	TeamSize       int             `yaml:"team_size"`
	MinimumVarsity int             `yaml:"minimum_varsity"`
	OptimalFirst   bool            `yaml:"optimal_first,omitempty"`
	Roster         []AthleteDef    `yaml:"roster"`
	Submissions    []SubmissionDef `yaml:"submissions"`
	Expected       Expected        `yaml:"expected"`
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}
