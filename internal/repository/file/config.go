// Package file loads team configuration from a YAML file kept alongside the
// deployment, for teams that do not maintain a Config tab.
package file

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/elly-bignell/sales-dashboard/internal/domain/dashboard"
	"github.com/elly-bignell/sales-dashboard/internal/pkg/cellparse"
	"gopkg.in/yaml.v3"
)

type targetsFile struct {
	Revenue  float64 `yaml:"revenue"`
	Sales    float64 `yaml:"sales"`
	Attended float64 `yaml:"attended"`
	Bookings float64 `yaml:"bookings"`
	Calls    float64 `yaml:"calls"`
}

type memberFile struct {
	Key         string `yaml:"key"`
	DisplayName string `yaml:"display_name"`
	StartDate   string `yaml:"start_date"`
}

type teamConfigFile struct {
	TeamSize    int          `yaml:"team_size"`
	Targets     *targetsFile `yaml:"targets"`
	Holidays    []string     `yaml:"holidays"`
	TeamMembers []memberFile `yaml:"team_members"`
}

type configRepositoryImpl struct {
	path string
}

// NewConfigRepository reads path on every load.
func NewConfigRepository(path string) dashboard.ConfigSource {
	return &configRepositoryImpl{path: path}
}

func (r *configRepositoryImpl) LoadTeamConfig(ctx context.Context) (*dashboard.TeamConfig, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("error reading team config file: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode parses a YAML team config. Unknown keys are rejected so a typo does
// not silently zero a target.
func Decode(r io.Reader) (*dashboard.TeamConfig, error) {
	var raw teamConfigFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: team config file is empty", dashboard.ErrConfigMissing)
		}
		return nil, fmt.Errorf("error parsing team config file: %w", err)
	}

	if raw.Targets == nil {
		return nil, fmt.Errorf("%w: targets are required", dashboard.ErrConfigMissing)
	}

	cfg := &dashboard.TeamConfig{
		TeamSize: raw.TeamSize,
		Targets: dashboard.Targets{
			Revenue:  raw.Targets.Revenue,
			Sales:    raw.Targets.Sales,
			Attended: raw.Targets.Attended,
			Bookings: raw.Targets.Bookings,
			Calls:    raw.Targets.Calls,
		},
	}

	for _, h := range raw.Holidays {
		d, ok := cellparse.ParseDate(h)
		if !ok {
			return nil, fmt.Errorf("%w: invalid holiday %q", dashboard.ErrConfigMissing, h)
		}
		cfg.Holidays = append(cfg.Holidays, d)
	}

	for _, m := range raw.TeamMembers {
		start, ok := cellparse.ParseDate(m.StartDate)
		if !ok {
			return nil, fmt.Errorf("%w: member %q has invalid start date %q", dashboard.ErrConfigMissing, m.Key, m.StartDate)
		}
		name := m.DisplayName
		if name == "" {
			name = m.Key
		}
		cfg.Members = append(cfg.Members, dashboard.TeamMember{Key: m.Key, DisplayName: name, StartDate: start})
	}

	if cfg.TeamSize == 0 {
		cfg.TeamSize = len(cfg.Members)
	}
	return cfg, nil
}
