// Package config loads gwtool job files.
//
// A job is a YAML document naming the mode files to read and the physical
// parameters of the source. Scalar parameters can be overridden with
// GWTOOL_* environment variables, applied after the file is read.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/cwbudde/algo-gw/wave/series"
	"gopkg.in/yaml.v3"
)

const (
	DefaultMass     = 1.0
	DefaultDistance = 100.0
	DefaultOutput   = "-"
)

// ErrInvalidJob is returned by [Job.Validate].
var ErrInvalidJob = errors.New("config: invalid job")

type Source struct {
	Mass     float64 `yaml:"mass" env:"GWTOOL_MASS"`
	Radius   float64 `yaml:"radius" env:"GWTOOL_RADIUS"`
	InitFreq float64 `yaml:"f0" env:"GWTOOL_F0"`
}

type Binary struct {
	M1   float64 `yaml:"m1" env:"GWTOOL_M1"`
	M2   float64 `yaml:"m2" env:"GWTOOL_M2"`
	MADM float64 `yaml:"madm" env:"GWTOOL_MADM"`
	JADM float64 `yaml:"jadm" env:"GWTOOL_JADM"`
}

type Compose struct {
	Distance      float64 `yaml:"distance_mpc" env:"GWTOOL_DISTANCE"`
	Inclination   float64 `yaml:"inclination" env:"GWTOOL_INCLINATION"`
	Phi           float64 `yaml:"phi" env:"GWTOOL_PHI"`
	NegativeModes bool    `yaml:"negative_modes" env:"GWTOOL_NEGATIVE_MODES"`
}

type Output struct {
	Path string `yaml:"path" env:"GWTOOL_OUTPUT"`
	Plot bool   `yaml:"plot" env:"GWTOOL_PLOT"`
}

// ModeFile names the column file holding one (l, m) mode.
type ModeFile struct {
	L    int    `yaml:"l"`
	M    int    `yaml:"m"`
	Path string `yaml:"path"`
}

// Key returns the mode key of f.
func (f ModeFile) Key() series.ModeKey {
	return series.ModeKey{L: f.L, M: f.M}
}

type Job struct {
	Source  Source     `yaml:"source"`
	Binary  Binary     `yaml:"binary"`
	Compose Compose    `yaml:"compose"`
	Output  Output     `yaml:"output"`
	Modes   []ModeFile `yaml:"modes"`
}

func DefaultJob() *Job {
	return &Job{
		Source:  Source{Mass: DefaultMass},
		Compose: Compose{Distance: DefaultDistance},
		Output:  Output{Path: DefaultOutput},
	}
}

// Load reads the job at path on top of [DefaultJob], applies environment
// overrides and validates the result.
func Load(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	job := DefaultJob()
	if err := yaml.Unmarshal(data, job); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := job.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := job.Validate(); err != nil {
		return nil, err
	}
	return job, nil
}

func Save(path string, job *Job) error {
	data, err := yaml.Marshal(job)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// ApplyEnv overrides scalar parameters from GWTOOL_* variables. Unset
// variables leave the current value alone.
func (j *Job) ApplyEnv() error {
	for _, section := range []any{&j.Source, &j.Binary, &j.Compose, &j.Output} {
		if err := ParseEnv(section); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks that the job names at least one valid, unique mode and a
// positive mass.
func (j *Job) Validate() error {
	if len(j.Modes) == 0 {
		return fmt.Errorf("%w: no modes", ErrInvalidJob)
	}
	if !(j.Source.Mass > 0) {
		return fmt.Errorf("%w: mass %g", ErrInvalidJob, j.Source.Mass)
	}
	seen := make(map[series.ModeKey]bool, len(j.Modes))
	for _, f := range j.Modes {
		k := f.Key()
		if !k.Valid() {
			return fmt.Errorf("%w: mode %v", ErrInvalidJob, k)
		}
		if seen[k] {
			return fmt.Errorf("%w: mode %v listed twice", ErrInvalidJob, k)
		}
		if f.Path == "" {
			return fmt.Errorf("%w: mode %v has no path", ErrInvalidJob, k)
		}
		seen[k] = true
	}
	return nil
}
