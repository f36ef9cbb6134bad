package app

import (
	"github.com/adminde/household-data/internal/publish"
	"github.com/adminde/household-data/internal/validation"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ConfigPath string `name:"config" validate:"required"` // .hcl/.yaml file or directory
	OutputPath string `name:"output" validate:"required"`

	// Overrides for the package definition, nil when not given.
	PackageVersion *string
	Changes        *string

	WorkerCount int `name:"workers" validate:"min=1"`

	LogFormat string `name:"log-format" validate:"oneof=text json"`
	LogLevel  string `name:"log-level" validate:"oneof=debug info warn error"`

	Publish publish.Config
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if err := validation.Struct(cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
