package app

import (
	"errors"
	"fmt"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	InputPath string // schematic text file

	LogFormat string
	LogLevel  string

	ShowGrid bool   // echo the parsed grid before the results
	MaskPath string // write the symbol mask dump here when set
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.InputPath == "" {
		return nil, errors.New("InputPath is a required configuration field and cannot be empty")
	}
	if cfg.MaskPath != "" && cfg.MaskPath == cfg.InputPath {
		return nil, fmt.Errorf("mask output %q would overwrite the input schematic", cfg.MaskPath)
	}
	return &cfg, nil
}
