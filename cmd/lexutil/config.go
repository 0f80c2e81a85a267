// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// defaultDictionary is used when no dictionary is found elsewhere.
const defaultDictionary = "./dictionary.json"

// config holds defaults read from the environment.
type config struct {
	// Dictionary is the interchange file used by search and list.
	Dictionary string `env:"LEXUTIL_DICTIONARY"`

	// Output is where parse writes the interchange file.
	Output string `env:"LEXUTIL_OUTPUT" env-default:"./dictionary.json"`

	// LogLevel is the zap log level name.
	LogLevel string `env:"LEXUTIL_LOG_LEVEL" env-default:"warn"`
}

// loadConfig reads the configuration from environment variables.
func loadConfig() (*config, error) {
	var cfg config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	return &cfg, nil
}

// findDictionary returns the configured dictionary or the first one found in
// the default locations.
func (cfg *config) findDictionary() string {
	if cfg.Dictionary != "" {
		return cfg.Dictionary
	}
	for _, path := range dictLocations() {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return defaultDictionary
}
