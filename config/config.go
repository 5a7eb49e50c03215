/*
File    : loxmix/config/config.go

Package config loads loxmix's REPL/CLI presentation settings - banner,
prompt, version/author/license strings shown on startup - from an
optional YAML file, falling back to loxmix's own built-in banner and
prompt defaults when no file is present. Nothing about language
semantics is configurable here; this is presentation only.
*/
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the shape of a .loxmixrc.yaml file. Every field is
// optional; Load fills in the defaults for anything left blank.
type Config struct {
	Banner  string `yaml:"banner"`
	Prompt  string `yaml:"prompt"`
	Version string `yaml:"version"`
	Author  string `yaml:"author"`
	License string `yaml:"license"`
	Line    string `yaml:"line"`
}

const banner = `
    ▗▖   ▄▄▄▄   ▗▖  ▗▖▗▖  ▗▖▄ ▄   ▄
    ▐▌   █   █  ▝▚▞▘  ▚▞▘ ▄ █▄▀  ▄
    ▐▌   █   █   ▐▌    ▐▌  ▄ █▀▄  ▄
    ▐▙▄▄▖▀▄▄▄▀  ▗▞  ▚▖▗▞  ▚▖█ █  █
`

// Default returns the built-in presentation, used whenever no config
// file is found or a field is left unset.
func Default() *Config {
	return &Config{
		Banner:  banner,
		Prompt:  "loxmix >>> ",
		Version: "v1.0.0",
		Author:  "loxmix",
		License: "MIT",
		Line:    "----------------------------------------------------------------",
	}
}

// Load reads path (typically ".loxmixrc.yaml" in the working
// directory) and layers it over Default(). A missing file is not an
// error - it just means every field keeps its default.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
