package config

import (
	"os"
	"regexp"

	"github.com/BurntSushi/toml"

	"github.com/girkit/girgen/errors"
)

// Parameter is one per-parameter override entry.
type Parameter struct {
	Name string `toml:"name"`
	// Nullable replaces the declared nullability when set.
	Nullable *bool `toml:"nullable"`
	// Constant marks the parameter as immutable regardless of direction.
	Constant bool `toml:"constant"`
	// LengthOf names the array parameter this parameter is the length of.
	LengthOf string `toml:"length_of"`
	// StringType forces a string representation: "utf8", "filename" or
	// "os-string".
	StringType string `toml:"string_type"`
}

// Function is one per-function override block. Name is matched exactly;
// Pattern, when set, is a regular expression matched against the full
// function name instead.
type Function struct {
	Name               string      `toml:"name"`
	Pattern            string      `toml:"pattern"`
	IgnoreLengthDetect bool        `toml:"ignore_length_detect"`
	Async              bool        `toml:"async"`
	Trait              bool        `toml:"trait"`
	Parameters         []Parameter `toml:"parameter"`

	re *regexp.Regexp
}

// Config is the root of an override file.
type Config struct {
	Functions []Function `toml:"function"`
}

// Load reads and validates an override file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ParseFailed(errors.PhaseConfig, path, err)
	}
	return Parse(string(data))
}

// Parse decodes override TOML from a string.
func Parse(data string) (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(data, &cfg); err != nil {
		return nil, errors.ParseFailed(errors.PhaseConfig, "override configuration", err)
	}
	for i := range cfg.Functions {
		f := &cfg.Functions[i]
		if f.Name == "" && f.Pattern == "" {
			return nil, errors.InvalidData(errors.PhaseConfig, []string{"function"},
				"function block needs a name or a pattern")
		}
		if f.Pattern != "" {
			re, err := regexp.Compile("^" + f.Pattern + "$")
			if err != nil {
				return nil, errors.New(errors.PhaseConfig, errors.KindInvalidData).
					Path("function", f.Pattern).
					Detail("invalid pattern").
					Cause(err).
					Build()
			}
			f.re = re
		}
		for _, p := range f.Parameters {
			switch p.StringType {
			case "", "utf8", "filename", "os-string":
			default:
				return nil, errors.New(errors.PhaseConfig, errors.KindInvalidData).
					Path("function", f.Name).
					Param(p.Name).
					Detail("unknown string_type %q", p.StringType).
					Build()
			}
		}
	}
	return &cfg, nil
}

// Matched returns every function block applying to the named function.
func (c *Config) Matched(name string) []*Function {
	if c == nil {
		return nil
	}
	var out []*Function
	for i := range c.Functions {
		f := &c.Functions[i]
		if f.re != nil {
			if f.re.MatchString(name) {
				out = append(out, f)
			}
		} else if f.Name == name {
			out = append(out, f)
		}
	}
	return out
}

// MatchedParameters collects the parameter entries for paramName across all
// matched function blocks, in declaration order.
func MatchedParameters(functions []*Function, paramName string) []*Parameter {
	var out []*Parameter
	for _, f := range functions {
		for i := range f.Parameters {
			if f.Parameters[i].Name == paramName {
				out = append(out, &f.Parameters[i])
			}
		}
	}
	return out
}
