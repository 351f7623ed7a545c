package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"
)

// YAML returns a kong.Resolver that reads flag values from a YAML document.
//
// Flags are looked up by name with dashes replaced by underscores
// (user_agent: ...), by their dashed name (user-agent: ...), and then under
// the command they belong to (serve: {addr: ...}).
func YAML(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}

	var f kong.ResolverFunc = func(_ *kong.Context, parent *kong.Path, flag *kong.Flag) (any, error) {
		names := []string{strings.ReplaceAll(flag.Name, "-", "_"), flag.Name}

		for _, name := range names {
			if raw, ok := values[name]; ok {
				return raw, nil
			}
		}

		if parent == nil || parent.Command == nil {
			return nil, nil
		}
		section, ok := values[parent.Command.Name].(map[string]any)
		if !ok {
			return nil, nil
		}
		for _, name := range names {
			if raw, ok := section[name]; ok {
				return raw, nil
			}
		}
		return nil, nil
	}
	return f, nil
}
