package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/internship-matcher/internal/ranking"
)

// LoadPolicy reads a YAML scoring policy. Keys absent from the file keep their
// ranking.DefaultPolicy values; unknown keys are rejected. An empty path returns the default.
func LoadPolicy(path string) (*ranking.Policy, error) {
	policy := ranking.DefaultPolicy()
	if path == "" {
		return &policy, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read policy file %s: %w", path, err)
	}

	if err := decodePolicy(data, &policy); err != nil {
		return nil, fmt.Errorf("failed to parse policy YAML %s: %w", path, err)
	}

	if err := policy.Validate(); err != nil {
		return nil, err
	}
	return &policy, nil
}

func decodePolicy(data []byte, policy *ranking.Policy) error {
	defaults := policy.GenderBoosts

	// A gender_boosts key replaces the default map instead of merging into it
	policy.GenderBoosts = nil

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(policy); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	if policy.GenderBoosts == nil && !hasKey(data, "gender_boosts") {
		policy.GenderBoosts = defaults
	}
	return nil
}

func hasKey(data []byte, key string) bool {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return false
	}
	_, ok := raw[key]
	return ok
}
