// Package envs models the closed set of deployment environments.
// The set is fixed at configuration time; commands reject names
// outside it.
package envs

import (
	"strings"

	"github.com/cockroachdb/errors"

	cfgerrors "github.com/thoreinstein/cfgctl/internal/errors"
)

// Environment identifies one deployment environment, e.g. "dev".
type Environment string

// Well-known environment names. The configured set defaults to these
// three but may be extended via the tool configuration.
const (
	Dev     Environment = "dev"
	Staging Environment = "staging"
	Prod    Environment = "prod"
)

// Set is the closed collection of configured environments, in
// declaration order.
type Set []Environment

// NewSet builds a Set from configured environment names.
func NewSet(names []string) Set {
	set := make(Set, 0, len(names))
	for _, n := range names {
		set = append(set, Environment(n))
	}
	return set
}

// Parse resolves a user-supplied name against the set. It returns
// ErrUnknownEnvironment listing the valid names when no member matches.
func (s Set) Parse(name string) (Environment, error) {
	for _, env := range s {
		if string(env) == name {
			return env, nil
		}
	}
	return "", errors.Wrapf(cfgerrors.ErrUnknownEnvironment,
		"'%s' (must be one of: %s)", name, s.String())
}

// Contains reports whether the set holds the given environment.
func (s Set) Contains(env Environment) bool {
	for _, e := range s {
		if e == env {
			return true
		}
	}
	return false
}

// Names returns the environment names as plain strings.
func (s Set) Names() []string {
	names := make([]string, len(s))
	for i, env := range s {
		names[i] = string(env)
	}
	return names
}

func (s Set) String() string {
	return strings.Join(s.Names(), ", ")
}
