// Package policy applies business rules to a schema-valid configuration
// tree. Rules are independent checks gated by environment; the engine
// runs every applicable rule and collects all violations rather than
// stopping at the first.
package policy

import (
	"github.com/thoreinstein/cfgctl/internal/configtree"
	"github.com/thoreinstein/cfgctl/internal/envs"
	"github.com/thoreinstein/cfgctl/internal/validation"
)

// CheckFunc inspects the tree for one class of violation and records
// findings on the result. It must not modify the tree.
type CheckFunc func(tree configtree.Tree, env envs.Environment, result *validation.Result)

// Rule is one named policy check. A nil Environments slice applies the
// rule in every environment.
type Rule struct {
	Name         string
	Environments []envs.Environment
	Check        CheckFunc
}

// appliesTo reports whether the rule is active in the given environment.
func (r Rule) appliesTo(env envs.Environment) bool {
	if len(r.Environments) == 0 {
		return true
	}
	for _, e := range r.Environments {
		if e == env {
			return true
		}
	}
	return false
}

// Engine evaluates an ordered rule registry.
type Engine struct {
	rules []Rule
}

// NewEngine creates an engine with the given rules, evaluated in order.
func NewEngine(rules ...Rule) *Engine {
	return &Engine{rules: rules}
}

// Register appends additional rules to the registry.
func (e *Engine) Register(rules ...Rule) {
	e.rules = append(e.rules, rules...)
}

// Apply evaluates every rule active in env and returns all collected
// violations. An empty result means the configuration is compliant.
func (e *Engine) Apply(tree configtree.Tree, env envs.Environment) *validation.Result {
	result := &validation.Result{}
	for _, rule := range e.rules {
		if rule.appliesTo(env) {
			rule.Check(tree, env, result)
		}
	}
	return result
}
