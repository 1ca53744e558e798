package policy

import (
	"fmt"
	"strings"

	"github.com/thoreinstein/cfgctl/internal/config"
	"github.com/thoreinstein/cfgctl/internal/configtree"
	"github.com/thoreinstein/cfgctl/internal/envs"
	"github.com/thoreinstein/cfgctl/internal/validation"
)

// Top-level collections the rules inspect.
const (
	keyComputeInstances = "compute_instances"
	keySecurityGroups   = "security_groups"
	keyDatabases        = "databases"
)

// Default returns the standard rule registry, tuned by the policy
// section of the tool configuration.
func Default(cfg config.Policy) *Engine {
	rules := []Rule{
		{
			Name:  "security-group-references",
			Check: checkSecurityGroupReferences,
		},
	}
	if cfg.RequireSecurityGroups {
		rules = append(rules, Rule{
			Name:  "security-group-presence",
			Check: checkSecurityGroupPresence,
		})
	}
	rules = append(rules,
		Rule{
			Name:         "dev-instance-types",
			Environments: []envs.Environment{envs.Dev},
			Check:        checkDevInstanceTypes(cfg.DevInstanceTypes),
		},
		Rule{
			Name:         "prod-database-hardening",
			Environments: []envs.Environment{envs.Prod},
			Check:        checkProdDatabases(cfg.MinBackupRetention),
		},
	)
	return NewEngine(rules...)
}

// checkSecurityGroupReferences verifies that every security group an
// instance attaches is declared in the top-level security_groups
// collection.
func checkSecurityGroupReferences(tree configtree.Tree, _ envs.Environment, result *validation.Result) {
	declared := make(map[string]bool)
	for _, sg := range mappings(tree, keySecurityGroups) {
		if name, ok := sg.item["name"].(string); ok {
			declared[name] = true
		}
	}

	for _, inst := range mappings(tree, keyComputeInstances) {
		attached, _ := inst.item[keySecurityGroups].([]any)
		for i, ref := range attached {
			name, ok := ref.(string)
			if !ok {
				continue
			}
			if !declared[name] {
				result.Add(validation.KindPolicy,
					fmt.Sprintf("%s.%s[%d]", inst.path, keySecurityGroups, i),
					"instance '%s' uses undefined security group '%s'",
					inst.name, name)
			}
		}
	}
}

// checkSecurityGroupPresence requires at least one attached security
// group per compute instance.
func checkSecurityGroupPresence(tree configtree.Tree, _ envs.Environment, result *validation.Result) {
	for _, inst := range mappings(tree, keyComputeInstances) {
		attached, _ := inst.item[keySecurityGroups].([]any)
		if len(attached) == 0 {
			result.Add(validation.KindPolicy, inst.path,
				"instance '%s' has no security groups attached", inst.name)
		}
	}
}

// checkDevInstanceTypes restricts instance types to the configured
// low-cost allow-list.
func checkDevInstanceTypes(allowed []string) CheckFunc {
	allowedSet := make(map[string]bool, len(allowed))
	for _, t := range allowed {
		allowedSet[t] = true
	}
	return func(tree configtree.Tree, env envs.Environment, result *validation.Result) {
		for _, inst := range mappings(tree, keyComputeInstances) {
			instanceType, _ := inst.item["instance_type"].(string)
			if !allowedSet[instanceType] {
				result.Add(validation.KindPolicy, inst.path+".instance_type",
					"instance '%s' has type '%s' in %s; must be one of: %s",
					inst.name, instanceType, env, strings.Join(allowed, ", "))
			}
		}
	}
}

// checkProdDatabases enforces production hardening: no public access,
// and a minimum backup retention period in days. A database failing
// both conditions yields two violations.
func checkProdDatabases(minRetention int) CheckFunc {
	return func(tree configtree.Tree, _ envs.Environment, result *validation.Result) {
		for _, db := range mappings(tree, keyDatabases) {
			if public, _ := db.item["publicly_accessible"].(bool); public {
				result.Add(validation.KindPolicy, db.path+".publicly_accessible",
					"production database '%s' cannot be publicly accessible", db.name)
			}
			retention, _ := configtree.Number(db.item["backup_retention_period"])
			if retention < float64(minRetention) {
				result.Add(validation.KindPolicy, db.path+".backup_retention_period",
					"production database '%s' backup retention must be >= %d days", db.name, minRetention)
			}
		}
	}
}

// element is one mapping member of a top-level collection, with its
// tree path and display name resolved.
type element struct {
	item configtree.Tree
	path string
	name string
}

// mappings returns the mapping elements of the sequence at key, skipping
// anything that is not a mapping. The schema guarantees the shape for
// valid documents; skipping keeps the rules total on arbitrary trees.
func mappings(tree configtree.Tree, key string) []element {
	seq, _ := tree[key].([]any)
	var out []element
	for i, v := range seq {
		m, ok := configtree.Mapping(v)
		if !ok {
			continue
		}
		name, _ := m["name"].(string)
		if name == "" {
			name = fmt.Sprintf("#%d", i)
		}
		out = append(out, element{
			item: m,
			path: fmt.Sprintf("%s[%d]", key, i),
			name: name,
		})
	}
	return out
}
