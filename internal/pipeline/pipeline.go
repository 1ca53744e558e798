// Package pipeline runs the per-environment configuration pipeline:
// load and merge the layered documents, validate against the schema,
// then apply the policy rules. Each run is independent; a failure in
// one environment never affects another.
package pipeline

import (
	"context"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/cfgctl/internal/config"
	"github.com/thoreinstein/cfgctl/internal/configtree"
	"github.com/thoreinstein/cfgctl/internal/diff"
	"github.com/thoreinstein/cfgctl/internal/envs"
	cfgerrors "github.com/thoreinstein/cfgctl/internal/errors"
	"github.com/thoreinstein/cfgctl/internal/loader"
	"github.com/thoreinstein/cfgctl/internal/logging"
	"github.com/thoreinstein/cfgctl/internal/paths"
	"github.com/thoreinstein/cfgctl/internal/policy"
	"github.com/thoreinstein/cfgctl/internal/schema"
	"github.com/thoreinstein/cfgctl/internal/validation"
	"github.com/thoreinstein/cfgctl/pkg/fileutil"
)

// Pipeline wires the loader, schema validator, and policy engine for
// one tool configuration.
type Pipeline struct {
	cfg    *config.Config
	set    envs.Set
	loader *loader.Loader
	engine *policy.Engine
}

// New builds a Pipeline from the tool configuration.
func New(cfg *config.Config) *Pipeline {
	return &Pipeline{
		cfg:    cfg,
		set:    envs.NewSet(cfg.Environments),
		loader: loader.New(cfg.ConfigDir),
		engine: policy.Default(cfg.Policy),
	}
}

// Environments returns the configured environment set.
func (p *Pipeline) Environments() envs.Set {
	return p.set
}

// Validate runs the full pipeline for one environment name and returns
// the collected issues. A non-nil error means the pipeline could not
// run (unknown environment, missing base, unreadable schema); issues on
// the result mean it ran and the configuration failed.
//
// Schema validation is fail-fast: when it reports issues, policy rules
// are not evaluated.
func (p *Pipeline) Validate(ctx context.Context, name string) (*validation.Result, error) {
	log := logging.FromContext(ctx)

	env, err := p.set.Parse(name)
	if err != nil {
		return nil, err
	}

	tree, err := p.loader.Load(env)
	if err != nil {
		return nil, err
	}
	log.Debug("configuration merged", "environment", env)

	schemaJSON, err := p.readSchema()
	if err != nil {
		return nil, err
	}

	result, err := schema.Validate(tree, schemaJSON)
	if err != nil {
		return nil, err
	}
	if !result.OK() {
		log.Debug("schema validation failed", "environment", env, "issues", len(result.Issues))
		return result, nil
	}

	result.Merge(p.engine.Apply(tree, env))
	log.Debug("policy rules applied", "environment", env, "issues", len(result.Issues))
	return result, nil
}

// Generate validates one environment and, when it passes, writes the
// merged tree as an indented JSON artifact. It returns the validation
// result and the artifact path written (empty when validation failed).
func (p *Pipeline) Generate(ctx context.Context, name string) (*validation.Result, string, error) {
	log := logging.FromContext(ctx)

	result, err := p.Validate(ctx, name)
	if err != nil {
		return nil, "", err
	}
	if !result.OK() {
		return result, "", nil
	}

	env, err := p.set.Parse(name)
	if err != nil {
		return nil, "", err
	}
	tree, err := p.loader.Load(env)
	if err != nil {
		return nil, "", err
	}

	if err := paths.EnsureDir(p.cfg.OutputDir, 0); err != nil {
		return nil, "", errors.Wrap(err, "creating output directory")
	}

	out := paths.ArtifactPath(p.cfg.OutputDir, string(env))
	if err := fileutil.AtomicWriteJSON(out, map[string]any(tree)); err != nil {
		return nil, "", errors.Wrapf(err, "writing artifact for %q", env)
	}
	log.Info("artifact generated", "environment", env, "path", out)

	return result, out, nil
}

// Diff loads and merges both environments and returns their structural
// differences, left to right.
func (p *Pipeline) Diff(ctx context.Context, leftName, rightName string) ([]diff.Change, error) {
	left, err := p.load(leftName)
	if err != nil {
		return nil, err
	}
	right, err := p.load(rightName)
	if err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Debug("comparing environments", "left", leftName, "right", rightName)
	return diff.Compare(left, right), nil
}

func (p *Pipeline) load(name string) (configtree.Tree, error) {
	env, err := p.set.Parse(name)
	if err != nil {
		return nil, err
	}
	return p.loader.Load(env)
}

// readSchema loads the schema document for one validation call.
func (p *Pipeline) readSchema() ([]byte, error) {
	data, err := fileutil.ReadFileWithLimit(p.cfg.SchemaFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errors.Wrapf(cfgerrors.ErrSchemaNotFound, "at %s", p.cfg.SchemaFile)
		}
		return nil, err
	}
	return data, nil
}
