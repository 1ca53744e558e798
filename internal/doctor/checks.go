package doctor

import (
	"errors"
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"

	"github.com/thoreinstein/cfgctl/internal/envs"
	"github.com/thoreinstein/cfgctl/internal/loader"
	"github.com/thoreinstein/cfgctl/pkg/fileutil"
)

const (
	categoryLayout    = "layout"
	categoryDocuments = "documents"
	categorySchema    = "schema"
)

// ConfigDirCheck verifies the configuration directory exists.
type ConfigDirCheck struct {
	Dir string
}

func (c *ConfigDirCheck) Name() string     { return "config-dir" }
func (c *ConfigDirCheck) Category() string { return categoryLayout }

func (c *ConfigDirCheck) Run() *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Details:  map[string]any{"path": c.Dir},
	}

	info, err := os.Stat(c.Dir)
	switch {
	case os.IsNotExist(err):
		result.Status = SeverityError
		result.Message = fmt.Sprintf("configuration directory %s does not exist", c.Dir)
		result.FixHint = fmt.Sprintf("create it with: mkdir -p %s", c.Dir)
	case err != nil:
		result.Status = SeverityError
		result.Message = fmt.Sprintf("cannot access %s: %v", c.Dir, err)
	case !info.IsDir():
		result.Status = SeverityError
		result.Message = fmt.Sprintf("%s exists but is not a directory", c.Dir)
	default:
		result.Status = SeverityPass
		result.Message = fmt.Sprintf("configuration directory %s exists", c.Dir)
	}

	return result
}

// BaseDocumentCheck verifies the base document is present and parses.
type BaseDocumentCheck struct {
	Dir string
}

func (c *BaseDocumentCheck) Name() string     { return "base-document" }
func (c *BaseDocumentCheck) Category() string { return categoryDocuments }

func (c *BaseDocumentCheck) Run() *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
	}

	tree, err := loader.New(c.Dir).Document("base")
	switch {
	case err != nil && errors.Is(err, os.ErrNotExist):
		result.Status = SeverityError
		result.Message = fmt.Sprintf("no base document found in %s", c.Dir)
		result.FixHint = fmt.Sprintf("create %s/base.yaml with the shared configuration", c.Dir)
	case err != nil:
		result.Status = SeverityError
		result.Message = fmt.Sprintf("base document is unreadable: %v", err)
	default:
		result.Status = SeverityPass
		result.Message = "base document parses"
		result.Details = map[string]any{"top_level_keys": len(tree)}
	}

	return result
}

// OverrideCheck verifies one environment's override document parses.
// A missing override is informational, not a problem.
type OverrideCheck struct {
	Dir string
	Env envs.Environment
}

func (c *OverrideCheck) Name() string     { return "override-" + string(c.Env) }
func (c *OverrideCheck) Category() string { return categoryDocuments }

func (c *OverrideCheck) Run() *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Details:  map[string]any{"environment": string(c.Env)},
	}

	_, err := loader.New(c.Dir).Document(string(c.Env))
	switch {
	case err != nil && errors.Is(err, os.ErrNotExist):
		result.Status = SeverityInfo
		result.Message = fmt.Sprintf("no override document for '%s'; base is used as-is", c.Env)
	case err != nil:
		result.Status = SeverityError
		result.Message = fmt.Sprintf("override for '%s' is unreadable: %v", c.Env, err)
	default:
		result.Status = SeverityPass
		result.Message = fmt.Sprintf("override for '%s' parses", c.Env)
	}

	return result
}

// SchemaCheck verifies the schema file exists and compiles as a JSON
// Schema document.
type SchemaCheck struct {
	Path string
}

func (c *SchemaCheck) Name() string     { return "schema-file" }
func (c *SchemaCheck) Category() string { return categorySchema }

func (c *SchemaCheck) Run() *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Details:  map[string]any{"path": c.Path},
	}

	data, err := fileutil.ReadFileWithLimit(c.Path)
	if err != nil {
		result.Status = SeverityError
		if errors.Is(err, os.ErrNotExist) {
			result.Message = fmt.Sprintf("schema file %s does not exist", c.Path)
			result.FixHint = "point schema_file at a JSON Schema document, or create one"
		} else {
			result.Message = fmt.Sprintf("cannot read schema file: %v", err)
		}
		return result
	}

	if _, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data)); err != nil {
		result.Status = SeverityError
		result.Message = fmt.Sprintf("schema does not compile: %v", err)
		return result
	}

	result.Status = SeverityPass
	result.Message = fmt.Sprintf("schema %s compiles", c.Path)
	return result
}

// OutputDirCheck verifies the artifact directory is usable if present.
// A missing directory is fine; generate creates it on demand.
type OutputDirCheck struct {
	Dir string
}

func (c *OutputDirCheck) Name() string     { return "output-dir" }
func (c *OutputDirCheck) Category() string { return categoryLayout }

func (c *OutputDirCheck) Run() *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Details:  map[string]any{"path": c.Dir},
	}

	info, err := os.Stat(c.Dir)
	switch {
	case os.IsNotExist(err):
		result.Status = SeverityInfo
		result.Message = fmt.Sprintf("output directory %s does not exist yet; generate will create it", c.Dir)
	case err != nil:
		result.Status = SeverityError
		result.Message = fmt.Sprintf("cannot access %s: %v", c.Dir, err)
	case !info.IsDir():
		result.Status = SeverityError
		result.Message = fmt.Sprintf("%s exists but is not a directory", c.Dir)
		result.FixHint = "remove the file or change output_dir"
	default:
		result.Status = SeverityPass
		result.Message = fmt.Sprintf("output directory %s exists", c.Dir)
	}

	return result
}
