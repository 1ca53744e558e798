// Package schema validates a merged configuration tree against a JSON
// Schema document.
package schema

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/xeipuuv/gojsonschema"

	"github.com/thoreinstein/cfgctl/internal/configtree"
	"github.com/thoreinstein/cfgctl/internal/validation"
)

// Validate checks tree against the JSON Schema in schemaJSON and returns
// one schema-kind issue per violation. The tree is never modified.
//
// The returned error reports problems with the schema document itself or
// the validation process, not violations in the tree.
func Validate(tree configtree.Tree, schemaJSON []byte) (*validation.Result, error) {
	schemaLoader := gojsonschema.NewBytesLoader(schemaJSON)
	documentLoader := gojsonschema.NewGoLoader(map[string]any(tree))

	res, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, errors.Wrap(err, "running schema validation")
	}

	result := &validation.Result{}
	for _, desc := range res.Errors() {
		result.Add(validation.KindSchema, formatPath(desc.Field()), "%s", desc.Description())
	}
	return result, nil
}

// formatPath rewrites gojsonschema's dotted field notation into the
// bracketed form used throughout cfgctl, e.g. "compute_instances.0.replicas"
// becomes "compute_instances[0].replicas". The document root maps to "".
func formatPath(field string) string {
	if field == "" || field == gojsonschema.STRING_CONTEXT_ROOT {
		return ""
	}

	var sb strings.Builder
	for _, seg := range strings.Split(field, ".") {
		if isIndex(seg) {
			sb.WriteString("[")
			sb.WriteString(seg)
			sb.WriteString("]")
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(".")
		}
		sb.WriteString(seg)
	}
	return sb.String()
}

func isIndex(seg string) bool {
	if seg == "" {
		return false
	}
	for _, r := range seg {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
