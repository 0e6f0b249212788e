// Package schema renders a ConsolidatedCase to the documented hydrated
// JSON shape, validates it, and writes it to disk. Validation failures
// are reported as warnings — per §4.6 they never block the write.
package schema

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"case-consolidator-fiber/pkg/models"
)

//go:embed hydrated_schema.json
var hydratedSchemaJSON []byte

var structValidate = validator.New()

var compiledSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("hydrated_schema.json", bytes.NewReader(hydratedSchemaJSON)); err != nil {
		panic(fmt.Sprintf("schema: embedded hydrated_schema.json is invalid: %v", err))
	}
	s, err := compiler.Compile("hydrated_schema.json")
	if err != nil {
		panic(fmt.Sprintf("schema: embedded hydrated_schema.json failed to compile: %v", err))
	}
	return s
}

// Render produces the documented hydrated JSON shape for c.
func Render(c *models.ConsolidatedCase) ([]byte, error) {
	return json.MarshalIndent(render(c), "", "  ")
}

// Validate runs both validation passes — Go struct tags over the
// source ConsolidatedCase, then JSON-Schema over the rendered wire
// shape — and returns every issue found as a warning string. Neither
// pass returns an error: a malformed record is a data problem to
// report, not a reason to abort.
func Validate(c *models.ConsolidatedCase) []string {
	var warnings []string

	if err := structValidate.Struct(c); err != nil {
		warnings = append(warnings, fmt.Sprintf("struct validation: %v", err))
	}

	rendered, err := Render(c)
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("render failed before schema validation: %v", err))
		return warnings
	}

	var v interface{}
	if err := json.Unmarshal(rendered, &v); err != nil {
		warnings = append(warnings, fmt.Sprintf("rendered JSON failed to parse: %v", err))
		return warnings
	}
	if err := compiledSchema.Validate(v); err != nil {
		warnings = append(warnings, fmt.Sprintf("schema validation: %v", err))
	}

	return warnings
}

// WriteHydrated renders, validates, and writes the hydrated record to
// <outputDir>/hydrated_FCRA_<caseName>.json, per §6.5. I/O errors are
// returned to the caller (§7: I/O errors on output propagate); schema
// warnings are returned alongside a successful write, never block it.
func WriteHydrated(c *models.ConsolidatedCase, outputDir, caseName string) ([]string, error) {
	warnings := Validate(c)

	rendered, err := Render(c)
	if err != nil {
		return warnings, fmt.Errorf("schema: render hydrated record: %w", err)
	}

	path := filepath.Join(outputDir, fmt.Sprintf("hydrated_FCRA_%s.json", caseName))
	if err := os.WriteFile(path, rendered, 0o644); err != nil {
		return warnings, fmt.Errorf("schema: write hydrated record: %w", err)
	}

	return warnings, nil
}
