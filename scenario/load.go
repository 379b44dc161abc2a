package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v3"
)

// validate is the shared validator instance, with the grid row rule
// registered in init.
var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("gridrows", validateGridRows)
}

// validateGridRows accepts equally long, non-empty rows drawn from "#.SG"
// with at most one 'S' and one 'G'.
func validateGridRows(fl validator.FieldLevel) bool {
	rows, ok := fl.Field().Interface().([]string)
	if !ok || len(rows) == 0 || rows[0] == "" {
		return false
	}
	starts, goals := 0, 0
	for _, r := range rows {
		if len(r) != len(rows[0]) {
			return false
		}
		for _, ch := range r {
			switch ch {
			case '#', '.':
			case 'S':
				starts++
			case 'G':
				goals++
			default:
				return false
			}
		}
	}

	return starts <= 1 && goals <= 1
}

// Load reads a scenario file, choosing the decoder by extension
// (.yaml, .yml or .hcl).
func Load(path string) (*File, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return DecodeYAML(bytes.NewReader(src))
	case ".hcl":
		return DecodeHCL(src, path)
	}

	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

// DecodeYAML decodes and validates a YAML document. Unknown keys are errors.
func DecodeYAML(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f File
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("scenario: decode yaml: %w", err)
	}

	return &f, f.Validate()
}

// DecodeHCL decodes and validates an HCL document; filename is used in
// diagnostics only. Expressions may call repeat, join and upper.
func DecodeHCL(src []byte, filename string) (*File, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("scenario: parse hcl %s: %w", filename, diags)
	}
	var f File
	diags = gohcl.DecodeBody(file.Body, evalContext(), &f)
	if diags.HasErrors() {
		return nil, fmt.Errorf("scenario: decode hcl %s: %w", filename, diags)
	}

	return &f, f.Validate()
}

// Validate checks struct tags and cross-field rules.
func (f *File) Validate() error {
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	seen := make(map[string]bool, len(f.Scenarios))
	for _, s := range f.Scenarios {
		if seen[s.Name] {
			return fmt.Errorf("%w: duplicate scenario %q", ErrInvalid, s.Name)
		}
		seen[s.Name] = true
		if s.Grid != nil && len(s.Nodes)+len(s.Edges) > 0 {
			return fmt.Errorf("%w: scenario %q mixes grid and nodes", ErrInvalid, s.Name)
		}
	}

	return nil
}

// Find returns the scenario with the given name. An empty name selects the
// first scenario.
func (f *File) Find(name string) (*Scenario, error) {
	if name == "" && len(f.Scenarios) > 0 {
		return f.Scenarios[0], nil
	}
	for _, s := range f.Scenarios {
		if s.Name == name {
			return s, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
}
