package definition

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"trychooser/internal/domain"
)

// Load reads the definition at path. Files ending in .hcl are decoded as HCL,
// everything else as YAML. The returned definition is normalised and valid.
func Load(path string) (*domain.Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		return ParseHCL(data, path)
	}
	return ParseYAML(data)
}

// ParseYAML decodes, normalises and validates a YAML definition. Unknown
// keys are rejected.
func ParseYAML(data []byte) (*domain.Definition, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var def domain.Definition
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", domain.ErrInvalidDefinition)
		}
		return nil, fmt.Errorf("failed to parse definition: %w", err)
	}
	return finish(&def)
}

func finish(def *domain.Definition) (*domain.Definition, error) {
	Normalize(def)
	if err := Validate(def); err != nil {
		return nil, err
	}
	return def, nil
}
