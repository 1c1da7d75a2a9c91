package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed profile.schema.json
var profileSchema string

var profileSchemaLoader = gojsonschema.NewStringLoader(profileSchema)

// validateProfile checks raw profile YAML against the embedded JSON schema
func validateProfile(raw []byte) error {
	var doc interface{}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("failed to parse yaml: %w", err)
	}
	if doc == nil {
		return fmt.Errorf("profile is empty")
	}

	// gojsonschema walks JSON; round-trip the decoded YAML through it
	docJSON, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to convert profile to json: %w", err)
	}

	result, err := gojsonschema.Validate(profileSchemaLoader, gojsonschema.NewBytesLoader(docJSON))
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		problems = append(problems, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
	}
	return fmt.Errorf("profile does not match schema: %s", strings.Join(problems, "; "))
}
