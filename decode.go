package modelv

import (
	"bytes"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/modelv-go/modelv/i18n"
)

// FromJSON constructs a Model from a JSON document. The top level must be an
// object. Numbers are decoded as json.Number so the coercers keep the
// int/float distinction instead of collapsing everything to float64.
func FromJSON(schema *Schema, data []byte) (*Model, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, &ValidationError{
			Code:    CodeParseError,
			Message: i18n.T(CodeParseError, nil),
			Hint:    "invalid JSON object",
			Cause:   err,
		}
	}
	return New(schema, raw), nil
}

// FromYAML constructs a Model from a YAML document whose top level is a
// mapping.
func FromYAML(schema *Schema, data []byte) (*Model, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &ValidationError{
			Code:    CodeParseError,
			Message: i18n.T(CodeParseError, nil),
			Hint:    "invalid YAML mapping",
			Cause:   err,
		}
	}
	return New(schema, raw), nil
}
