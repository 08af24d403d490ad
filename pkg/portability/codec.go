package portability

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Format identifies a collection encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ImportError reports a document that could not be decoded or validated.
type ImportError struct {
	Format  Format
	Message string
	Cause   error
}

func (e *ImportError) Error() string {
	if e.Format != "" {
		return fmt.Sprintf("import %s: %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("import: %s: %v", e.Message, e.Cause)
}

func (e *ImportError) Unwrap() error {
	return e.Cause
}

// Encode serializes the collection in the given format.
func Encode(c *Collection, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(c, "", "  ")
	case FormatYAML:
		return yaml.Marshal(c)
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// Decode parses a collection document in the given format. Decoding does
// not validate entries; Apply does that before writing anything.
func Decode(data []byte, format Format) (*Collection, error) {
	var c Collection
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, &ImportError{Format: format, Message: "malformed document", Cause: err}
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, &ImportError{Format: format, Message: "malformed document", Cause: err}
		}
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
	return &c, nil
}
