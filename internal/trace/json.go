// internal/trace/json.go
package trace

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// traceSchema describes a JSON trace document: an array of answer records.
const traceSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["test", "approach", "answer", "time"],
    "properties": {
      "test": {"type": "string", "minLength": 1},
      "approach": {"type": "string", "minLength": 1},
      "answer": {"type": "integer", "minimum": 0},
      "time": {"type": "number", "minimum": 0}
    }
  }
}`

var traceSchemaLoader = gojsonschema.NewStringLoader(traceSchema)

// LoadJSON reads answer traces from a JSON file.
func LoadJSON(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open trace file %s: %w", path, err)
	}
	defer file.Close()

	records, err := ReadJSON(file)
	if err != nil {
		return nil, fmt.Errorf("unable to read trace file %s: %w", path, err)
	}
	return records, nil
}

// ReadJSON validates a JSON trace document against the trace schema and decodes it.
func ReadJSON(r io.Reader) ([]Record, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	result, err := gojsonschema.Validate(traceSchemaLoader, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchema, err)
	}
	if !result.Valid() {
		var details []string
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}
		return nil, fmt.Errorf("%w: %s", ErrSchema, strings.Join(details, "; "))
	}

	var records []Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode trace document: %w", err)
	}
	return records, nil
}
