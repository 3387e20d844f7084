package candidates

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/xeipuuv/gojsonschema"

	"github.com/spigell/resume-ranker/internal/ranking"
)

//go:embed schema/batch.schema.json
var batchSchema string

// FieldError is a single schema violation of a batch document.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every schema violation of a batch document.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return "invalid batch document: " + strings.Join(parts, "; ")
}

// FromJSONFile loads candidates from a JSON batch document on disk.
func FromJSONFile(path string) (*Candidates, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading batch document %q: %w", path, err)
	}
	return FromJSON(data)
}

// FromJSONReader loads candidates from a JSON batch document.
func FromJSONReader(r io.Reader) (*Candidates, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading batch document: %w", err)
	}
	return FromJSON(data)
}

// FromJSON validates a batch document, an array of {"filename", "text"} objects,
// and decodes it into candidates. Entries without a filename key are called Unknown,
// an explicit empty filename is kept.
func FromJSON(data []byte) (*Candidates, error) {
	if err := ValidateDocument(data); err != nil {
		return nil, err
	}

	var items []map[string]any
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decoding batch document: %w", err)
	}

	var candidates []*Candidate
	if err := mapstructure.Decode(items, &candidates); err != nil {
		return nil, fmt.Errorf("decoding batch document: %w", err)
	}

	for i, candidate := range candidates {
		if _, ok := items[i]["filename"]; !ok {
			candidate.ID = ranking.UnknownID
		}
		candidate.Text = strings.ToValidUTF8(candidate.Text, "")
	}

	return New(candidates...), nil
}

// ValidateDocument checks a batch document against the embedded JSON schema.
func ValidateDocument(data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(batchSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("validating batch document: %w", err)
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}
