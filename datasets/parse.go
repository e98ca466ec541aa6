package datasets

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/launchdarkly/go-datadriven/datadriven"
)

// Format is a dataset document format.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// FormatError means a document could not be decoded in the expected format.
type FormatError struct {
	Format Format
	Source string
	Err    error
}

func (e FormatError) Error() string {
	return fmt.Sprintf("malformed %s dataset in %s: %s", e.Format, e.Source, e.Err)
}

func (e FormatError) Unwrap() error {
	return e.Err
}

// FormatForPath picks a format from a file extension or URL path. The second return value
// is false if the extension is not recognized.
func FormatForPath(path string) (Format, bool) {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, true
	case ".yaml", ".yml":
		return YAML, true
	default:
		return JSON, false
	}
}

// Parse decodes a dataset document. The source is only used in error messages, and as the
// description for an ArgumentsMissingError if the document is not a non-empty array.
func Parse(data []byte, format Format, source string) (datadriven.Dataset, error) {
	var raw interface{}
	switch format {
	case JSON:
		var v ldvalue.Value
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, FormatError{Format: format, Source: source, Err: err}
		}
		if v.Type() != ldvalue.ArrayType {
			return nil, datadriven.ArgumentsMissingError{Description: source}
		}
		raw = v.AsArbitraryValue()
	case YAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, FormatError{Format: format, Source: source, Err: err}
		}
	default:
		return nil, fmt.Errorf("unknown dataset format %q", format)
	}
	return datadriven.FromValues(source, raw)
}
