// Package options loads option records from TOML, YAML, JSON or plain
// text files.
package options

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"comboselect/internal/domain"
)

// ErrUnsupportedFormat is returned for file extensions with no decoder
var ErrUnsupportedFormat = errors.New("unsupported options format")

// Format names an options file encoding
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// optionsKey is the top-level key holding the record list in table formats
const optionsKey = "options"

// FormatFromPath picks a format from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".txt", ".lst", "":
		return FormatText, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

// ParseFormat validates a format name given on the command line
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatTOML, FormatYAML, FormatJSON, FormatText:
		return f, nil
	case "yml":
		return FormatYAML, nil
	case "txt":
		return FormatText, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
}

// LoadFile reads the options file at path
func LoadFile(path string) ([]*domain.Option, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open options file: %w", err)
	}
	defer f.Close()

	opts, err := Read(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return opts, nil
}

// Read decodes options in the given format from r
func Read(r io.Reader, format Format) ([]*domain.Option, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read options: %w", err)
	}
	return Parse(data, format)
}

// Parse decodes options from data. Table formats accept either a list of
// records or a table whose "options" key holds that list. A record is a
// scalar (used as label and value) or a table of fields.
func Parse(data []byte, format Format) ([]*domain.Option, error) {
	if format == FormatText {
		return parseText(data)
	}

	var raw any
	switch format {
	case FormatTOML:
		var doc map[string]any
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse TOML options: %w", err)
		}
		raw = doc
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse YAML options: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse JSON options: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	records, err := recordList(raw)
	if err != nil {
		return nil, err
	}

	opts := make([]*domain.Option, 0, len(records))
	for i, rec := range records {
		opt, err := toOption(rec)
		if err != nil {
			return nil, fmt.Errorf("option %d: %w", i, err)
		}
		opts = append(opts, opt)
	}
	return opts, nil
}

func recordList(raw any) ([]any, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case []any:
		return v, nil
	case map[string]any:
		list, ok := v[optionsKey]
		if !ok {
			return nil, fmt.Errorf("missing %q list", optionsKey)
		}
		records, ok := list.([]any)
		if !ok {
			// go-toml decodes arrays of tables as []map[string]any
			if tables, isTables := list.([]map[string]any); isTables {
				records = make([]any, len(tables))
				for i, t := range tables {
					records[i] = t
				}
				return records, nil
			}
			return nil, fmt.Errorf("%q must be a list, got %T", optionsKey, list)
		}
		return records, nil
	}
	return nil, fmt.Errorf("expected a list of options, got %T", raw)
}

func toOption(rec any) (*domain.Option, error) {
	switch v := rec.(type) {
	case map[string]any:
		return fromFields(v), nil
	case string, bool, int, int64, uint64, float64:
		s := fmt.Sprint(v)
		return &domain.Option{ID: uuid.NewString(), Label: s, Value: s}, nil
	}
	return nil, fmt.Errorf("unsupported record type %T", rec)
}

func fromFields(m map[string]any) *domain.Option {
	fields := make(map[string]string, len(m))
	for k, v := range m {
		fields[k] = stringify(v)
	}

	opt := &domain.Option{
		ID:     fields["id"],
		Label:  fields["label"],
		Value:  fields["value"],
		Fields: fields,
	}
	if opt.ID == "" {
		opt.ID = uuid.NewString()
	}
	if opt.Value == "" {
		opt.Value = opt.Label
	}
	if opt.Label == "" {
		opt.Label = opt.Value
	}
	return opt
}

// stringify renders nested values on one line so they stay filterable
func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = stringify(item)
		}
		return strings.Join(parts, ", ")
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + "=" + stringify(val[k])
		}
		return strings.Join(parts, " ")
	}
	return fmt.Sprint(v)
}

// parseText reads one label per line; blank lines and lines starting
// with '#' are skipped
func parseText(data []byte) ([]*domain.Option, error) {
	var opts []*domain.Option
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		opts = append(opts, &domain.Option{
			ID:    uuid.NewString(),
			Label: line,
			Value: line,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read options: %w", err)
	}
	return opts, nil
}
