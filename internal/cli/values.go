package cli

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// loadValuesFile reads a YAML mapping of placeholder values.
func loadValuesFile(path string) (map[string]any, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read values file %s", path)
	}

	values := make(map[string]any)

	err = yaml.Unmarshal(content, &values)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to parse values file %s", path)
	}

	return flatten(values), nil
}

// parseSet parses key=value pairs given on the command line. Values are kept as strings.
func parseSet(pairs []string) (map[string]any, error) {
	values := make(map[string]any, len(pairs))

	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, errors.Errorf("invalid value %q, expected key=value", pair)
		}

		values[key] = value
	}

	return values, nil
}

// flatten turns nested mappings and lists into placeholder keys joined by underscores,
// {"user": {"name": "x"}, "tags": ["a"]} gives user_name and tags_0.
func flatten(values map[string]any) map[string]any {
	res := make(map[string]any, len(values))
	flattenInto(res, "", values)

	return res
}

func flattenInto(res map[string]any, prefix string, value any) {
	switch val := value.(type) {
	case map[string]any:
		for key, sub := range val {
			flattenInto(res, joinKey(prefix, key), sub)
		}
	case map[any]any:
		for key, sub := range val {
			flattenInto(res, joinKey(prefix, toKey(key)), sub)
		}
	case []any:
		for idx, sub := range val {
			flattenInto(res, joinKey(prefix, strconv.Itoa(idx)), sub)
		}
	case time.Time:
		res[prefix] = formatTime(val)
	default:
		res[prefix] = val
	}
}

// formatTime formats unquoted YAML timestamps. Dates without a time of day keep the date only form.
func formatTime(val time.Time) string {
	if val.Location() == time.UTC && val.Equal(val.Truncate(24*time.Hour)) {
		return val.Format(time.DateOnly)
	}

	return val.Format(time.RFC3339Nano)
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}

	return prefix + "_" + key
}

func toKey(key any) string {
	switch k := key.(type) {
	case string:
		return k
	case int:
		return strconv.Itoa(k)
	case bool:
		return strconv.FormatBool(k)
	default:
		return ""
	}
}

// mergeValues merges maps from the lowest priority to the highest.
func mergeValues(all ...map[string]any) map[string]any {
	res := make(map[string]any)

	for _, values := range all {
		for key, value := range values {
			res[key] = value
		}
	}

	return res
}
