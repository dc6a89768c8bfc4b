// Package toml reads the wordfreq configuration file.
package toml

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/pelletier/go-toml/v2"
)

// Loader is a kong.ConfigurationLoader for TOML files. Keys name flags,
// with dashes or underscores, at the top level or inside a table named
// after the command:
//
//	locale = "pt-BR"
//
//	[count]
//	limit = 100
//	min_count = 2
func Loader(r io.Reader) (kong.Resolver, error) {
	var raw map[string]any
	if err := toml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, err
	}
	values := flatten(raw, "")

	var f kong.ResolverFunc = func(kctx *kong.Context, parent *kong.Path, flag *kong.Flag) (any, error) {
		var names []string
		if sel := kctx.Selected(); sel != nil {
			for _, n := range keys(flag.Name) {
				names = append(names, sel.Name+"."+n)
			}
		}
		for _, name := range append(names, keys(flag.Name)...) {
			if v, ok := values[name]; ok {
				return scalar(v), nil
			}
		}
		return nil, nil
	}
	return f, nil
}

func keys(flag string) []string {
	snake := strings.ReplaceAll(flag, "-", "_")
	if snake == flag {
		return []string{flag}
	}
	return []string{flag, snake}
}

// flatten converts nested tables to dot-notation keys.
func flatten(m map[string]any, prefix string) map[string]any {
	result := make(map[string]any)
	for key, value := range m {
		if prefix != "" {
			key = prefix + "." + key
		}
		if nested, ok := value.(map[string]any); ok {
			for k, v := range flatten(nested, key) {
				result[k] = v
			}
			continue
		}
		result[key] = value
	}
	return result
}

// scalar renders TOML numbers and dates as strings so kong's mappers
// parse them the same way as command-line values.
func scalar(v any) any {
	switch v := v.(type) {
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case time.Time:
		return v.Format(time.RFC3339)
	case []any:
		parts := make([]string, len(v))
		for i, e := range v {
			parts[i] = toString(scalar(e))
		}
		return strings.Join(parts, ",")
	}
	return v
}

func toString(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	}
	return ""
}
