package config

import (
	"strings"

	"github.com/gosed/ed/internal/config/loader"
)

// Settings is the editor's resolved runtime configuration: the
// scroll/reflow defaults, the global command recursion limit, the
// default print_errors and shell settings, and where macros persist.
type Settings struct {
	ScrollLines    int
	ReflowWidth    int
	RecursionLimit int
	PrintErrors    bool
	DefaultShell   string
	MacroFile      string
	LogLevel       string
}

// Defaults returns the settings an editor starts with absent any
// config file or environment override.
func Defaults() Settings {
	return Settings{
		ScrollLines:    24,
		ReflowWidth:    80,
		RecursionLimit: 256,
		PrintErrors:    false,
		DefaultShell:   "",
		MacroFile:      "",
		LogLevel:       "info",
	}
}

// Load resolves settings from, in increasing priority: built-in
// defaults, the optional TOML file at path (ignored if path is empty
// or the file does not exist — loader.TOMLLoader.LoadFrom already
// returns (nil, nil) for that case), and ED_-prefixed environment
// variables.
func Load(path string) (Settings, error) {
	s := Defaults()

	merged := map[string]any{}
	if path != "" {
		data, err := loader.NewTOMLLoader(path).Load()
		if err != nil {
			return s, err
		}
		merged = loader.DeepMerge(merged, data)
	}

	envData, err := loader.NewEnvLoader("ED_").Load()
	if err != nil {
		return s, err
	}
	merged = loader.DeepMerge(merged, envData)

	applyInto(&s, merged)
	return s, nil
}

func applyInto(s *Settings, merged map[string]any) {
	if v, ok := lookupInt(merged, "editor.scrollLines"); ok {
		s.ScrollLines = v
	}
	if v, ok := lookupInt(merged, "editor.reflowWidth"); ok {
		s.ReflowWidth = v
	}
	if v, ok := lookupInt(merged, "editor.recursionLimit"); ok {
		s.RecursionLimit = v
	}
	if v, ok := lookupBool(merged, "editor.printErrors"); ok {
		s.PrintErrors = v
	}
	if v, ok := lookupString(merged, "editor.defaultShell"); ok {
		s.DefaultShell = v
	}
	if v, ok := lookupString(merged, "editor.macroFile"); ok {
		s.MacroFile = v
	}
	if v, ok := lookupString(merged, "logging.level"); ok {
		s.LogLevel = v
	}
}

func lookupPath(data map[string]any, path string) (any, bool) {
	parts := strings.Split(path, ".")
	var cur any = data
	for _, p := range parts {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[p]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

func lookupInt(data map[string]any, path string) (int, bool) {
	v, ok := lookupPath(data, path)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int64:
		return int(n), true
	case int:
		return n, true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

func lookupBool(data map[string]any, path string) (bool, bool) {
	v, ok := lookupPath(data, path)
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

func lookupString(data map[string]any, path string) (string, bool) {
	v, ok := lookupPath(data, path)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
