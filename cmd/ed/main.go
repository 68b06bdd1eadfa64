// Package main is the entry point for the ed line editor.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gosed/ed/internal/config"
	"github.com/gosed/ed/internal/dispatcher"
	"github.com/gosed/ed/internal/edio"
	"github.com/gosed/ed/internal/edio/localio"
	"github.com/gosed/ed/internal/editor"
	"github.com/gosed/ed/internal/engine/line"
	"github.com/gosed/ed/internal/macro"
	"github.com/gosed/ed/internal/ui"
	"github.com/gosed/ed/internal/ui/scripted"
	"github.com/gosed/ed/internal/ui/term"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

type options struct {
	configPath string
	scriptPath string
	classic    bool
	logLevel   string
	file       string
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.scriptPath, "script", "", "Run a scripted command file instead of reading the terminal")
	flag.BoolVar(&opts.classic, "classic", false, "Disable the modern extensions (A, I, C, G, V, macros)")
	flag.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "ed - a line-oriented text editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: ed [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("ed %s (%s)\n", version, commit)
		os.Exit(0)
	}

	if args := flag.Args(); len(args) > 0 {
		opts.file = args[0]
	}

	return opts
}

func run() int {
	opts := parseFlags()
	setupLogging(opts.logLevel)

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ed: failed to load config: %v\n", err)
		return 1
	}

	ed := editor.New(cfg.RecursionLimit)
	ed.Classic = opts.classic
	ed.PrintErrors = cfg.PrintErrors
	ed.ScrollDefault = cfg.ScrollLines
	ed.ReflowDefault = cfg.ReflowWidth
	ed.PrevShellCommand = cfg.DefaultShell

	if rows, ok := term.DetectScrollLines(); ok && cfg.ScrollLines == config.Defaults().ScrollLines {
		ed.ScrollDefault = rows
	}

	io := localio.New()

	if opts.file != "" {
		if err := loadFile(ed, io, opts.file); err != nil {
			fmt.Fprintf(os.Stderr, "ed: %v\n", err)
			return 1
		}
	}

	if cfg.MacroFile != "" {
		if err := loadMacros(ed, cfg.MacroFile); err != nil {
			fmt.Fprintf(os.Stderr, "ed: failed to load macros: %v\n", err)
		}
	}

	u := buildUI(opts)

	quit := mainLoop(ed, u, io)

	if cfg.MacroFile != "" {
		if err := saveMacros(ed, cfg.MacroFile); err != nil {
			fmt.Fprintf(os.Stderr, "ed: failed to save macros: %v\n", err)
		}
	}

	if !quit {
		return 1
	}
	return 0
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(h))
}

// buildUI picks the interactive terminal UI, or (with -script) a
// scripted UI that replays the named file's lines and forwards its
// prints to the terminal so the run is still visible.
func buildUI(opts options) ui.UI {
	t := term.NewStdio()
	if opts.scriptPath == "" {
		return t
	}
	data, err := os.ReadFile(opts.scriptPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ed: failed to read script: %v\n", err)
		return scripted.New([]string{"Q"})
	}
	lines := strings.Split(string(data), "\n")
	s := scripted.New(lines)
	s.Forward = t
	return s
}

// mainLoop runs one command line at a time until the dispatcher
// reports quit, or the UI runs out of input. Errors are reported
// through the UI: their full text if editor.Editor.PrintErrors is set,
// otherwise the classic bare "?".
func mainLoop(ed *editor.Editor, u ui.UI, io edio.IO) bool {
	for {
		cmdLine, err := u.GetCommand("")
		if err != nil {
			return true
		}
		quit, err := dispatcher.Run(ed, u, io, cmdLine)
		if err != nil {
			reportError(u, ed, err)
			if quit {
				return true
			}
			continue
		}
		if quit {
			return true
		}
	}
}

func reportError(u ui.UI, ed *editor.Editor, err error) {
	if ed.PrintErrors {
		u.PrintMessage(err.Error())
		return
	}
	u.PrintMessage("?")
}

func loadFile(ed *editor.Editor, io edio.IO, path string) error {
	text, err := io.ReadFile(path, false)
	if err != nil {
		return err
	}
	ed.File = path
	if text == "" {
		ed.History.SetSaved()
		return nil
	}
	raw := strings.SplitAfter(text, "\n")
	if raw[len(raw)-1] == "" {
		raw = raw[:len(raw)-1]
	} else {
		raw[len(raw)-1] += "\n"
	}
	lines := make([]line.Line, 0, len(raw))
	for _, t := range raw {
		l, err := line.New(t)
		if err != nil {
			return err
		}
		lines = append(lines, l)
	}
	buf := ed.History.Current()
	if err := buf.Insert(0, lines); err != nil {
		return err
	}
	if n := buf.Len(); n > 0 {
		ed.Selection.A, ed.Selection.B = n, n
	}
	ed.History.SetSaved()
	return nil
}

func loadMacros(ed *editor.Editor, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	store, err := macro.Unmarshal(data)
	if err != nil {
		return err
	}
	ed.Macros = store
	return nil
}

func saveMacros(ed *editor.Editor, path string) error {
	data, err := macro.Marshal(ed.Macros)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
