// Command glint-edit is a headless walk through the text-editor demo:
// it restores the editor window's session (geometry plus recent files),
// opens the files given on the command line, and saves the session back
// on exit.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/glintlab/glint/internal/editor"
	"github.com/glintlab/glint/internal/infrastructure/config"
	"github.com/glintlab/glint/internal/infrastructure/logging"
	"github.com/glintlab/glint/internal/session"
	"github.com/glintlab/glint/internal/settings"
)

func main() {
	restoreDefaults := flag.Bool("restore-defaults", false, "clear saved settings and exit")
	backendName := flag.String("backend", "", "settings backend override: file, sqlite, memory")
	flag.Parse()

	cfg := config.LoadOrDefault()

	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
		OutputPaths: []string{"stderr"},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	backend, err := openBackend(cfg, *backendName)
	if err != nil {
		logger.Fatal("failed to open settings backend", zap.Error(err))
	}
	defer backend.Close()

	window := editor.NewWindow(cfg.Editor.MaxRecentFiles, logger)
	key := session.Key{
		Company: editor.CompanyName,
		Tool:    editor.ToolName,
		Version: editor.ToolVersion,
	}
	store := session.NewStore(window, key, backend, logger)

	if *restoreDefaults {
		if err := store.Restore(); err != nil {
			logger.Fatal("failed to restore defaults", zap.Error(err))
		}
		fmt.Println("settings cleared")
		return
	}

	if !store.ReadSettings() {
		logger.Warn("window state not restored; continuing with defaults")
	}

	for _, path := range flag.Args() {
		if err := window.OpenFile(path); err != nil {
			// Missing files warn and abort the single open, like the
			// editor's warning dialog.
			if errors.Is(err, editor.ErrFileNotFound) {
				fmt.Fprintf(os.Stderr, "Could not open file. File path does not exist: %s\n", path)
				continue
			}
			fmt.Fprintf(os.Stderr, "Could not open file: %v\n", err)
		}
	}

	printStatus(window)

	if !store.Save() {
		logger.Warn("session saved without window state")
	}
}

func openBackend(cfg *config.Config, override string) (settings.Backend, error) {
	name := cfg.Settings.Backend
	if override != "" {
		name = override
	}

	switch name {
	case "memory":
		return settings.NewMemory(), nil
	case "file":
		dir, err := cfg.SettingsDir()
		if err != nil {
			return nil, err
		}
		return settings.OpenFile(dir, editor.CompanyName, editor.ToolName)
	case "sqlite":
		dir, err := cfg.SettingsDir()
		if err != nil {
			return nil, err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
		return settings.OpenSqlite(filepath.Join(dir, "settings.db"), editor.CompanyName, editor.ToolName)
	default:
		return nil, fmt.Errorf("unknown settings backend: %s", name)
	}
}

func printStatus(w *editor.Window) {
	g := w.Geometry()
	fmt.Printf("%s %s\n", editor.ToolName, editor.ToolVersion)
	fmt.Printf("geometry: %dx%d at (%d,%d)\n",
		g.Size.Width, g.Size.Height, g.Position.X, g.Position.Y)

	if path := w.Document().Path(); path != "" {
		fmt.Printf("open: %s (%d bytes)\n", path, len(w.Document().Text()))
	}

	entries := w.Recent().Entries()
	if len(entries) == 0 {
		fmt.Println("recent: (none)")
		return
	}
	fmt.Println("recent:")
	for _, e := range entries {
		fmt.Printf("  %s  (%s)\n", e.Label, e.Path)
	}
}
