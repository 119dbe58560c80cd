package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/JackWReid/ninja/internal/clipboard"
	"github.com/JackWReid/ninja/internal/config"
	"github.com/JackWReid/ninja/internal/editor"
	"github.com/JackWReid/ninja/internal/keybind"
)

var Version = "0.1.0"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "ninja: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) > 1 {
		return errors.New("usage: ninja [file]")
	}
	filename := ""
	if len(args) == 1 {
		filename = args[0]
	}

	logFile := setupLogging()
	if logFile != nil {
		defer logFile.Close()
	}
	log.Printf("ninja %s starting", Version)

	cfg := loadConfig()
	keys := keybind.Default()
	for _, err := range keys.Apply(keybind.Global, cfg.Keybindings.Global) {
		log.Printf("config: %v", err)
	}
	for _, err := range keys.Apply(keybind.Editor, cfg.Keybindings.Editor) {
		log.Printf("config: %v", err)
	}

	history := clipboard.NewHistory(clipboard.DefaultSink(os.Stdout, os.Getenv("TMUX") != ""))
	if text, ok := clipboard.ReadSystem(); ok {
		history.Seed(text)
	}

	app := editor.NewApp(filename, cfg, keys, history, nil)
	app.Version = Version
	return app.Run()
}

// setupLogging sends the log package to a file so nothing reaches the
// terminal while it is in raw mode.
func setupLogging() *os.File {
	path := os.Getenv("NINJA_LOG")
	if path == "" {
		dir, err := os.UserCacheDir()
		if err != nil {
			log.SetOutput(io.Discard)
			return nil
		}
		path = filepath.Join(dir, "ninja", "ninja.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	return f
}

// loadConfig reads the user's config, creating the default file on first
// run. Problems are logged and the defaults fill the gaps.
func loadConfig() config.Config {
	path, err := config.Path()
	if err != nil {
		log.Printf("config: %v", err)
		return config.Default()
	}
	created, err := config.WriteDefault(path)
	switch {
	case err != nil:
		log.Printf("config: write default %s: %v", path, err)
	case created:
		log.Printf("config: wrote defaults to %s", path)
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Printf("%v", err)
	}
	return cfg
}
