package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/waveview/internal/termcanvas"
	"github.com/olivier-w/waveview/internal/ui"
	"github.com/olivier-w/waveview/internal/waveview"
	"github.com/olivier-w/waveview/internal/window"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

var (
	configPath = ""
	windowed   = false
	logPath    = ""
	verbose    = false
	render     = ""
	canvas     = "blocks"
	fps        = 30
	height     = 0
)

func init() {
	pflag.StringVarP(&configPath, "config", "c", configPath, "wave configuration file (TOML)")
	pflag.BoolVarP(&windowed, "window", "w", windowed, "open a desktop window instead of the terminal")
	pflag.StringVar(&logPath, "log", logPath, "write logs to this file")
	pflag.BoolVarP(&verbose, "verbose", "v", verbose, "verbose output")
	pflag.StringVarP(&render, "render", "r", render, "render mode: paint or scale")
	pflag.StringVar(&canvas, "canvas", canvas, "terminal canvas: blocks or braille")
	pflag.IntVar(&fps, "fps", fps, "terminal frame rate")
	pflag.IntVar(&height, "height", height, "widget height (terminal rows, or dp in a window)")
}

func main() {
	pflag.Parse()

	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}

// newLogger logs to the --log file. The terminal belongs to the TUI, so
// without a file logs are dropped.
func newLogger() (*slog.Logger, func(), error) {
	logLevel := slog.LevelWarn
	if verbose {
		logLevel = slog.LevelDebug
	}

	var w io.Writer = io.Discard
	closeLog := func() {}
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to open log file")
		}
		w = f
		closeLog = func() { f.Close() }
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: logLevel})), closeLog, nil
}

func run(logger *slog.Logger) error {
	file, err := readConfig()
	if err != nil {
		return err
	}

	attrs := file.Wave
	if render != "" {
		attrs.Render = render
	}

	if windowed {
		return window.Run(window.Config{
			Attributes: window.Demo.Merge(attrs),
			Theme:      file.Theme,
			HeightDp:   height,
			Logger:     logger,
		})
	}

	var braille bool
	switch canvas {
	case "blocks":
	case "braille":
		braille = true
	default:
		return errors.Errorf("unknown canvas %q (want blocks or braille)", canvas)
	}

	model := ui.New(ui.Config{
		Attributes: ui.Demo.Merge(attrs),
		Theme:      file.Theme,
		Rows:       height,
		FPS:        fps,
		Braille:    braille,
		Profile:    termcanvas.DetectProfile(),
		Logger:     logger,
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithReportFocus())
	if _, err := program.Run(); err != nil {
		return errors.Wrap(err, "terminal host failed")
	}
	return nil
}

func readConfig() (*waveview.File, error) {
	if configPath == "" {
		return &waveview.File{}, nil
	}
	return waveview.LoadFile(configPath)
}
