// Command posterdemo renders a poster from a settings file.
//
// Usage:
//
//	posterdemo -config poster.toml -output poster.png
//	posterdemo -config poster.yaml -format jpeg -quality 85 -watch
//
// Defaults for -output, -format, -quality and the log level come from
// POSTER_OUTPUT, POSTER_FORMAT, POSTER_QUALITY and POSTER_LOG_LEVEL.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gogpu/poster"
	"github.com/gogpu/poster/config"
	"github.com/gogpu/poster/provider"
)

// options are the resolved command-line settings.
type options struct {
	config  string
	output  string
	format  string
	quality int
	watch   bool
	level   slog.Level
}

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "posterdemo:", err)
		os.Exit(1)
	}
}

func run(args []string, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: opts.level}))
	poster.SetLogger(logger)
	defer poster.SetLogger(nil)

	if !opts.watch {
		_, err := renderOnce(opts, logger)
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watch(ctx, opts, logger)
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	env, err := config.LoadEnv()
	if err != nil {
		return options{}, err
	}
	level, err := env.Level()
	if err != nil {
		return options{}, err
	}

	fs := flag.NewFlagSet("posterdemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		cfg     = fs.String("config", "", "settings file (.toml, .yaml)")
		output  = fs.String("output", env.Output, "output file")
		format  = fs.String("format", env.Format, "output format: png or jpeg (default from extension)")
		quality = fs.Int("quality", env.Quality, "JPEG quality 1-100")
		watchFS = fs.Bool("watch", false, "re-render when the settings or images change")
		verbose = fs.Bool("v", false, "debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if *cfg == "" {
		fs.Usage()
		return options{}, errors.New("-config is required")
	}
	if *verbose {
		level = slog.LevelDebug
	}

	f, err := outputFormat(*format, *output)
	if err != nil {
		return options{}, err
	}
	return options{
		config:  *cfg,
		output:  *output,
		format:  f,
		quality: *quality,
		watch:   *watchFS,
		level:   level,
	}, nil
}

// outputFormat returns "png" or "jpeg". An empty format follows the
// output extension and defaults to png.
func outputFormat(format, output string) (string, error) {
	switch strings.ToLower(format) {
	case "png":
		return "png", nil
	case "jpeg", "jpg":
		return "jpeg", nil
	case "":
		switch strings.ToLower(filepath.Ext(output)) {
		case ".jpg", ".jpeg":
			return "jpeg", nil
		default:
			return "png", nil
		}
	}
	return "", fmt.Errorf("unknown output format %q", format)
}

// renderOnce loads the settings, renders and saves the poster. It returns
// the settings so the watcher knows which files to follow.
func renderOnce(opts options, logger *slog.Logger) (*config.Settings, error) {
	start := time.Now()

	settings, err := config.Load(opts.config)
	if err != nil {
		return nil, err
	}
	sources, err := settings.PaneSources()
	if err != nil {
		return settings, err
	}
	book, err := settings.FontBook()
	if err != nil {
		return settings, err
	}
	scene, err := settings.Scene(provider.LoadPanes(sources, logger))
	if err != nil {
		return settings, err
	}

	s, res, err := poster.Render(scene, poster.WithFontBook(book))
	if err != nil {
		return settings, err
	}
	switch opts.format {
	case "jpeg":
		err = s.SaveJPEG(opts.output, opts.quality)
	default:
		err = s.SavePNG(opts.output)
	}
	if err != nil {
		return settings, err
	}

	logger.Info("poster saved",
		"output", opts.output,
		"size", fmt.Sprintf("%dx%d", s.Width(), s.Height()),
		"panes", len(res.Viewports),
		"missing", len(res.Missing),
		"text", len(res.Text),
		"elapsed", time.Since(start).Round(time.Millisecond))
	return settings, nil
}
