package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"git.home.luguber.info/inful/prosal/internal/apperr"
	"git.home.luguber.info/inful/prosal/internal/config"
)

var CLI struct {
	Config  string `short:"c" help:"Configuration file path" default:"prosal.yaml"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Humanize struct {
		Input          string   `arg:"" optional:"" help:"Input file (defaults to stdin)"`
		Lang           string   `short:"l" help:"Language code or auto" default:"auto"`
		Profile        string   `short:"p" help:"Rewrite profile (web, chat, formal, academic)" default:"web"`
		Intensity      int      `short:"i" help:"Edit intensity 0-100" default:"60"`
		Seed           int64    `short:"s" help:"RNG seed for reproducible output" default:"42"`
		Keep           []string `short:"k" help:"Keywords that must survive unchanged"`
		Brand          []string `help:"Brand terms that must survive unchanged"`
		MaxChangeRatio float64  `help:"Cap on normalized change ratio (0-1, negative for default)" default:"-1"`
		Markdown       bool     `short:"m" help:"Protect markdown code and links from rewriting"`
		JSON           bool     `short:"j" help:"Emit the full change report as JSON"`
	} `cmd:"" help:"Rewrite text to read more naturally"`

	Detect struct {
		Input string `arg:"" optional:"" help:"Input file (defaults to stdin)"`
		Lang  string `short:"l" help:"Language code or auto" default:"auto"`
	} `cmd:"" help:"Score text for signals of machine authorship"`

	Serve struct {
		Addr string `short:"a" help:"Listen address (overrides config)"`
	} `cmd:"" help:"Serve the HTTP API"`

	Packs struct{} `cmd:"" help:"List available language packs"`
}

func main() {
	// Optional .env for local development; absence is not an error.
	_ = godotenv.Load()

	kctx := kong.Parse(&CLI)

	cfg, err := config.Load(CLI.Config)
	adapter := apperr.NewCLIAdapter(CLI.Verbose, nil)
	if err != nil {
		slog.Error(adapter.FormatError(err))
		os.Exit(adapter.ExitCodeFor(err))
	}

	setupLogging(cfg)
	adapter = apperr.NewCLIAdapter(CLI.Verbose, slog.Default())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch kctx.Command() {
	case "humanize", "humanize <input>":
		err = runHumanize(cfg)
	case "detect", "detect <input>":
		err = runDetect(cfg)
	case "serve":
		err = runServe(ctx, cfg)
	case "packs":
		err = runPacks()
	}
	if err != nil {
		slog.Error(adapter.FormatError(err))
		os.Exit(adapter.ExitCodeFor(err))
	}
}

func setupLogging(cfg *config.Config) {
	level := config.NormalizeLogLevel(cfg.Logging.Level).SlogLevel()
	if CLI.Verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if config.NormalizeLogFormat(cfg.Logging.Format) == config.LogFormatJSON {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}
