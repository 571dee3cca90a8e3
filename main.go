package main

import (
	stderrors "errors" // Standard errors package
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/mcncl/jsontaxonomy/internal/analyzer"
	"github.com/mcncl/jsontaxonomy/internal/classifier"
	"github.com/mcncl/jsontaxonomy/internal/config"
	"github.com/mcncl/jsontaxonomy/internal/errors" // Custom errors package
	"github.com/mcncl/jsontaxonomy/internal/formatter"
	"github.com/mcncl/jsontaxonomy/internal/parser"
)

// CLI defines the command-line interface
var CLI struct {
	Document string           `arg:"" help:"Path to the JSON document (.gz, .zst, .lz4 and .s2 are decompressed)." type:"path"`
	Format   string           `help:"Output format: text, json, yaml or markdown." short:"f"`
	Analysis bool             `help:"Include the full analysis in the output." short:"a"`
	Config   string           `help:"Path to a YAML configuration file." short:"c" type:"path"`
	Debug    bool             `help:"Enable debug logging." short:"d"`
	Version  kong.VersionFlag `help:"Show version information." short:"v"`
}

// Context holds the runtime context
type Context struct {
	Config *config.Config
	Logger *slog.Logger
	Stdout io.Writer
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	cli := kong.Must(&CLI,
		kong.Name("jsontaxonomy"),
		kong.Description("Classify a JSON document by size, content type, redundancy and nesting"),
		kong.Vars{"version": fmt.Sprintf("jsontaxonomy version %s", Version)},
	)

	// Usage errors exit with status 1 like every other failure
	if _, err := cli.Parse(os.Args[1:]); err != nil {
		var parseErr *kong.ParseError
		if stderrors.As(err, &parseErr) && parseErr.Context != nil {
			_ = parseErr.Context.PrintUsage(true)
		}
		cli.Errorf("%s", err)
		os.Exit(1)
	}

	ctx, err := newContext()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(1)
	}

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(1)
	}
}

// newContext resolves the configuration and logger from the parsed flags
func newContext() (*Context, error) {
	configPath := CLI.Config
	if configPath == "" {
		configPath = config.FindConfigFile()
	}

	cfg, err := config.LoadConfigWithCLI(configPath, config.Overrides{
		Format:          CLI.Format,
		IncludeAnalysis: CLI.Analysis,
		Debug:           CLI.Debug,
	})
	if err != nil {
		if configPath == "" {
			return nil, errors.NewConfigError("invalid options", err)
		}
		return nil, errors.NewConfigError(fmt.Sprintf("failed to load configuration '%s'", configPath), err)
	}

	logger := setupLogger(cfg.Dev.Debug)
	if configPath != "" {
		logger.Debug("loaded configuration", "path", configPath, "format", cfg.Output.Format)
	}

	return &Context{Config: cfg, Logger: logger, Stdout: os.Stdout}, nil
}

// setupLogger writes warnings to stderr, or everything when debugging
func setupLogger(debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}

// run executes the main program logic
func run(ctx *Context) error {
	// 1. Parse the JSON document
	ctx.Logger.Debug("parsing document", "path", CLI.Document, "compression", parser.DetectCompression(CLI.Document))
	value, err := parser.ParseFile(CLI.Document)
	if err != nil {
		return err
	}

	// 2. Analyze it
	analysis := analyzer.Analyze(value)
	ctx.Logger.Debug("analyzed document",
		"size", analysis.Size,
		"count", analysis.Count,
		"height", analysis.Height,
		"duplicates", analysis.Duplicates(),
	)

	// 3. Classify the analysis
	taxonomy := classifier.Classify(analysis)
	ctx.Logger.Debug("classified document", "qualifiers", []string(taxonomy))

	// 4. Output the result
	report := formatter.Report{
		Source:   CLI.Document,
		Taxonomy: taxonomy,
		Analysis: analysis,
	}
	if err := formatter.NewFormatter(ctx.Config).Write(ctx.Stdout, report); err != nil {
		return errors.NewOutputError("failed to write report", err)
	}
	return nil
}
