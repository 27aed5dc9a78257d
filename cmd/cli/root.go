package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"go-pagerank/internal/config"
	"go-pagerank/internal/crawler"
	"go-pagerank/internal/ioformats"
	"go-pagerank/internal/parser"
	"go-pagerank/internal/pipeline"
	"go-pagerank/internal/rank"
	"go-pagerank/internal/report"
	"go-pagerank/pkg/logger"
)

var errSource = errors.New("specify exactly one of a corpus directory, --urls or --pages")

// NewRootCmd creates the pagerank command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pagerank [corpus-dir]",
		Short: "Estimate PageRank for a corpus of HTML pages",
		Long: `pagerank reads every .html file in a directory (or fetches a list of seed
URLs with --urls, or reads a prepared link list with --pages), builds the link graph between them and estimates each
page's PageRank twice: by sampling a random surfer and by iterating the
PageRank recurrence until it converges.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRank,
	}

	def := config.Default()
	f := cmd.Flags()
	f.String("config", "", "YAML configuration file")
	f.String("urls", "", "seed URL file (csv with 'url' column or ndjson) to crawl instead of a directory")
	f.String("pages", "", "link corpus file (ndjson {\"page\",\"links\"} lines or csv with page,links columns)")
	f.Float64("damping", def.Damping, "damping factor")
	f.Int("samples", def.Samples, "number of samples for the sampling estimator")
	f.Uint64("seed", def.Seed, "random seed for sampling (0 = time based)")
	f.Bool("reference", def.Reference, "also compute PageRank with gonum")
	f.String("format", def.Format, "output format: text, markdown or ndjson")
	f.Int("concurrency", def.Concurrency, "concurrent fetches when crawling --urls")
	f.Duration("timeout", def.Timeout, "per-request timeout when crawling --urls")
	f.StringP("output", "o", "", "output file (default stdout)")
	f.BoolP("verbose", "v", false, "enable debug logging")

	return cmd
}

func runRank(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	l := logger.NewWithWriter(cmd.ErrOrStderr(), verbose)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	raw, err := loadPages(cmd, args, cfg, l)
	if err != nil {
		return err
	}

	seed := pipeline.Seed(cfg)
	l.Debugf("sampling seed %d", seed)
	resp, err := pipeline.Run(raw, cfg, rank.NewRand(seed), l)
	if err != nil {
		return err
	}

	w, err := report.New(cfg.Format)
	if err != nil {
		return err
	}
	out, closeOut, err := openOutput(cmd)
	if err != nil {
		return err
	}
	defer closeOut()
	return w.Write(out, pipeline.Estimates(resp))
}

// loadPages reads the raw corpus from whichever single source was given.
func loadPages(cmd *cobra.Command, args []string, cfg config.Config, l *logger.Logger) (map[string][]string, error) {
	urls, _ := cmd.Flags().GetString("urls")
	pages, _ := cmd.Flags().GetString("pages")

	sources := len(args)
	for _, s := range []string{urls, pages} {
		if s != "" {
			sources++
		}
	}
	if sources != 1 {
		return nil, errSource
	}

	switch {
	case urls != "":
		return crawlSeeds(cmd.Context(), urls, cfg, l)
	case pages != "":
		return ioformats.ReadCorpus(pages)
	default:
		return crawler.LoadDir(args[0], parser.New())
	}
}

// loadConfig layers explicitly set flags over the config file over the
// defaults.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	f := cmd.Flags()
	cfg := config.Default()
	if path, _ := f.GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, fmt.Errorf("load config %s: %w", path, err)
		}
		cfg = loaded
	}
	if f.Changed("damping") {
		cfg.Damping, _ = f.GetFloat64("damping")
	}
	if f.Changed("samples") {
		cfg.Samples, _ = f.GetInt("samples")
	}
	if f.Changed("seed") {
		cfg.Seed, _ = f.GetUint64("seed")
	}
	if f.Changed("reference") {
		cfg.Reference, _ = f.GetBool("reference")
	}
	if f.Changed("format") {
		cfg.Format, _ = f.GetString("format")
	}
	if f.Changed("concurrency") {
		cfg.Concurrency, _ = f.GetInt("concurrency")
	}
	if f.Changed("timeout") {
		cfg.Timeout, _ = f.GetDuration("timeout")
	}
	return cfg, nil
}

func crawlSeeds(ctx context.Context, path string, cfg config.Config, l *logger.Logger) (map[string][]string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	seeds, err := ioformats.ReadURLs(path)
	if err != nil {
		return nil, fmt.Errorf("read seeds: %w", err)
	}
	l.Infof("crawling %d seed urls", len(seeds))
	client := crawler.NewHTTPClient(cfg.Timeout, 5*time.Second, cfg.MaxBodySize)
	return crawler.Crawl(ctx, client, parser.New(), seeds, cfg.Concurrency, l)
}

func openOutput(cmd *cobra.Command) (io.Writer, func(), error) {
	path, _ := cmd.Flags().GetString("output")
	if path == "" {
		return cmd.OutOrStdout(), func() {}, nil
	}
	f, err := os.Create(path) //nolint:gosec // output path is chosen by the user
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
