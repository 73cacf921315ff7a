package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"

	cleantext "github.com/Mjeezuz/clean-text-extractor"
	"github.com/Mjeezuz/clean-text-extractor/fs"
	ctgoquery "github.com/Mjeezuz/clean-text-extractor/goquery"
	cthttp "github.com/Mjeezuz/clean-text-extractor/http"
	ctslog "github.com/Mjeezuz/clean-text-extractor/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URL     string `arg:"" required:"" help:"Web page URL to fetch"`
	Output  string `short:"o" placeholder:"FILE" help:"Write result to FILE instead of stdout"`
	Timeout int    `short:"t" default:"20" help:"HTTP timeout in seconds"`
	Verbose bool   `short:"v" help:"Log fetch and extraction details to stderr"`
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("cleantext"),
		kong.Description("Extract visible text from a web page with basic layout annotations"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	// Wire dependencies
	var fetcher cleantext.Fetcher = cthttp.NewFetcher(
		cthttp.WithTimeout(time.Duration(cli.Timeout) * time.Second),
	)
	defer fetcher.Close()

	var extractor cleantext.Extractor = ctgoquery.NewExtractor()

	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		fetcher = ctslog.NewLoggingFetcher(fetcher, logger)
		extractor = ctslog.NewLoggingExtractor(extractor, logger)
	}

	svc := &cleantext.Service{Fetcher: fetcher, Extractor: extractor}

	text, err := svc.Text(ctx, cli.URL)
	if err != nil {
		return err
	}

	if cli.Output != "" {
		dest, err := fs.NewWriter(cli.Output).Write(ctx, text)
		if err != nil {
			return err
		}
		fmt.Fprintf(stderr, "Saved to %s\n", dest)
		return nil
	}

	fmt.Fprintln(stdout, text)
	return nil
}
