package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/ngexplorer"
	"github.com/fwojciec/ngexplorer/compodoc"
	"github.com/fwojciec/ngexplorer/doublestar"
	"github.com/fwojciec/ngexplorer/goquery"
	"github.com/fwojciec/ngexplorer/htmltomarkdown"
	"github.com/fwojciec/ngexplorer/lipgloss"
	"github.com/fwojciec/ngexplorer/search"
	ngslog "github.com/fwojciec/ngexplorer/slog"
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
type Main struct {
	// Documentation path. Set before calling Run(); the --doc-path flag
	// overrides it.
	DocPath string

	// Loader owns the cached collection for this invocation.
	Loader ngexplorer.Loader

	// Searcher for end-to-end testing.
	Searcher ngexplorer.Searcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DocPath: defaultDocPath(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("ng-explorer"),
		kong.Description("Search and explore Angular components, services, directives, etc."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
		kong.Vars{"default_limit": strconv.Itoa(ngexplorer.DefaultLimit)},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) > 0 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	docPath := m.DocPath
	if cli.DocPath != "" {
		docPath = cli.DocPath
	}

	var logger *slog.Logger
	if cli.Debug {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	// Load documentation
	if m.Loader == nil {
		m.Loader = compodoc.NewLoader(docPath)
	}
	loader := m.Loader
	if logger != nil {
		loader = ngslog.NewLoggingLoader(loader, logger)
	}

	coll, err := loader.Load(ctx)
	if err != nil {
		printLoadHint(stderr, err)
		return err
	}

	// Wire query services into dependencies
	paths := doublestar.NewMatcher()
	m.Searcher = search.NewEngine(coll, paths)
	if logger != nil {
		m.Searcher = ngslog.NewLoggingSearcher(m.Searcher, logger)
	}

	formatter := lipgloss.NewFormatter(stdout, nil)
	formatter.Text = goquery.NewTextExtractor()
	formatter.Converter = htmltomarkdown.NewConverter()

	deps.Searcher = m.Searcher
	deps.Paths = paths
	deps.Formatter = formatter

	return kongCtx.Run(deps)
}

// printLoadHint explains how to recover from a failed document load.
func printLoadHint(w io.Writer, err error) {
	switch ngexplorer.ErrorCode(err) {
	case ngexplorer.ENOTFOUND:
		fmt.Fprintln(w, "Hint: Run Compodoc to generate the documentation.json file:")
		fmt.Fprintln(w, "  npx compodoc -p tsconfig.json -e json -d . --disablePrivate --disableProtected")
		fmt.Fprintf(w, "Hint: Set %s or pass --doc-path to use a different file\n", docPathEnv)
	case ngexplorer.EINVALID:
		fmt.Fprintln(w, "Hint: Regenerate documentation.json with Compodoc")
	}
}

// docPathEnv names the environment variable holding the default document path.
const docPathEnv = "NG_EXPLORER_DOC"

func defaultDocPath() string {
	if path := os.Getenv(docPathEnv); path != "" {
		return path
	}
	return compodoc.DefaultPath
}
