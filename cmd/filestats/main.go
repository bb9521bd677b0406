package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss/v2"

	"filestats/internal/analyzer"
	"filestats/internal/ranking"
	"filestats/internal/report"
	"filestats/pkg/models"
)

const (
	exitOK      = 0
	exitUsage   = 1
	exitRuntime = 2
)

var (
	errUsage = errors.New("invalid arguments")
	errHelp  = errors.New("help requested")
)

var titleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("205"))

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, time.Now))
}

func run(args []string, stdout, stderr io.Writer, now func() time.Time) int {
	cfg, err := parseArgs(args)
	if errors.Is(err, errHelp) {
		printUsage(stdout)
		return exitOK
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		printUsage(stderr)
		return exitUsage
	}

	res, err := analyzer.Analyze(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitRuntime
	}
	top := ranking.TopK(res.Freq, cfg.TopN)

	if err := report.WriteText(stdout, cfg, res, top); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitRuntime
	}

	if cfg.JSONPath == "" {
		return exitOK
	}

	// console report is already out at this point, export failure still exits 2
	doc := report.NewDocument(cfg, res, top, now())
	if err := report.ExportJSON(cfg.JSONPath, doc); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitRuntime
	}
	fmt.Fprintf(stdout, "\nJSON written to: %s\n", cfg.JSONPath)
	return exitOK
}

func isHelp(arg string) bool {
	return arg == "-h" || arg == "--help"
}

// parseArgs expects the input path first, then flags in any order.
// Only the exact spellings below are accepted.
func parseArgs(args []string) (models.AnalysisConfig, error) {
	cfg := models.AnalysisConfig{TopN: models.DefaultTopN}

	for _, a := range args {
		if isHelp(a) {
			return cfg, errHelp
		}
	}
	if len(args) == 0 {
		return cfg, fmt.Errorf("%w: missing input path", errUsage)
	}
	switch args[0] {
	case "--top", "--json", "--case-sensitive":
		return cfg, fmt.Errorf("%w: missing input path before %s", errUsage, args[0])
	}
	cfg.InputPath = args[0]

	for i := 1; i < len(args); i++ {
		a := args[i]
		switch a {
		case "--top":
			if i+1 >= len(args) {
				return cfg, fmt.Errorf("%w: --top requires a value", errUsage)
			}
			i++
			n, err := strconv.Atoi(args[i])
			if err != nil || n < 0 {
				return cfg, fmt.Errorf("%w: --top N must be a non-negative integer, got %q", errUsage, args[i])
			}
			cfg.TopN = n
		case "--json":
			if i+1 >= len(args) {
				return cfg, fmt.Errorf("%w: --json requires a path", errUsage)
			}
			i++
			cfg.JSONPath = args[i]
		case "--case-sensitive":
			cfg.CaseSensitive = true
		default:
			return cfg, fmt.Errorf("%w: Unknown argument: %s", errUsage, a)
		}
	}
	return cfg, nil
}

func printUsage(w io.Writer) {
	lipgloss.Fprint(w, titleStyle.Render("File Stats - Text file analysis")+"\n\n")
	fmt.Fprint(w, "Usage:\n")
	fmt.Fprint(w, "  filestats <input.txt> [--top N] [--json out.json] [--case-sensitive] [--help]\n\n")
	fmt.Fprint(w, "Options:\n")
	fmt.Fprintf(w, "  --top N            Show top N most frequent words (default: %d)\n", models.DefaultTopN)
	fmt.Fprint(w, "  --json out.json    Export results to JSON file\n")
	fmt.Fprint(w, "  --case-sensitive   Word frequency is case-sensitive (default: false)\n")
	fmt.Fprint(w, "  --help, -h         Show this help and exit\n")
}
