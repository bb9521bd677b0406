package report

import (
	"fmt"
	"io"

	"filestats/pkg/models"
)

func caseLabel(caseSensitive bool) string {
	if caseSensitive {
		return "case-sensitive"
	}
	return "case-insensitive"
}

// WriteText prints the console report.
func WriteText(w io.Writer, cfg models.AnalysisConfig, res *models.AnalysisResult, top []models.RankedWord) error {
	if _, err := fmt.Fprintf(w, "File:   %s\nLines:  %d\nWords:  %d\nBytes:  %d\n",
		cfg.InputPath, res.Lines, res.Words, res.Bytes); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Top %d words (%s):\n", len(top), caseLabel(cfg.CaseSensitive)); err != nil {
		return err
	}
	for _, rw := range top {
		if _, err := fmt.Fprintf(w, "  %8d  %s\n", rw.Count, rw.Word); err != nil {
			return err
		}
	}
	return nil
}
