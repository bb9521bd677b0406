package report

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"filestats/pkg/models"
)

var (
	ErrCreateOutput = errors.New("cannot write JSON file")
	ErrWriteOutput  = errors.New("failed writing JSON file")
)

// TimestampLayout is ISO-8601 UTC with second precision.
const TimestampLayout = "2006-01-02T15:04:05Z"

type TopWord struct {
	Word  string `json:"word"`
	Count uint64 `json:"count"`
}

// Document is the exported JSON report. Field order is the output order.
type Document struct {
	Tool          string    `json:"tool"`
	Timestamp     string    `json:"timestamp"`
	InputPath     string    `json:"input_path"`
	Lines         uint64    `json:"lines"`
	Words         uint64    `json:"words"`
	Bytes         uint64    `json:"bytes"`
	CaseSensitive bool      `json:"case_sensitive"`
	TopWords      []TopWord `json:"top_words"`
}

func NewDocument(cfg models.AnalysisConfig, res *models.AnalysisResult, top []models.RankedWord, now time.Time) Document {
	words := make([]TopWord, 0, len(top))
	for _, rw := range top {
		words = append(words, TopWord{Word: rw.Word, Count: rw.Count})
	}

	return Document{
		Tool:          models.ToolName,
		Timestamp:     now.UTC().Format(TimestampLayout),
		InputPath:     cfg.InputPath,
		Lines:         res.Lines,
		Words:         res.Words,
		Bytes:         res.Bytes,
		CaseSensitive: cfg.CaseSensitive,
		TopWords:      words,
	}
}

// WriteJSON encodes doc to w with two-space indentation.
func WriteJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// ExportJSON writes doc to the file at path, replacing it if it exists.
func ExportJSON(path string, doc Document) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrCreateOutput, path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %s: %w", ErrWriteOutput, path, cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := WriteJSON(bw, doc); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteOutput, path, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteOutput, path, err)
	}
	return nil
}
