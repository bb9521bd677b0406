package analyzer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"filestats/pkg/models"
)

var (
	ErrOpenInput = errors.New("cannot open input file")
	ErrReadInput = errors.New("cannot read input file")
	ErrFileSize  = errors.New("cannot determine file size")
)

// 16 KiB, initial scanner buffer and fallback read size
const readChunk = 1 << 14

// Analyze scans cfg.InputPath once for lines, words and frequencies,
// then measures the byte size separately.
func Analyze(cfg models.AnalysisConfig) (*models.AnalysisResult, error) {
	file, err := os.Open(cfg.InputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrOpenInput, cfg.InputPath, err)
	}
	defer file.Close()

	tok := NewTokenizer(cfg.CaseSensitive)
	if err := Scan(file, tok); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadInput, cfg.InputPath, err)
	}

	size, err := FileSize(cfg.InputPath)
	if err != nil {
		return nil, err
	}

	return &models.AnalysisResult{
		Lines: tok.Lines,
		Words: tok.Words,
		Bytes: size,
		Freq:  tok.Freq,
	}, nil
}

// Scan feeds every line of r to tok.
func Scan(r io.Reader, tok *Tokenizer) error {
	scanner := bufio.NewScanner(r)
	// no upper bound on line length
	scanner.Buffer(make([]byte, 0, readChunk), math.MaxInt)

	for scanner.Scan() {
		tok.ScanLine(scanner.Bytes())
	}
	return scanner.Err()
}

// FileSize returns the on-disk size of path. If stat fails it counts
// the bytes it can actually read instead.
func FileSize(path string) (uint64, error) {
	info, err := os.Stat(path)
	if err == nil && info.Mode().IsRegular() {
		return uint64(info.Size()), nil
	}

	n, ferr := countBytes(path)
	if ferr != nil {
		if err == nil {
			err = ferr
		}
		return 0, fmt.Errorf("%w: %s: %w", ErrFileSize, path, err)
	}
	return n, nil
}

func countBytes(path string) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	var total uint64
	buf := make([]byte, readChunk)
	for {
		n, err := f.Read(buf)
		total += uint64(n)
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return 0, err
		}
	}
}
