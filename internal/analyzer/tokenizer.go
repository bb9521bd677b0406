package analyzer

import "filestats/pkg/models"

// a word char is an ASCII letter or digit, every other byte splits tokens
func isWordChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// Tokenizer splits lines into tokens and counts them.
// Words and the sum of Freq always move together.
type Tokenizer struct {
	CaseSensitive bool

	Lines uint64
	Words uint64
	Freq  models.FrequencyTable

	buf []byte
}

func NewTokenizer(caseSensitive bool) *Tokenizer {
	return &Tokenizer{
		CaseSensitive: caseSensitive,
		Freq:          make(models.FrequencyTable),
		buf:           make([]byte, 0, 32),
	}
}

// ScanLine handles one line without its terminator.
// A token never continues onto the next line.
func (t *Tokenizer) ScanLine(line []byte) {
	t.Lines++

	for _, c := range line {
		if !isWordChar(c) {
			t.flush()
			continue
		}
		if !t.CaseSensitive {
			c = toLower(c)
		}
		t.buf = append(t.buf, c)
	}
	t.flush()
}

func (t *Tokenizer) flush() {
	if len(t.buf) == 0 {
		return
	}
	t.Words++
	t.Freq[string(t.buf)]++
	t.buf = t.buf[:0]
}
