package models

// ToolName identifies this program in exported documents.
const ToolName = "file-stats"

// DefaultTopN is the number of ranked words reported when --top is not given.
const DefaultTopN = 20

// AnalysisConfig is built once by the CLI and only read afterwards.
type AnalysisConfig struct {
	InputPath     string
	JSONPath      string // empty means no JSON export
	TopN          int
	CaseSensitive bool
}

// FrequencyTable maps a token to the number of times it occurred.
type FrequencyTable map[string]uint64

// AnalysisResult holds the aggregate counts of one scan over the input.
type AnalysisResult struct {
	Lines uint64
	Words uint64
	Bytes uint64
	Freq  FrequencyTable
}

// RankedWord is one entry of the top-K selection.
type RankedWord struct {
	Word  string
	Count uint64
}
