package ranking

import (
	"container/heap"
	"slices"

	"filestats/pkg/models"
)

// Less reports whether a ranks ahead of b: higher count first,
// then byte-wise ascending word.
func Less(a, b models.RankedWord) bool {
	if a.Count != b.Count {
		return a.Count > b.Count
	}
	return a.Word < b.Word
}

func compare(a, b models.RankedWord) int {
	switch {
	case Less(a, b):
		return -1
	case Less(b, a):
		return 1
	}
	return 0
}

// worstFirst keeps the lowest ranked entry at the root so it can be evicted.
type worstFirst []models.RankedWord

func (h worstFirst) Len() int           { return len(h) }
func (h worstFirst) Less(i, j int) bool { return Less(h[j], h[i]) }
func (h worstFirst) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *worstFirst) Push(x any)        { *h = append(*h, x.(models.RankedWord)) }
func (h *worstFirst) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// TopK returns at most k entries of freq in rank order.
// The result is never nil.
func TopK(freq models.FrequencyTable, k int) []models.RankedWord {
	if k <= 0 || len(freq) == 0 {
		return []models.RankedWord{}
	}

	if k >= len(freq) {
		all := make([]models.RankedWord, 0, len(freq))
		for w, c := range freq {
			all = append(all, models.RankedWord{Word: w, Count: c})
		}
		slices.SortFunc(all, compare)
		return all
	}

	h := make(worstFirst, 0, k+1)
	for w, c := range freq {
		rw := models.RankedWord{Word: w, Count: c}
		if len(h) < k {
			heap.Push(&h, rw)
			continue
		}
		if Less(rw, h[0]) {
			h[0] = rw
			heap.Fix(&h, 0)
		}
	}

	out := []models.RankedWord(h)
	slices.SortFunc(out, compare)
	return out
}
