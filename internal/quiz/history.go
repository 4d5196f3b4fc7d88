package quiz

import "context"

// History is the append-only record of completed quizzes.
type History interface {
	// Append stores a finalized result.
	Append(ctx context.Context, result Result) error

	// ByLanguage returns results for one language, oldest first.
	ByLanguage(ctx context.Context, code string) ([]Result, error)

	// All returns every result, oldest first.
	All(ctx context.Context) ([]Result, error)
}

// MemoryHistory keeps results in memory. Used in tests and when running
// without a database.
type MemoryHistory struct {
	results []Result
}

// NewMemoryHistory creates an empty in-memory history.
func NewMemoryHistory() *MemoryHistory {
	return &MemoryHistory{}
}

func (h *MemoryHistory) Append(ctx context.Context, result Result) error {
	h.results = append(h.results, result)
	return nil
}

func (h *MemoryHistory) ByLanguage(ctx context.Context, code string) ([]Result, error) {
	var out []Result
	for _, r := range h.results {
		if r.Quiz.LanguageCode == code {
			out = append(out, r)
		}
	}
	return out, nil
}

func (h *MemoryHistory) All(ctx context.Context) ([]Result, error) {
	out := make([]Result, len(h.results))
	copy(out, h.results)
	return out, nil
}
