package tokenizer

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/temirov/project-print/internal/types"
)

// ErrNilCounter is returned when counting is requested without a Counter.
var ErrNilCounter = errors.New("nil tokenizer counter")

// CountEntries estimates the total token count of every buffered entry.
// Entries are counted concurrently with at most limit workers; a
// non-positive limit uses GOMAXPROCS. The first counting error cancels the
// remaining work.
func CountEntries(ctx context.Context, counter Counter, entries []types.ContentEntry, limit int) (int, error) {
	if counter == nil {
		return 0, ErrNilCounter
	}
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	counts := make([]int, len(entries))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(limit)

	for index := range entries {
		entry := entries[index]
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			tokens, err := counter.CountString(entry.Content)
			if err != nil {
				return fmt.Errorf("count tokens for %s: %w", entry.Path, err)
			}
			counts[index] = tokens
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return 0, err
	}

	total := 0
	for _, tokens := range counts {
		total += tokens
	}
	return total, nil
}
