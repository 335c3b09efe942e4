package parsers

import (
	"context"
	"sync"

	"github.com/reusee/typy/syncs"
)

type Source struct {
	Name string
	Text string
}

// ParseAll parses sources with at most workers parses in flight. Results
// are in the order of sources. On cancellation the sources not yet started
// are left as zero Results.
func ParseAll(ctx context.Context, sources []Source, workers int, options ...Option) ([]Result, error) {
	results := make([]Result, len(sources))
	sem := syncs.NewSemaphore(workers)
	var wg sync.WaitGroup
	defer wg.Wait()
	for i, source := range sources {
		if err := sem.Acquire(ctx); err != nil {
			return results, err
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release()
			results[i] = Parse(source.Name, source.Text, options...)
		}()
	}
	return results, nil
}
