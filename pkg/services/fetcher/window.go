package fetcher

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Window is an ordered, gap-free series of records. Positions listed in Failed
// hold zero-valued placeholders for periods whose fetch failed.
type Window[T any] struct {
	Records []T
	Failed  []int
	Labels  []string
}

// Partial reports whether any record is a placeholder.
func (w Window[T]) Partial() bool {
	return len(w.Failed) > 0
}

// MissingPeriods returns the labels of the placeholder positions.
func (w Window[T]) MissingPeriods() []string {
	missing := make([]string, 0, len(w.Failed))
	for _, i := range w.Failed {
		missing = append(missing, w.Labels[i])
	}
	return missing
}

type slot[T any] struct {
	record T
	err    error
}

// fetchAll issues one request per period concurrently, bounded by limit, and
// waits for every request to settle. Each failure is replaced by zero(period)
// and reported to onFailure; the result always has len(periods) records.
func fetchAll[P, T any](
	ctx context.Context,
	limit int,
	periods []P,
	label func(P) string,
	fetch func(context.Context, P) (T, error),
	zero func(P) T,
	onFailure func(P, error),
) Window[T] {
	slots := make([]slot[T], len(periods))

	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, p := range periods {
		g.Go(func() error {
			record, err := fetch(ctx, p)
			slots[i] = slot[T]{record: record, err: err}
			return nil
		})
	}
	_ = g.Wait()

	w := Window[T]{
		Records: make([]T, len(periods)),
		Labels:  make([]string, len(periods)),
	}
	for i, p := range periods {
		w.Labels[i] = label(p)
		if slots[i].err != nil {
			onFailure(p, slots[i].err)
			w.Records[i] = zero(p)
			w.Failed = append(w.Failed, i)
			continue
		}
		w.Records[i] = slots[i].record
	}
	return w
}
