package queries

import (
	"context"

	"bluehaven/internal/pkg/errs"
	"bluehaven/internal/usecase/shared"
)

type ReviewSummary struct {
	Count         int
	AverageRating float64
	Reviews       []*ReviewView
}

type ReviewQueries interface {
	List(ctx context.Context) (*ReviewSummary, error)
}

type reviewQueriesImpl struct {
	store shared.ReviewStore
}

func NewReviewQueries(store shared.ReviewStore) ReviewQueries {
	return &reviewQueriesImpl{store: store}
}

func (q *reviewQueriesImpl) List(ctx context.Context) (*ReviewSummary, error) {
	rs, err := q.store.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	summary := &ReviewSummary{Count: len(rs), Reviews: make([]*ReviewView, len(rs))}
	total := 0
	for i, r := range rs {
		summary.Reviews[i] = NewReviewView(r)
		total += r.Rating().Value()
	}
	if len(rs) > 0 {
		summary.AverageRating = float64(total) / float64(len(rs))
	}
	return summary, nil
}
