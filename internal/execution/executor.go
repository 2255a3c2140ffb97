package execution

import (
	"context"

	"posixtest/internal/domain"
)

// Executor runs the suite's test sets and collects their results
type Executor interface {
	RunAll(ctx context.Context, results domain.ResultSet) (domain.ResultSet, error)
}
