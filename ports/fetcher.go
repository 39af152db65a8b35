package ports

import (
	"context"

	"watex/domain/survey"
)

// DataFetcher loads a named survey dataset (e.g. "gbalo", "gbalo ves")
type DataFetcher interface {
	Fetch(ctx context.Context, tag string) (*survey.Table, error)
}
