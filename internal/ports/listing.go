package ports

import (
	"context"

	"jsconfig-gen/internal/types"
)

// DependencyListerPort runs the package manager's dependency listing. It
// never returns an error: failures are carried in the result.
type DependencyListerPort interface {
	List(ctx context.Context, projectDir string) types.ListingResult
}
