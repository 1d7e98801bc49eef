package adapters

import (
	"context"
	"os"

	"jsconfig-gen/internal/ports"
	"jsconfig-gen/internal/types"
)

// ListingFileAdapter replays a dependency listing saved to disk, for
// projects where the package manager is not available.
type ListingFileAdapter struct {
	Path string
}

func NewListingFileAdapter(path string) ListingFileAdapter {
	return ListingFileAdapter{Path: path}
}

func (a ListingFileAdapter) List(_ context.Context, _ string) types.ListingResult {
	data, err := os.ReadFile(a.Path)
	if err != nil {
		return types.ListingResult{
			Stderr: err.Error(),
			Failure: &types.FailureInfo{
				Command:  "read " + a.Path,
				ExitCode: -1,
				Err:      err,
			},
		}
	}
	return types.ListingResult{Stdout: string(data)}
}

var _ ports.DependencyListerPort = ListingFileAdapter{}
