package types

import "fmt"

// ListingResult is the captured outcome of one dependency-listing run.
type ListingResult struct {
	Stdout  string
	Stderr  string
	Failure *FailureInfo
}

// FailureInfo describes a listing subprocess that did not succeed.
// ExitCode is -1 when the process could not be started.
type FailureInfo struct {
	Command  string
	ExitCode int
	Err      error
}

func (f FailureInfo) String() string {
	if f.Err == nil {
		return fmt.Sprintf("%s exited with code %d", f.Command, f.ExitCode)
	}
	return fmt.Sprintf("%s exited with code %d: %v", f.Command, f.ExitCode, f.Err)
}

func (r ListingResult) Failed() bool {
	return r.Failure != nil
}
