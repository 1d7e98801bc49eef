package adapters

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/rs/zerolog/log"

	"jsconfig-gen/internal/ports"
	"jsconfig-gen/internal/shared"
	"jsconfig-gen/internal/types"
)

type NpmListerAdapter struct {
	Binary string
	All    bool
}

func NewNpmListerAdapter(binary string, all bool) NpmListerAdapter {
	return NpmListerAdapter{Binary: binary, All: all}
}

func (a NpmListerAdapter) binary() string {
	if strings.TrimSpace(a.Binary) == "" {
		return types.DefaultNpmBinary
	}
	return a.Binary
}

// Args returns the arguments for a JSON, long-format dependency listing.
func (a NpmListerAdapter) Args() []string {
	args := []string{"ls", "--json", "--long"}
	if a.All {
		args = append(args, "--all")
	}
	return args
}

func (a NpmListerAdapter) List(ctx context.Context, projectDir string) types.ListingResult {
	binary := a.binary()
	args := a.Args()
	command := strings.Join(append([]string{binary}, args...), " ")

	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Dir = projectDir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.Ctx(ctx).Debug().Str("command", command).Str("dir", projectDir).Msg("listing dependencies")
	err := cmd.Run()
	result := types.ListingResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		result.Failure = &types.FailureInfo{
			Command:  command,
			ExitCode: exitCode,
			Err:      shared.CommandError(stderr.Bytes(), err),
		}
	}
	return result
}

var _ ports.DependencyListerPort = NpmListerAdapter{}
