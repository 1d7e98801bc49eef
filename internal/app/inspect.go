package app

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"jsconfig-gen/internal/core"
	"jsconfig-gen/internal/shared"
	"jsconfig-gen/internal/types"
)

// Inspect reports what Generate would write without touching the output.
func (s Service) Inspect(ctx context.Context, req InspectRequest) (InspectResult, error) {
	req.Namespace = strings.TrimSpace(req.Namespace)
	req.TemplatePath = shared.FirstNonEmpty(req.TemplatePath, types.DefaultTemplatePath)
	req.ProjectDir = shared.FirstNonEmpty(req.ProjectDir, ".")
	if err := validateRequest(req); err != nil {
		return InspectResult{}, err
	}

	listing := s.Lister.List(ctx, req.ProjectDir)
	if listing.Failure != nil {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("dependency listing failed: " + listing.Failure.String()).
			WithCause(listing.Failure.Err)
	}
	built, err := s.synthesize(ctx, listing.Stdout, req.Namespace, req.TemplatePath)
	if err != nil {
		return InspectResult{}, err
	}
	tree, err := core.ParseDependencyTree(listing.Stdout)
	if err != nil {
		return InspectResult{}, err
	}

	templateLabel := built.template.Path
	if built.template.UsedDefault() {
		templateLabel = fmt.Sprintf("built-in default (%s: %s)", built.template.Outcome, built.template.Path)
	}
	return InspectResult{
		Report: types.InspectReport{
			Namespace:    req.Namespace,
			Template:     templateLabel,
			Dependencies: core.ExtractNamespacedDependencies(ctx, tree, built.policy),
			Paths:        built.paths,
		},
		Tree:     core.NamespacedSubtree(tree, built.policy),
		Document: built.document,
	}, nil
}

// RenderInspect writes an inspect result in the requested format.
func (s Service) RenderInspect(w io.Writer, result InspectResult, format types.ReportFormat, root string) error {
	switch format {
	case types.ReportFormatYAML, "":
		return s.Reports.WriteYAML(w, result.Report)
	case types.ReportFormatTree:
		label := root
		if abs, err := filepath.Abs(root); err == nil {
			label = filepath.Base(abs)
		}
		return s.Reports.WriteTree(w, label, result.Tree)
	case types.ReportFormatJSON:
		_, err := w.Write(core.FormatDocument(result.Document))
		return err
	default:
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported report format: %s", format))
	}
}
