package app

import (
	"bytes"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jsconfig-gen/internal/types"
)

func TestInspectReportsWithoutWriting(t *testing.T) {
	lister := &stubLister{result: types.ListingResult{Stdout: sampleListing}}
	writer := newRecordingWriter()
	service := testService(lister, writer)
	req := testRequest(t)

	result, err := service.Inspect(t.Context(), InspectRequest{
		Namespace:    req.Namespace,
		TemplatePath: req.TemplatePath,
		ProjectDir:   req.ProjectDir,
	})
	require.NoError(t, err)
	assert.Zero(t, writer.calls)
	if diff := cmp.Diff([]string{"@orgscope/util", "@orgscope/root"}, result.Report.Dependencies); diff != "" {
		t.Fatalf("unexpected dependencies (-want +got):\n%s", diff)
	}
	assert.Contains(t, result.Report.Template, "built-in default")
	assert.Len(t, result.Tree.Dependencies, 2)
}

func TestInspectFailsOnListingFailure(t *testing.T) {
	lister := &stubLister{result: types.ListingResult{Failure: &types.FailureInfo{Command: "npm ls", ExitCode: 1}}}
	service := testService(lister, newRecordingWriter())

	_, err := service.Inspect(t.Context(), InspectRequest{Namespace: "@orgscope", ProjectDir: t.TempDir()})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
}

func TestRenderInspectFormats(t *testing.T) {
	lister := &stubLister{result: types.ListingResult{Stdout: sampleListing}}
	service := testService(lister, newRecordingWriter())
	req := testRequest(t)
	result, err := service.Inspect(t.Context(), InspectRequest{Namespace: req.Namespace, TemplatePath: req.TemplatePath, ProjectDir: req.ProjectDir})
	require.NoError(t, err)

	tests := []struct {
		format types.ReportFormat
		want   string
	}{
		{format: types.ReportFormatYAML, want: "dependencies:"},
		{format: types.ReportFormatTree, want: "@orgscope/root"},
		{format: types.ReportFormatJSON, want: `"node_modules/@orgscope/root/process/*/process"`},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, service.RenderInspect(&buf, result, tt.format, req.ProjectDir))
			assert.Contains(t, buf.String(), tt.want)
		})
	}

	err = service.RenderInspect(&bytes.Buffer{}, result, types.ReportFormat("xml"), ".")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}
