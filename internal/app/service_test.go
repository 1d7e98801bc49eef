package app

import (
	"context"
	"path/filepath"
	"testing"

	"jsconfig-gen/internal/types"
)

type stubLister struct {
	result types.ListingResult
	dirs   []string
}

func (l *stubLister) List(_ context.Context, projectDir string) types.ListingResult {
	l.dirs = append(l.dirs, projectDir)
	return l.result
}

type recordingWriter struct {
	writes map[string][]byte
	calls  int
}

func newRecordingWriter() *recordingWriter {
	return &recordingWriter{writes: map[string][]byte{}}
}

func (w *recordingWriter) WriteConfig(path string, data []byte) error {
	w.calls++
	w.writes[path] = append([]byte(nil), data...)
	return nil
}

func testService(lister *stubLister, writer *recordingWriter) Service {
	service := NewService()
	service.Lister = lister
	service.Writer = writer
	return service
}

func testRequest(t *testing.T) GenerateRequest {
	t.Helper()
	dir := t.TempDir()
	return GenerateRequest{
		Namespace:    "@orgscope",
		TemplatePath: filepath.Join(dir, "jsconfig.template.json"),
		OutputPath:   filepath.Join(dir, "jsconfig.json"),
		ProjectDir:   dir,
	}
}
