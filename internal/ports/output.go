package ports

import (
	"io"

	"jsconfig-gen/internal/types"
)

type ConfigWriterPort interface {
	WriteConfig(path string, data []byte) error
}

type ReportPort interface {
	WriteYAML(w io.Writer, report types.InspectReport) error
	WriteTree(w io.Writer, root string, tree types.DependencyTree) error
}
