package adapters

import (
	"fmt"
	"io"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/ddddddO/gtree"
	"gopkg.in/yaml.v3"

	"jsconfig-gen/internal/ports"
	"jsconfig-gen/internal/types"
)

type ReportWriterAdapter struct{}

func NewReportWriterAdapter() ReportWriterAdapter {
	return ReportWriterAdapter{}
}

func (a ReportWriterAdapter) WriteYAML(w io.Writer, report types.InspectReport) error {
	if report.Dependencies == nil {
		report.Dependencies = []string{}
	}
	if report.Paths == nil {
		report.Paths = []string{}
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(report); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode inspect report").
			WithCause(err)
	}
	return encoder.Close()
}

// WriteTree renders the dependency tree below a root label.
func (a ReportWriterAdapter) WriteTree(w io.Writer, root string, tree types.DependencyTree) error {
	if tree.IsEmpty() {
		_, err := fmt.Fprintln(w, root)
		return err
	}
	node := gtree.NewRoot(root)
	addTreeNodes(node, tree)
	if err := gtree.OutputFromRoot(w, node); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to render dependency tree").
			WithCause(err)
	}
	return nil
}

func addTreeNodes(parent *gtree.Node, tree types.DependencyTree) {
	for _, entry := range tree.Dependencies {
		addTreeNodes(parent.Add(entry.Name), entry.Node)
	}
}

var _ ports.ReportPort = ReportWriterAdapter{}
