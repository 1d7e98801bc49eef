package adapters

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/tidwall/gjson"

	"jsconfig-gen/internal/ports"
	"jsconfig-gen/internal/types"
)

type TemplateFileAdapter struct {
	Namespace string
}

func NewTemplateFileAdapter(namespace string) TemplateFileAdapter {
	return TemplateFileAdapter{Namespace: namespace}
}

// LoadTemplate reads the template at the supplied path. It never fails:
// a missing or unusable file resolves to the built-in default document.
func (a TemplateFileAdapter) LoadTemplate(supplier types.PathSupplier) types.TemplateResult {
	path := types.DefaultTemplatePath
	if supplier != nil {
		if supplied := strings.TrimSpace(supplier()); supplied != "" {
			path = supplied
		}
	}
	result := types.TemplateResult{
		Path:    path,
		Default: types.DefaultConfigDocument(a.Namespace),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			result.Outcome = types.TemplateOutcomeMissing
			return result
		}
		result.Outcome = types.TemplateOutcomeInvalid
		result.Cause = errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read template file").
			WithCause(err)
		return result
	}
	if !gjson.ValidBytes(data) {
		result.Outcome = types.TemplateOutcomeInvalid
		result.Cause = errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("template file is not valid JSON")
		return result
	}
	if !gjson.ParseBytes(data).IsObject() {
		result.Outcome = types.TemplateOutcomeInvalid
		result.Cause = errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("template file is not a JSON object")
		return result
	}
	result.Outcome = types.TemplateOutcomeLoaded
	result.Document = types.NewConfigDocument(data)
	return result
}

var _ ports.TemplatePort = TemplateFileAdapter{}
