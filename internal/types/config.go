package types

import "strings"

// ConfigDocument holds the raw JSON of a jsconfig document. Keeping the
// bytes rather than a decoded map preserves the template's key order.
type ConfigDocument struct {
	Raw []byte
}

func NewConfigDocument(raw []byte) ConfigDocument {
	return ConfigDocument{Raw: append([]byte(nil), raw...)}
}

func (d ConfigDocument) String() string {
	return string(d.Raw)
}

func (d ConfigDocument) IsZero() bool {
	return len(d.Raw) == 0
}

const defaultConfigTemplate = `{
    "compilerOptions": {
        "module": "es6",
        "moduleResolution": "node",
        "baseUrl": ".",
        "checkJs": true,
        "noEmit": true,
        "removeComments": true,
        "strict": false,
        "paths": {
            "*": ["process/*/process", "node_modules/*/process", "node_modules/@orgscope/*/process"],
            "@orgscope/jdito-types": ["node_modules/@orgscope/jdito-types/index"]
        }
    }
}`

// DefaultConfigDocument builds the document used when no usable template
// exists. The scope replaces the @orgscope placeholder.
func DefaultConfigDocument(scope string) ConfigDocument {
	scope = strings.TrimSpace(scope)
	if scope == "" {
		scope = DefaultNamespace
	}
	return ConfigDocument{Raw: []byte(strings.ReplaceAll(defaultConfigTemplate, DefaultNamespace, scope))}
}

// PathSupplier yields the template location on demand.
type PathSupplier func() string

func StaticPath(path string) PathSupplier {
	return func() string { return path }
}

type TemplateResult struct {
	Outcome  TemplateOutcome
	Path     string
	Document ConfigDocument
	Default  ConfigDocument
	Cause    error
}

// Resolved returns the loaded document, or the default when the template
// was missing or unusable.
func (r TemplateResult) Resolved() ConfigDocument {
	if r.Outcome == TemplateOutcomeLoaded {
		return r.Document
	}
	return r.Default
}

func (r TemplateResult) UsedDefault() bool {
	return r.Outcome != TemplateOutcomeLoaded
}
