package types

type TemplateOutcome string

const (
	TemplateOutcomeLoaded  TemplateOutcome = "loaded"
	TemplateOutcomeMissing TemplateOutcome = "missing"
	TemplateOutcomeInvalid TemplateOutcome = "invalid"
)

type ReportFormat string

const (
	ReportFormatYAML ReportFormat = "yaml"
	ReportFormatTree ReportFormat = "tree"
	ReportFormatJSON ReportFormat = "json"
)

const (
	DefaultNamespace    = "@orgscope"
	DefaultTemplatePath = "jsconfig.template.json"
	DefaultOutputPath   = "jsconfig.json"
	DefaultNpmBinary    = "npm"
	WildcardRuleKey     = "*"
)
