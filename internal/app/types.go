package app

import "jsconfig-gen/internal/types"

type GenerateRequest struct {
	Namespace    string `validate:"required"`
	TemplatePath string
	OutputPath   string `validate:"required"`
	ProjectDir   string
}

type GenerateResult struct {
	Written    bool
	OutputPath string
	Template   types.TemplateOutcome
	Paths      []string
}

type InspectRequest struct {
	Namespace    string `validate:"required"`
	TemplatePath string
	ProjectDir   string
}

type InspectResult struct {
	Report   types.InspectReport
	Tree     types.DependencyTree
	Document types.ConfigDocument
}

type InitRequest struct {
	Namespace    string `validate:"required"`
	TemplatePath string `validate:"required"`
	Force        bool
}

type InitResult struct {
	Path string
}
