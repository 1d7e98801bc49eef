package app

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"jsconfig-gen/internal/core"
	"jsconfig-gen/internal/policies"
	"jsconfig-gen/internal/shared"
	"jsconfig-gen/internal/types"
)

// Generate lists the project's dependencies and writes the jsconfig.
func (s Service) Generate(ctx context.Context, req GenerateRequest) (GenerateResult, error) {
	req = normalizeGenerateRequest(req)
	if err := validateRequest(req); err != nil {
		return GenerateResult{}, err
	}
	listing := s.Lister.List(ctx, req.ProjectDir)
	return s.Run(ctx, listing, req)
}

// Run turns one listing result into the jsconfig file. A failed listing is
// logged and leaves the filesystem untouched; it is not an error.
func (s Service) Run(ctx context.Context, listing types.ListingResult, req GenerateRequest) (GenerateResult, error) {
	req = normalizeGenerateRequest(req)
	if err := validateRequest(req); err != nil {
		return GenerateResult{}, err
	}
	if listing.Failure != nil {
		log.Ctx(ctx).Error().
			Str("command", listing.Failure.Command).
			Int("exit_code", listing.Failure.ExitCode).
			AnErr("cause", listing.Failure.Err).
			Str("stderr", strings.TrimSpace(listing.Stderr)).
			Msg("dependency listing failed, jsconfig not written")
		return GenerateResult{OutputPath: req.OutputPath}, nil
	}

	built, err := s.synthesize(ctx, listing.Stdout, req.Namespace, req.TemplatePath)
	if err != nil {
		return GenerateResult{}, err
	}
	if err := s.Writer.WriteConfig(req.OutputPath, core.FormatDocument(built.document)); err != nil {
		return GenerateResult{}, err
	}
	log.Ctx(ctx).Info().
		Str("output", req.OutputPath).
		Str("template", string(built.template.Outcome)).
		Int("paths", len(built.paths)).
		Msg("jsconfig written")
	return GenerateResult{
		Written:    true,
		OutputPath: req.OutputPath,
		Template:   built.template.Outcome,
		Paths:      built.paths,
	}, nil
}

type synthesis struct {
	policy   policies.NamespacePolicy
	template types.TemplateResult
	paths    []string
	document types.ConfigDocument
}

func (s Service) synthesize(ctx context.Context, rawOutput string, namespace string, templatePath string) (synthesis, error) {
	policy, err := policies.NewNamespacePolicy(namespace)
	if err != nil {
		return synthesis{}, err
	}
	template := s.TemplateSource(namespace).LoadTemplate(types.StaticPath(templatePath))
	if template.UsedDefault() {
		event := log.Ctx(ctx).Debug().
			Str("template", template.Path).
			Str("outcome", string(template.Outcome))
		if template.Cause != nil {
			event = event.AnErr("cause", template.Cause)
		}
		event.Msg("using built-in default template")
	}
	doc := template.Resolved()
	paths, err := core.SynthesizePathRule(ctx, doc, rawOutput, policy)
	if err != nil {
		return synthesis{}, err
	}
	installed, err := core.InstallPathRule(doc, paths)
	if err != nil {
		return synthesis{}, err
	}
	return synthesis{
		policy:   policy,
		template: template,
		paths:    paths,
		document: installed,
	}, nil
}

func normalizeGenerateRequest(req GenerateRequest) GenerateRequest {
	req.Namespace = strings.TrimSpace(req.Namespace)
	req.TemplatePath = shared.FirstNonEmpty(req.TemplatePath, types.DefaultTemplatePath)
	req.OutputPath = shared.FirstNonEmpty(req.OutputPath, types.DefaultOutputPath)
	req.ProjectDir = shared.FirstNonEmpty(req.ProjectDir, ".")
	return req
}
