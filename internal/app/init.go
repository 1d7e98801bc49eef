package app

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"jsconfig-gen/internal/core"
	"jsconfig-gen/internal/types"
)

// Init writes the built-in default document as a template the user can
// edit.
func (s Service) Init(ctx context.Context, req InitRequest) (InitResult, error) {
	req.Namespace = strings.TrimSpace(req.Namespace)
	req.TemplatePath = strings.TrimSpace(req.TemplatePath)
	if err := validateRequest(req); err != nil {
		return InitResult{}, err
	}
	if _, err := os.Stat(req.TemplatePath); err == nil && !req.Force {
		return InitResult{}, errbuilder.New().
			WithCode(errbuilder.CodeAlreadyExists).
			WithMsg("template already exists: " + req.TemplatePath)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return InitResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to check template path").
			WithCause(err)
	}
	doc := types.DefaultConfigDocument(req.Namespace)
	if err := s.Writer.WriteConfig(req.TemplatePath, core.FormatDocument(doc)); err != nil {
		return InitResult{}, err
	}
	log.Ctx(ctx).Info().Str("template", req.TemplatePath).Msg("template written")
	return InitResult{Path: req.TemplatePath}, nil
}
