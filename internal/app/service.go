package app

import (
	"jsconfig-gen/internal/adapters"
	"jsconfig-gen/internal/ports"
)

type Service struct {
	Lister         ports.DependencyListerPort
	TemplateSource func(namespace string) ports.TemplatePort
	Writer         ports.ConfigWriterPort
	Reports        ports.ReportPort
}

func NewService() Service {
	return Service{
		Lister:         adapters.NewNpmListerAdapter("", false),
		TemplateSource: newTemplateSource,
		Writer:         adapters.NewConfigFileAdapter(),
		Reports:        adapters.NewReportWriterAdapter(),
	}
}

func newTemplateSource(namespace string) ports.TemplatePort {
	return adapters.NewTemplateFileAdapter(namespace)
}

// WithLister returns a copy of the service that lists dependencies through
// lister.
func (s Service) WithLister(lister ports.DependencyListerPort) Service {
	s.Lister = lister
	return s
}
