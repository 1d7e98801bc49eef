package ports

import "jsconfig-gen/internal/types"

type TemplatePort interface {
	LoadTemplate(path types.PathSupplier) types.TemplateResult
}
