package policies

import (
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

const (
	pathPatternPrefix = "node_modules/"
	pathPatternSuffix = "/process/*/process"
)

// NamespacePolicy decides which dependencies belong to the organizational
// scope and how their sources are located inside node_modules.
type NamespacePolicy struct {
	Prefix string
}

func NewNamespacePolicy(prefix string) (NamespacePolicy, error) {
	if strings.TrimSpace(prefix) == "" {
		return NamespacePolicy{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("namespace prefix is empty")
	}
	return NamespacePolicy{Prefix: prefix}, nil
}

func (p NamespacePolicy) Matches(name string) bool {
	return strings.HasPrefix(name, p.Prefix)
}

// PathPattern maps a namespaced package onto its process directory layout.
func (p NamespacePolicy) PathPattern(name string) string {
	return pathPatternPrefix + name + pathPatternSuffix
}
