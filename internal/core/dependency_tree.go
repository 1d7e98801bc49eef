package core

import (
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/tidwall/gjson"

	"jsconfig-gen/internal/types"
)

const dependenciesField = "dependencies"

// ParseDependencyTree validates the listing output once and converts it to
// a typed tree. Anything that is valid JSON but not shaped like a listing
// yields an empty tree.
func ParseDependencyTree(raw string) (types.DependencyTree, error) {
	if !gjson.Valid(raw) {
		return types.DependencyTree{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse dependency listing output")
	}
	return buildTree(gjson.Parse(raw)), nil
}

func buildTree(node gjson.Result) types.DependencyTree {
	if !node.IsObject() {
		return types.DependencyTree{}
	}
	deps := node.Get(dependenciesField)
	if !deps.IsObject() {
		return types.DependencyTree{}
	}
	var tree types.DependencyTree
	deps.ForEach(func(key, value gjson.Result) bool {
		tree.Dependencies = append(tree.Dependencies, types.DependencyEntry{
			Name: key.String(),
			Node: buildTree(value),
		})
		return true
	})
	return tree
}
