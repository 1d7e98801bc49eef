package core

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/lithammer/dedent"
	"github.com/stretchr/testify/require"

	"jsconfig-gen/internal/policies"
	"jsconfig-gen/internal/types"
)

func testPolicy(t *testing.T) policies.NamespacePolicy {
	t.Helper()
	policy, err := policies.NewNamespacePolicy("@orgscope")
	require.NoError(t, err)
	return policy
}

func TestExtractNamespacedDependenciesOrder(t *testing.T) {
	deps, err := ExtractFromOutput(t.Context(), `{"dependencies":{"@orgscope/util":{},"@orgscope/root":{}}}`, testPolicy(t))
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"@orgscope/util", "@orgscope/root"}, deps); diff != "" {
		t.Fatalf("unexpected dependencies (-want +got):\n%s", diff)
	}
}

func TestExtractNamespacedDependenciesWithoutMatches(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty object", raw: `{}`},
		{name: "empty dependencies", raw: `{"dependencies":{}}`},
		{name: "third party only", raw: `{"dependencies":{"lodash":{"dependencies":{"react":{}}}}}`},
		{name: "dependencies not an object", raw: `{"dependencies":"@orgscope/util"}`},
		{name: "top level array", raw: `[{"dependencies":{"@orgscope/util":{}}}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps, err := ExtractFromOutput(t.Context(), tt.raw, testPolicy(t))
			require.NoError(t, err)
			require.Empty(t, deps)
		})
	}
}

func TestExtractNamespacedDependenciesTransitiveAndDeduplicated(t *testing.T) {
	raw := dedent.Dedent(`
		{
		  "name": "app",
		  "version": "1.0.0",
		  "dependencies": {
		    "express": {
		      "version": "4.18.2",
		      "dependencies": {
		        "@orgscope/logger": {"version": "1.0.0"}
		      }
		    },
		    "@orgscope/core": {
		      "version": "2.0.0",
		      "dependencies": {
		        "@orgscope/logger": {"version": "1.0.0"},
		        "@orgscope/util": {
		          "dependencies": {
		            "@orgscope/core": {}
		          }
		        }
		      }
		    },
		    "@orgscope/util": {}
		  }
		}
	`)
	deps, err := ExtractFromOutput(t.Context(), raw, testPolicy(t))
	require.NoError(t, err)
	want := []string{"@orgscope/logger", "@orgscope/core", "@orgscope/util"}
	if diff := cmp.Diff(want, deps); diff != "" {
		t.Fatalf("unexpected dependencies (-want +got):\n%s", diff)
	}
	seen := map[string]bool{}
	for _, dep := range deps {
		require.True(t, testPolicy(t).Matches(dep), "dependency %s lacks prefix", dep)
		require.False(t, seen[dep], "duplicate dependency %s", dep)
		seen[dep] = true
	}
}

func TestExtractFromOutputRejectsInvalidJSON(t *testing.T) {
	for _, raw := range []string{"", "not json", `{"dependencies":`} {
		_, err := ExtractFromOutput(t.Context(), raw, testPolicy(t))
		require.Error(t, err)
		require.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
	}
}

func TestParseDependencyTreeKeepsKeyOrder(t *testing.T) {
	tree, err := ParseDependencyTree(`{"dependencies":{"zeta":{"dependencies":{"b":{},"a":{}}},"alpha":1}}`)
	require.NoError(t, err)
	want := types.DependencyTree{Dependencies: []types.DependencyEntry{
		{Name: "zeta", Node: types.DependencyTree{Dependencies: []types.DependencyEntry{
			{Name: "b"},
			{Name: "a"},
		}}},
		{Name: "alpha"},
	}}
	if diff := cmp.Diff(want, tree); diff != "" {
		t.Fatalf("unexpected tree (-want +got):\n%s", diff)
	}
}

func TestNamespacedSubtree(t *testing.T) {
	tree, err := ParseDependencyTree(`{"dependencies":{"express":{"dependencies":{"@orgscope/logger":{}}},"lodash":{},"@orgscope/util":{"dependencies":{"left-pad":{}}}}}`)
	require.NoError(t, err)
	want := types.DependencyTree{Dependencies: []types.DependencyEntry{
		{Name: "express", Node: types.DependencyTree{Dependencies: []types.DependencyEntry{
			{Name: "@orgscope/logger"},
		}}},
		{Name: "@orgscope/util"},
	}}
	if diff := cmp.Diff(want, NamespacedSubtree(tree, testPolicy(t))); diff != "" {
		t.Fatalf("unexpected subtree (-want +got):\n%s", diff)
	}
}
