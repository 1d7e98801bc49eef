package core

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"jsconfig-gen/internal/policies"
	"jsconfig-gen/internal/types"
)

const (
	compilerOptionsPath = "compilerOptions"
	pathsPath           = "compilerOptions.paths"
	documentIndent      = "    "
)

// WildcardPaths returns the string entries of compilerOptions.paths["*"].
// A missing rule, or one that is not an array, reads as empty.
func WildcardPaths(doc types.ConfigDocument) []string {
	var rule gjson.Result
	gjson.GetBytes(doc.Raw, pathsPath).ForEach(func(key, value gjson.Result) bool {
		if key.String() == types.WildcardRuleKey {
			rule = value
			return false
		}
		return true
	})
	if !rule.IsArray() {
		return nil
	}
	var paths []string
	for _, entry := range rule.Array() {
		if entry.Type != gjson.String {
			continue
		}
		paths = append(paths, entry.String())
	}
	return paths
}

// SynthesizePathRule computes the new wildcard rule: the template's entries
// outside the namespace, followed by one process pattern per namespaced
// dependency found in the listing output.
func SynthesizePathRule(ctx context.Context, doc types.ConfigDocument, rawDependencyOutput string, policy policies.NamespacePolicy) ([]string, error) {
	rule := make([]string, 0)
	present := newOrderedSet()
	for _, path := range WildcardPaths(doc) {
		if policy.Matches(path) {
			continue
		}
		rule = append(rule, path)
		present.Add(path)
	}
	kept := len(rule)

	deps, err := ExtractFromOutput(ctx, rawDependencyOutput, policy)
	if err != nil {
		return nil, err
	}
	for _, dep := range deps {
		pattern := policy.PathPattern(dep)
		if !present.Add(pattern) {
			continue
		}
		rule = append(rule, pattern)
	}
	log.Ctx(ctx).Debug().
		Int("kept", kept).
		Int("added", len(rule)-kept).
		Msg("wildcard path rule synthesized")
	return rule, nil
}

// InstallPathRule returns a copy of doc whose wildcard rule is replaced by
// paths. An existing rule keeps its position; a new one is placed first.
func InstallPathRule(doc types.ConfigDocument, paths []string) (types.ConfigDocument, error) {
	root := gjson.ParseBytes(doc.Raw)
	if !root.IsObject() {
		return types.ConfigDocument{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("config document is not a JSON object")
	}
	options := root.Get(compilerOptionsPath)
	if options.Exists() && !options.IsObject() {
		return types.ConfigDocument{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("compilerOptions is not a JSON object")
	}

	rule, err := encodeStrings(paths)
	if err != nil {
		return types.ConfigDocument{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode wildcard path rule").
			WithCause(err)
	}
	updated, err := sjson.SetRawBytes(append([]byte(nil), doc.Raw...), pathsPath, rebuildPaths(root.Get(pathsPath), rule))
	if err != nil {
		return types.ConfigDocument{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to update compilerOptions.paths").
			WithCause(err)
	}
	return types.ConfigDocument{Raw: updated}, nil
}

func rebuildPaths(existing gjson.Result, rule []byte) []byte {
	wildcardKey, _ := encodeString(types.WildcardRuleKey)
	var buf bytes.Buffer
	buf.WriteByte('{')
	replaced := false
	first := true
	writeEntry := func(key []byte, value []byte) {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	if existing.IsObject() {
		existing.ForEach(func(key, value gjson.Result) bool {
			if key.String() == types.WildcardRuleKey {
				if !replaced {
					writeEntry(wildcardKey, rule)
					replaced = true
				}
				return true
			}
			writeEntry([]byte(key.Raw), []byte(value.Raw))
			return true
		})
	}
	if !replaced {
		var tail bytes.Buffer
		tail.Write(buf.Bytes()[1:])
		buf.Reset()
		buf.WriteByte('{')
		buf.Write(wildcardKey)
		buf.WriteByte(':')
		buf.Write(rule)
		if tail.Len() > 0 {
			buf.WriteByte(',')
			buf.Write(tail.Bytes())
		}
	}
	buf.WriteByte('}')
	return buf.Bytes()
}

func encodeStrings(values []string) ([]byte, error) {
	if values == nil {
		values = []string{}
	}
	return encodeJSON(values)
}

func encodeString(value string) ([]byte, error) {
	return encodeJSON(value)
}

func encodeJSON(value any) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(value); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// FormatDocument renders doc with four-space indentation, one array
// element per line and the existing key order.
func FormatDocument(doc types.ConfigDocument) []byte {
	formatted := pretty.PrettyOptions(doc.Raw, &pretty.Options{
		Indent:   documentIndent,
		SortKeys: false,
	})
	return []byte(strings.TrimRight(string(formatted), "\n") + "\n")
}
