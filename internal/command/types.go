// Copyright (c) 2026 AgentCmd Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package command

import (
	"fmt"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// Argument is one positional argument of a command. Order in the containing
// slice is the positional binding order.
type Argument struct {
	Name     string
	Required bool
}

// ArgumentHint is the front-matter spelling of a command's argument list. It
// accepts both forms document authors use: a bracketed string such as
// "[a, (b), c?]" and a YAML sequence of tokens.
type ArgumentHint []Argument

// UnmarshalYAML decodes either spelling transparently.
func (h *ArgumentHint) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var raw string
		if err := node.Decode(&raw); err != nil {
			return err
		}
		*h = ParseArgumentHint(raw)
		return nil
	case yaml.SequenceNode:
		var tokens []string
		if err := node.Decode(&tokens); err != nil {
			return err
		}
		*h = ParseArgumentTokens(tokens)
		return nil
	default:
		return fmt.Errorf("argument-hint must be a string or a list, got YAML node kind %d", node.Kind)
	}
}

// ResponseSchema is the example response extracted from a command document.
type ResponseSchema struct {
	// ExampleJSON is the raw text of the example JSON object, exactly as it
	// appeared inside the fenced block.
	ExampleJSON string

	// FieldDescriptions maps top-level field names to their documentation.
	// Matching against example keys is exact and case-sensitive; entries for
	// keys absent from the example are inert.
	FieldDescriptions map[string]string
}

// Example returns the parsed example object. gjson preserves document key
// order, which the generator depends on.
func (s *ResponseSchema) Example() gjson.Result {
	return gjson.Parse(s.ExampleJSON)
}

// Definition is one operator-facing command assembled from a document. Name is
// derived from the file name, never from the document body.
type Definition struct {
	Name        string
	Description string
	Arguments   []Argument
	Response    *ResponseSchema
}
