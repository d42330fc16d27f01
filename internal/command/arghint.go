// Copyright (c) 2026 AgentCmd Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package command

import "strings"

// ParseArgumentHint parses a raw hint string like "[a, (b), c?]" into an
// ordered argument list. The literal "[]", an empty string, and
// whitespace-only input all yield an empty list.
func ParseArgumentHint(raw string) []Argument {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "[")
	raw = strings.TrimSuffix(raw, "]")
	if strings.TrimSpace(raw) == "" {
		return []Argument{}
	}
	return ParseArgumentTokens(strings.Split(raw, ","))
}

// ParseArgumentTokens parses pre-tokenized hint entries. A token wrapped in
// parentheses or carrying a trailing '?' is optional; everything else is
// required. Tokens that are empty after trimming are skipped.
func ParseArgumentTokens(tokens []string) []Argument {
	args := []Argument{}
	for _, tok := range tokens {
		name := strings.TrimSpace(tok)
		optional := false
		switch {
		case strings.HasPrefix(name, "(") && strings.HasSuffix(name, ")"):
			name = strings.TrimSuffix(strings.TrimPrefix(name, "("), ")")
			optional = true
		case strings.HasSuffix(name, "?"):
			name = strings.TrimSuffix(name, "?")
			optional = true
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		args = append(args, Argument{Name: name, Required: !optional})
	}
	return args
}
