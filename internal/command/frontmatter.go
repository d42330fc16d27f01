// Copyright (c) 2026 AgentCmd Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package command

import (
	"strings"

	"gopkg.in/yaml.v3"
)

const frontMatterFence = "---"

// frontMatter is the metadata block at the top of a command document.
type frontMatter struct {
	Description  string       `yaml:"description"`
	ArgumentHint ArgumentHint `yaml:"argument-hint"`
}

// splitFrontMatter separates the leading front-matter fence from the body.
// Documents without a fence keep the whole text as body with empty metadata.
func splitFrontMatter(content string) (meta, body string) {
	content = strings.TrimPrefix(content, "\uFEFF")
	lines := strings.Split(content, "\n")
	if len(lines) == 0 || strings.TrimRight(lines[0], "\r") != frontMatterFence {
		return "", content
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], "\r") == frontMatterFence {
			return strings.Join(lines[1:i], "\n"), strings.Join(lines[i+1:], "\n")
		}
	}
	// Unterminated fence: treat the document as body-only.
	return "", content
}

func parseFrontMatter(meta string) (frontMatter, error) {
	var fm frontMatter
	if strings.TrimSpace(meta) == "" {
		return fm, nil
	}
	if err := yaml.Unmarshal([]byte(meta), &fm); err != nil {
		return fm, err
	}
	return fm, nil
}
