// Copyright (c) 2026 AgentCmd Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package command

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitfield/script"
)

// LoadDirectory reads every markdown command document in dir (non-recursive)
// and assembles one Definition per document. A missing directory is a hard
// error; an empty directory is a valid, empty result. A failure local to one
// document never aborts the batch.
func LoadDirectory(dir string) ([]Definition, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("command directory not accessible: %w", err)
	}

	paths, err := script.ListFiles(dir).Match(".md").Slice()
	if err != nil {
		return nil, fmt.Errorf("failed to list command documents: %w", err)
	}

	defs := []Definition{}
	for _, path := range paths {
		if !strings.HasSuffix(path, ".md") {
			continue
		}
		def, err := LoadDocument(path)
		if err != nil {
			slog.Warn("skipping command document", "path", path, "error", err)
			continue
		}
		defs = append(defs, def)
	}

	if len(defs) == 0 {
		slog.Warn("no command documents found", "dir", dir)
	}
	return defs, nil
}

// LoadDocument parses a single command document into a Definition.
func LoadDocument(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("failed to read document: %w", err)
	}

	name := NameFromPath(path)
	meta, body := splitFrontMatter(string(data))
	fm, err := parseFrontMatter(meta)
	if err != nil {
		return Definition{}, fmt.Errorf("invalid front matter in %s: %w", path, err)
	}

	args := []Argument(fm.ArgumentHint)
	if args == nil {
		args = []Argument{}
	}

	return Definition{
		Name:        name,
		Description: fm.Description,
		Arguments:   args,
		Response:    ExtractResponseSchema(name, body),
	}, nil
}

// NameFromPath derives the slash-prefixed command name from a document path:
// "commands/plan:create.md" -> "/plan:create".
func NameFromPath(path string) string {
	base := filepath.Base(path)
	return "/" + strings.TrimSuffix(base, filepath.Ext(base))
}
