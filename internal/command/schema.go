// Copyright (c) 2026 AgentCmd Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package command

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

// TriggerPhrase marks the start of the authoritative example-response section
// in a document body. Matching is case-insensitive.
const TriggerPhrase = "return this exact json structure"

// FieldsHeading introduces the per-field documentation bullets. Matching is
// case-insensitive.
const FieldsHeading = "## response fields"

var (
	jsonFencePattern   = regexp.MustCompile("(?s)```json[ \t]*\r?\n(.*?)```")
	fieldBulletPattern = regexp.MustCompile("^[-*][ \t]+`([^`]+)`:[ \t]*(.+)$")

	// Case-insensitive matches on the original body. Lowering the body and
	// indexing into the original is unsafe: case pairs can differ in UTF-8
	// length, skewing byte offsets.
	triggerPattern       = regexp.MustCompile("(?i)" + regexp.QuoteMeta(TriggerPhrase))
	fieldsHeadingPattern = regexp.MustCompile("(?i)" + regexp.QuoteMeta(FieldsHeading))
)

// ExtractResponseSchema scans a document body for the trigger phrase and the
// fenced JSON example that follows it. A missing trigger is a valid absence
// (nil schema, no error). An unparsable example is logged as a warning and
// degrades to no schema for this document only.
func ExtractResponseSchema(name, body string) *ResponseSchema {
	loc := triggerPattern.FindStringIndex(body)
	if loc == nil {
		return nil
	}

	rest := body[loc[1]:]
	m := jsonFencePattern.FindStringSubmatch(rest)
	if m == nil {
		slog.Warn("response trigger present but no json block follows", "command", name)
		return nil
	}

	raw := strings.TrimSpace(m[1])
	if !gjson.Valid(raw) || !gjson.Parse(raw).IsObject() {
		slog.Warn("response example is not a valid JSON object", "command", name)
		return nil
	}

	return &ResponseSchema{
		ExampleJSON:       raw,
		FieldDescriptions: extractFieldDescriptions(body),
	}
}

// extractFieldDescriptions collects the `- `field`: description` bullets that
// follow the fields heading. Collection stops as soon as the bullet pattern
// stops matching; a missing heading yields an empty map.
func extractFieldDescriptions(body string) map[string]string {
	descs := map[string]string{}
	loc := fieldsHeadingPattern.FindStringIndex(body)
	if loc == nil {
		return descs
	}

	lines := strings.Split(body[loc[0]:], "\n")
	started := false
	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		m := fieldBulletPattern.FindStringSubmatch(line)
		if m == nil {
			if !started && line == "" {
				continue
			}
			break
		}
		started = true
		descs[m[1]] = strings.TrimSpace(m[2])
	}
	return descs
}
