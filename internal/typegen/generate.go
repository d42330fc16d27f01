// Copyright (c) 2026 AgentCmd Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package typegen

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/tidwall/gjson"

	"agentcmd/internal/command"
)

const indentUnit = "  "

// InterfaceName converts a command name into the PascalCase base used for its
// generated declarations: "/cmd:generate-spec" -> "CmdGenerateSpec". The
// derivation is deterministic, so the same command always yields the same
// name across runs.
func InterfaceName(commandName string) string {
	name := strings.TrimPrefix(commandName, "/")
	tokens := strings.FieldsFunc(name, func(r rune) bool {
		return r == ':' || r == '-'
	})

	var b strings.Builder
	for _, token := range tokens {
		runes := []rune(token)
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}
	return b.String()
}

// RenderResponse emits the named response declaration for one command as
// TypeScript source text. The generator never writes files; persisting the
// text is the caller's job.
func RenderResponse(commandName string, schema *command.ResponseSchema) string {
	var b strings.Builder
	fmt.Fprintf(&b, "/** Response payload for %s */\n", commandName)
	fmt.Fprintf(&b, "export interface %sResponse {\n", InterfaceName(commandName))
	writeFields(&b, schema.Example(), schema.FieldDescriptions, 1)
	b.WriteString("}\n")
	return b.String()
}

// RenderArgs emits the parallel Args declaration for a command's positional
// arguments. Arguments bind as text, so every field is string-typed; optional
// arguments get the '?' marker.
func RenderArgs(commandName string, args []command.Argument) string {
	var b strings.Builder
	fmt.Fprintf(&b, "/** Arguments for %s */\n", commandName)
	fmt.Fprintf(&b, "export interface %sArgs {\n", InterfaceName(commandName))
	for _, arg := range args {
		marker := ""
		if !arg.Required {
			marker = "?"
		}
		fmt.Fprintf(&b, "%s%s%s: string;\n", indentUnit, arg.Name, marker)
	}
	b.WriteString("}\n")
	return b.String()
}

// RenderAll emits the full generated source for a set of command definitions:
// an Args declaration for every command with arguments and a Response
// declaration for every command with an extracted schema.
func RenderAll(defs []command.Definition) string {
	sections := []string{"// Code generated from command documents. DO NOT EDIT.\n"}
	for _, def := range defs {
		if len(def.Arguments) > 0 {
			sections = append(sections, RenderArgs(def.Name, def.Arguments))
		}
		if def.Response != nil {
			sections = append(sections, RenderResponse(def.Name, def.Response))
		}
	}
	return strings.Join(sections, "\n")
}

// writeFields emits one field line per key of obj, in document order.
// Descriptions attach at the top level only, where FieldDescriptions keys
// live; entries for keys absent from the example never emit.
func writeFields(b *strings.Builder, obj gjson.Result, descs map[string]string, depth int) {
	indent := strings.Repeat(indentUnit, depth)
	obj.ForEach(func(key, value gjson.Result) bool {
		if desc, ok := descs[key.String()]; ok {
			fmt.Fprintf(b, "%s/** %s */\n", indent, desc)
		}
		writeField(b, key.String(), value, depth)
		return true
	})
}

func writeField(b *strings.Builder, name string, value gjson.Result, depth int) {
	indent := strings.Repeat(indentUnit, depth)
	desc := Infer(value)

	switch desc.Kind {
	case KindRecord:
		fmt.Fprintf(b, "%s%s: {\n", indent, name)
		writeFields(b, value, nil, depth+1)
		fmt.Fprintf(b, "%s};\n", indent)
	case KindArray:
		// Walk nested arrays down to the leaf so record elements expand
		// into a block at any depth instead of collapsing to "object".
		suffix := "[]"
		elem := *desc.Elem
		inner := value
		for elem.Kind == KindArray {
			suffix += "[]"
			inner = inner.Array()[0]
			elem = *elem.Elem
		}
		if elem.Kind == KindRecord {
			fmt.Fprintf(b, "%s%s: {\n", indent, name)
			writeFields(b, inner.Array()[0], nil, depth+1)
			fmt.Fprintf(b, "%s}%s;\n", indent, suffix)
			return
		}
		fmt.Fprintf(b, "%s%s: %s%s;\n", indent, name, typeName(elem), suffix)
	default:
		fmt.Fprintf(b, "%s%s: %s;\n", indent, name, typeName(desc))
	}
}

// typeName renders a descriptor as TypeScript type text. Records are emitted
// inline by writeField rather than through here.
func typeName(d Descriptor) string {
	switch d.Kind {
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindAny:
		return "any"
	case KindArray:
		return typeName(*d.Elem) + "[]"
	default:
		return "object"
	}
}
