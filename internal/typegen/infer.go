// Copyright (c) 2026 AgentCmd Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package typegen

import "github.com/tidwall/gjson"

// Kind enumerates the closed set of inferred type descriptors.
type Kind int

const (
	// KindNull is JSON null.
	KindNull Kind = iota
	// KindBoolean is JSON true/false.
	KindBoolean
	// KindNumber is any JSON number.
	KindNumber
	// KindString is a JSON string.
	KindString
	// KindArray is a JSON array; Elem carries the element type.
	KindArray
	// KindRecord is a JSON object. Records expand one level at a time in the
	// generator, so a record descriptor carries no fields itself.
	KindRecord
	// KindAny is the element type of an empty array, where nothing can be
	// inferred.
	KindAny
)

// Descriptor is the structural type inferred for one JSON value.
type Descriptor struct {
	Kind Kind
	Elem *Descriptor
}

// Infer derives a structural type for any JSON value. It is total: every JSON
// value maps to exactly one descriptor and inference never fails. Array
// element types come from the first element only; heterogeneous arrays are
// under-specified on purpose.
func Infer(value gjson.Result) Descriptor {
	switch {
	case value.Type == gjson.Null:
		return Descriptor{Kind: KindNull}
	case value.IsArray():
		elems := value.Array()
		if len(elems) == 0 {
			return Descriptor{Kind: KindArray, Elem: &Descriptor{Kind: KindAny}}
		}
		elem := Infer(elems[0])
		return Descriptor{Kind: KindArray, Elem: &elem}
	case value.IsObject():
		return Descriptor{Kind: KindRecord}
	case value.Type == gjson.True || value.Type == gjson.False:
		return Descriptor{Kind: KindBoolean}
	case value.Type == gjson.Number:
		return Descriptor{Kind: KindNumber}
	default:
		return Descriptor{Kind: KindString}
	}
}
