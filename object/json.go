// Copyright (c) 2026, Geomkernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

import (
	"encoding/json"
	"fmt"
)

// typeTag names a concrete Object type for JSON round-tripping, since
// Map's value type is the Object interface and encoding/json cannot
// unmarshal into an interface without an explicit type discriminator.
type typeTag string

const (
	tagNode      typeTag = "node"
	tagFixedNode typeTag = "fixedNode"
	tagLine      typeTag = "line"
	tagPath      typeTag = "path"
	tagText      typeTag = "text"
)

type wireObject struct {
	Type typeTag         `json:"type"`
	Data json.RawMessage `json:"data"`
}

// MarshalJSON encodes m as an array of tagged objects (ID is carried
// inside each object's own Header, so a map-keyed encoding would be
// redundant).
func (m Map) MarshalJSON() ([]byte, error) {
	out := make([]wireObject, 0, len(m))
	for _, obj := range m {
		tag, err := tagFor(obj)
		if err != nil {
			return nil, err
		}
		data, err := json.Marshal(obj)
		if err != nil {
			return nil, err
		}
		out = append(out, wireObject{Type: tag, Data: data})
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes m from the format MarshalJSON produces.
func (m *Map) UnmarshalJSON(b []byte) error {
	var wire []wireObject
	if err := json.Unmarshal(b, &wire); err != nil {
		return err
	}
	out := make(Map, len(wire))
	for _, w := range wire {
		obj, err := newForTag(w.Type)
		if err != nil {
			return err
		}
		if err := json.Unmarshal(w.Data, obj); err != nil {
			return err
		}
		out[obj.ObjectID()] = obj
	}
	*m = out
	return nil
}

func tagFor(obj Object) (typeTag, error) {
	switch obj.(type) {
	case *Node:
		return tagNode, nil
	case *FixedNode:
		return tagFixedNode, nil
	case *Line:
		return tagLine, nil
	case *Path:
		return tagPath, nil
	case *Text:
		return tagText, nil
	default:
		return "", fmt.Errorf("object: unknown concrete type %T", obj)
	}
}

func newForTag(tag typeTag) (Object, error) {
	switch tag {
	case tagNode:
		return &Node{}, nil
	case tagFixedNode:
		return &FixedNode{}, nil
	case tagLine:
		return &Line{}, nil
	case tagPath:
		return &Path{}, nil
	case tagText:
		return &Text{}, nil
	default:
		return nil, fmt.Errorf("object: unknown type tag %q", tag)
	}
}
