// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package printer

import (
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/mantelsql/mantel/cst"
)

// JSON encodes the tree rooted at n as indented JSON.
//
// Nodes become objects of the form
//
//	{"kind": "SELECT", "start": 0, "end": 15, "children": [...]}
//
// and tokens become
//
//	{"kind": "IDENTIFIER", "start": 14, "end": 15, "text": "t"}
//
// The exact whitespace of the output is not stable; compare parsed values,
// not bytes.
func JSON(n *cst.Node) ([]byte, error) {
	s, err := Struct(n)
	if err != nil {
		return nil, err
	}
	return protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(s)
}

// Struct converts the tree rooted at n into a [structpb.Struct], in the same
// shape that [JSON] produces.
func Struct(n *cst.Node) (*structpb.Struct, error) {
	return structpb.NewStruct(nodeValue(n))
}

func nodeValue(n *cst.Node) map[string]any {
	start, end := n.Range()
	children := []any{}
	for child := range n.ChildrenWithTokens() {
		if node := child.Node(); node != nil {
			children = append(children, nodeValue(node))
			continue
		}

		tok := child.Token()
		start, end := tok.Range()
		children = append(children, map[string]any{
			"kind":  tok.Kind().String(),
			"start": start,
			"end":   end,
			"text":  tok.Text(),
		})
	}

	return map[string]any{
		"kind":     n.Kind().String(),
		"start":    start,
		"end":      end,
		"children": children,
	}
}
