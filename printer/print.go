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

// Package printer renders syntax trees for humans and for other programs.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/mantelsql/mantel/cst"
)

// Fprint writes a debug dump of the tree rooted at n to w.
//
// Each element gets its own line, indented two spaces per level of depth.
// Nodes print as a dash followed by their kind, and tokens print as a dash,
// their text quoted as by %q, and their kind. For example, the line for the
// target of "SELECT * FROM t" is `      - "t" IDENTIFIER`.
func Fprint(w io.Writer, n *cst.Node) error {
	p := &printer{w: w}
	p.node(n, 0)
	return p.err
}

// Sprint is like [Fprint], but returns the dump as a string.
func Sprint(n *cst.Node) string {
	var buf strings.Builder
	_ = Fprint(&buf, n)
	return buf.String()
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) node(n *cst.Node, depth int) {
	p.line(depth, "- %v", n.Kind())
	for child := range n.ChildrenWithTokens() {
		if p.err != nil {
			return
		}
		if node := child.Node(); node != nil {
			p.node(node, depth+1)
			continue
		}
		tok := child.Token()
		p.line(depth+1, "- %q %v", tok.Text(), tok.Kind())
	}
}

func (p *printer) line(depth int, format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, "%s"+format+"\n", append([]any{strings.Repeat("  ", depth)}, args...)...)
}
