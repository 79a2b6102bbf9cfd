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

package syntax

import (
	"fmt"

	"github.com/mantelsql/mantel/green"
)

// Raw converts this kind into the representation stored by the green tree.
func (v Kind) Raw() green.Kind {
	return green.Kind(v)
}

// IsTrivia returns whether this kind is syntactically insignificant.
func (v Kind) IsTrivia() bool {
	return v == Whitespace
}

// IsKeyword returns whether tokens of this kind spell out a keyword.
func (v Kind) IsKeyword() bool {
	return v == Select || v == From
}

// MustFromRaw is like [FromRaw], but panics if raw does not name a kind.
//
// Green trees built by this module only ever contain valid kinds, so a panic
// here means the tree came from somewhere else.
func MustFromRaw(raw green.Kind) Kind {
	k, ok := FromRaw(uint16(raw))
	if !ok {
		panic(fmt.Sprintf("mantel/syntax: unknown raw kind %d", raw))
	}
	return k
}
