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

// Package cst provides the red view of a syntax tree: a navigable wrapper
// over an immutable green tree (see package green) that knows each element's
// parent and absolute text offset.
//
// Red nodes are created lazily as the tree is walked and are never stored in
// the green tree, so they are cheap to discard. Two red nodes wrapping the
// same green node at the same offset are interchangeable, although they are
// not necessarily the same pointer.
//
// Green trees carry no positions of their own. Offsets in this package count
// bytes of tree text, which matches the source text exactly only for trees
// that keep every token.
package cst
