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

// Package green provides the immutable half of a lossless syntax tree.
//
// # Green and Red Trees
//
// A green tree stores everything about a syntax tree except where it is. Nodes
// know their kind, their width in bytes, and their children; tokens know their
// kind and their exact text. Nothing in a green tree knows its parent or its
// absolute offset, which means identical subtrees can be shared freely, both
// within one tree and across trees built with the same [Cache].
//
// Parent pointers and offsets are layered on top by a "red" view (see package
// cst), which is created lazily while walking the tree.
//
// # Building
//
// Green trees are built bottom-up by a [Builder]. Nodes may be opened after
// some of their children have already been emitted: take a [Checkpoint]
// before emitting them, and later call [Builder.StartNodeAt] to wrap
// everything emitted since then into a new node.
//
// Kinds are raw integers; this package does not know what they mean.
package green
