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

// Package syntax defines the closed set of syntax kinds that tag every node
// and token in a mantel syntax tree.
//
// The green tree (see package green) stores kinds as raw integers, so that it
// can be shared by any language. [Kind.Raw] and [FromRaw] convert between the
// two representations; both are exhaustive over the values declared in
// kind.yaml.
package syntax

//go:generate go run github.com/mantelsql/mantel/internal/enum kind.yaml
