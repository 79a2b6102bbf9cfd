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

/*
Package report provides a diagnostics framework. It offers diagnostic
construction and ASCII art rendering functionality.

Diagnostics are collected into a [Report], which is a helpful builder over
a slice of [Diagnostic]s. Each [Diagnostic] consists of a Go error plus
metadata for rendering, such as source code spans, notes, and suggestions.

Reports can be rendered using a [Renderer], which provides several options
for how to render the result to the user.

# Defining Diagnostics

To define a diagnostic, define a new Go error type and make it implement
[Diagnose]. When someone using mantel as a library looks through a Report,
they can then type assert the diagnostic's error to programmatically
determine the nature of a diagnostic, and every place that emits it gets the
same rendering.

# Style

Diagnostic messages do not begin with a capital letter and do not end in
punctuation. The first span in a diagnostic (the primary span) should be
precisely the code that resulted in the error; pick the smallest span that
does.

# Debugging

If the environment variable MANTEL_DEBUG is set to a non-empty value, every
diagnostic records the stack trace of the code that created it, which
[Renderer.ShowDebug] prints.
*/
package report
