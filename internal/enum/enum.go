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

// Command enum generates the boilerplate for the enums of this module: the
// constants themselves, String and GoString, and lookups by name and by
// underlying value.
//
// Each package with an enum has a YAML file next to it, and a directive like
//
//	//go:generate go run github.com/mantelsql/mantel/internal/enum kind.yaml
//
// The YAML file holds a list of [Enum]s. The output goes to the file with the
// same name and a .go extension.
package main

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

//go:embed enum.go.tmpl
var tmplText string

// Enum describes one generated type.
type Enum struct {
	Name string `yaml:"name"`
	Docs string `yaml:"docs"`

	// The underlying integer type.
	Type string `yaml:"type"`

	// If set, the name of a constant counting the values.
	Total string `yaml:"total"`

	Methods []Method `yaml:"methods"`
	Values  []Value  `yaml:"values"`
}

// Value is one constant of an [Enum]. Values are numbered from zero in the
// order they are listed.
type Value struct {
	Name     string `yaml:"name"`
	Spelling string `yaml:"string"` // Defaults to Name.
	Docs     string `yaml:"docs"`
}

// String returns the text String() should return for v.
func (v Value) String() string {
	if v.Spelling == "" {
		return v.Name
	}
	return v.Spelling
}

// HasSuffixDocs returns whether v's docs are short enough to go at the end
// of its line.
func (v Value) HasSuffixDocs() bool {
	return v.Docs != "" && !strings.Contains(strings.TrimSpace(v.Docs), "\n")
}

// Method is a function to generate for an [Enum].
type Method struct {
	Kind MethodKind `yaml:"kind"`
	Name string     `yaml:"name"`
	Docs string     `yaml:"docs"`

	// Values this method does not mention.
	Skip []string `yaml:"skip"`
}

type MethodKind string

const (
	MethodString         MethodKind = "string"
	MethodGoString       MethodKind = "go-string"
	MethodFromString     MethodKind = "from-string"
	MethodFromUnderlying MethodKind = "from-underlying"
)

// check validates e and fills in defaults.
func (e *Enum) check() error {
	if e.Name == "" || e.Type == "" {
		return errors.New("enum needs a name and a type")
	}

	names := make(map[string]bool)
	strs := make(map[string]bool)
	for _, v := range e.Values {
		if names[v.Name] {
			return fmt.Errorf("%s: duplicate value %s", e.Name, v.Name)
		}
		if strs[v.String()] {
			return fmt.Errorf("%s: duplicate string %q", e.Name, v.String())
		}
		names[v.Name], strs[v.String()] = true, true
	}

	for i := range e.Methods {
		m := &e.Methods[i]
		switch m.Kind {
		case MethodString:
			m.Name = cmpOr(m.Name, "String")
			m.Docs = cmpOr(m.Docs, "String implements [fmt.Stringer].")
		case MethodGoString:
			m.Name = cmpOr(m.Name, "GoString")
			m.Docs = cmpOr(m.Docs, "GoString implements [fmt.GoStringer].")
		case MethodFromString, MethodFromUnderlying:
			if m.Name == "" {
				return fmt.Errorf("%s: %s method needs a name", e.Name, m.Kind)
			}
		default:
			return fmt.Errorf("%s: unknown method kind %q", e.Name, m.Kind)
		}
		for _, skip := range m.Skip {
			if !names[skip] {
				return fmt.Errorf("%s: %s skips unknown value %s", e.Name, m.Name, skip)
			}
		}
	}
	return nil
}

func cmpOr(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// makeDocs turns text into a doc comment, each line prefixed with indent.
func makeDocs(text, indent string) string {
	if text == "" {
		return ""
	}

	var out strings.Builder
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		out.WriteString(indent)
		out.WriteString(strings.TrimRight("// "+line, " "))
		out.WriteByte('\n')
	}
	return out.String()
}

// generate generates the Go file for the YAML file at config.
func generate(config, pkg string) error {
	if filepath.Ext(config) != ".yaml" {
		return errors.New("file argument must end in .yaml")
	}
	if pkg == "" {
		return errors.New("GOPACKAGE is not set; run this via go generate")
	}

	text, err := os.ReadFile(config)
	if err != nil {
		return err
	}

	input := struct {
		Binary, Package, Config string
		YAML                    []Enum
	}{
		Binary:  "github.com/mantelsql/mantel/internal/enum",
		Package: pkg,
		Config:  config,
	}
	dec := yaml.NewDecoder(bytes.NewReader(text))
	dec.KnownFields(true)
	if err := dec.Decode(&input.YAML); err != nil {
		return err
	}
	for i := range input.YAML {
		if err := input.YAML[i].check(); err != nil {
			return err
		}
	}

	tmpl, err := template.New("enum.go.tmpl").Funcs(template.FuncMap{
		"makeDocs": makeDocs,
		"contains": slices.Contains[[]string],
	}).Parse(tmplText)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, input); err != nil {
		return err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("generated code does not parse: %w", err)
	}
	return os.WriteFile(strings.TrimSuffix(config, ".yaml")+".go", src, 0o644)
}

func main() {
	failed := false
	for _, config := range os.Args[1:] {
		if err := generate(config, os.Getenv("GOPACKAGE")); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", config, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}
