// Package jsonschema exports document types as JSON Schema (draft 2020-12)
// for consumers that validate records outside Go.
package jsonschema

import (
	"bytes"
	"fmt"
	"sort"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/Fredasante/sanity-backend-bend-the-trendd/field"
	"github.com/Fredasante/sanity-backend-bend-the-trendd/schema"
)

const slugPattern = "^[a-z0-9]+(?:-[a-z0-9]+)*$"

// FromDocument converts doc into a JSON Schema. Fields hidden by a sibling
// rule become conditional requirements; computed initial values are left
// out.
func FromDocument(doc *schema.Document) *Schema {
	s := object(doc.Fields)
	s.SchemaURI = Draft
	s.ID = "urn:trendd:" + doc.Name
	s.Title = doc.Title
	s.Properties["_id"] = &Schema{Type: "string"}
	s.Properties["_type"] = &Schema{Type: "string", Const: doc.Name}
	return s
}

// JSON renders s as indented JSON.
func JSON(s *Schema) ([]byte, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("jsonschema: marshal json: %w", err)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, b, "", "  "); err != nil {
		return nil, fmt.Errorf("jsonschema: indent json: %w", err)
	}
	return buf.Bytes(), nil
}

// YAML renders s as YAML.
func YAML(s *Schema) ([]byte, error) {
	b, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("jsonschema: marshal yaml: %w", err)
	}
	return b, nil
}

func object(fields []*field.Spec) *Schema {
	s := &Schema{
		Type:                 "object",
		Properties:           make(map[string]*Schema, len(fields)),
		AdditionalProperties: true,
	}
	for _, fs := range fields {
		s.Properties[fs.Name] = property(fs)
		if !fs.Required {
			continue
		}
		if sibling, value, ok := fs.VisibleWhen(); ok {
			s.AllOf = append(s.AllOf, &Schema{
				If: &Schema{
					Properties: map[string]*Schema{sibling: {Const: value}},
					Required:   []string{sibling},
				},
				Then: &Schema{Required: []string{fs.Name}},
			})
			continue
		}
		if fs.Conditional() {
			continue
		}
		s.Required = append(s.Required, fs.Name)
	}
	sort.Strings(s.Required)
	return s
}

func property(fs *field.Spec) *Schema {
	s := kind(fs)
	s.Title = fs.Title
	s.Description = fs.Description
	s.ReadOnly = fs.ReadOnly
	if v, ok := fs.StaticInitial(); ok {
		s.Default = v
	}
	if fs.Kind.IsList() && fs.MinItems > 0 {
		n := fs.MinItems
		s.MinItems = &n
	}
	return s
}

func kind(fs *field.Spec) *Schema {
	switch fs.Kind {
	case field.KindText, field.KindLongText:
		return &Schema{Type: "string", Enum: fs.AllowedValues()}
	case field.KindNumber:
		s := &Schema{Type: "number", Minimum: fs.Min}
		if fs.Integer {
			s.Type = "integer"
		}
		return s
	case field.KindBoolean:
		return &Schema{Type: "boolean"}
	case field.KindDateTime:
		return &Schema{Type: "string", Format: "date-time"}
	case field.KindSlug:
		text := &Schema{Type: "string", Pattern: slugPattern}
		if fs.MaxLength > 0 {
			n := fs.MaxLength
			text.MaxLength = &n
		}
		return &Schema{OneOf: []*Schema{
			text,
			{
				Type:       "object",
				Properties: map[string]*Schema{"current": text},
				Required:   []string{"current"},
			},
		}}
	case field.KindImage:
		return image()
	case field.KindReference:
		one := 1
		return &Schema{OneOf: []*Schema{
			{Type: "string", MinLength: &one},
			{
				Type:       "object",
				Properties: map[string]*Schema{"_ref": {Type: "string", MinLength: &one}},
				Required:   []string{"_ref"},
			},
		}}
	case field.KindObject:
		return object(fs.Fields)
	case field.KindTextList:
		return &Schema{Type: "array", Items: &Schema{Type: "string", Enum: fs.AllowedValues()}}
	case field.KindImageList:
		return &Schema{Type: "array", Items: image()}
	case field.KindBlockList:
		return &Schema{Type: "array", Items: &Schema{
			Type:       "object",
			Properties: map[string]*Schema{"_type": {Type: "string"}},
			Required:   []string{"_type"},
		}}
	case field.KindObjectList:
		return &Schema{Type: "array", Items: object(fs.Fields)}
	}
	return &Schema{}
}

func image() *Schema {
	return &Schema{
		Type: "object",
		Properties: map[string]*Schema{
			"asset": {
				Type:       "object",
				Properties: map[string]*Schema{"_ref": {Type: "string"}},
				Required:   []string{"_ref"},
			},
		},
		Required: []string{"asset"},
	}
}
