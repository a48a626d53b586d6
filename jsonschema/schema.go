package jsonschema

// Draft is the dialect written to the $schema keyword of exported documents.
const Draft = "https://json-schema.org/draft/2020-12/schema"

// Schema is the subset of JSON Schema needed to describe document types.
type Schema struct {
	SchemaURI   string `json:"$schema,omitempty" yaml:"$schema,omitempty"`
	ID          string `json:"$id,omitempty" yaml:"$id,omitempty"`
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Core
	Type     string   `json:"type,omitempty" yaml:"type,omitempty"`
	Format   string   `json:"format,omitempty" yaml:"format,omitempty"`
	Default  any      `json:"default,omitempty" yaml:"default,omitempty"`
	Enum     []string `json:"enum,omitempty" yaml:"enum,omitempty"`
	Const    any      `json:"const,omitempty" yaml:"const,omitempty"`
	ReadOnly bool     `json:"readOnly,omitempty" yaml:"readOnly,omitempty"`

	// Number
	Minimum *float64 `json:"minimum,omitempty" yaml:"minimum,omitempty"`

	// String
	MinLength *int   `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength *int   `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Pattern   string `json:"pattern,omitempty" yaml:"pattern,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty" yaml:"properties,omitempty"`
	Required             []string           `json:"required,omitempty" yaml:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty" yaml:"additionalProperties,omitempty"`

	// Array
	Items    *Schema `json:"items,omitempty" yaml:"items,omitempty"`
	MinItems *int    `json:"minItems,omitempty" yaml:"minItems,omitempty"`

	// Composition
	OneOf []*Schema `json:"oneOf,omitempty" yaml:"oneOf,omitempty"`
	AllOf []*Schema `json:"allOf,omitempty" yaml:"allOf,omitempty"`
	If    *Schema   `json:"if,omitempty" yaml:"if,omitempty"`
	Then  *Schema   `json:"then,omitempty" yaml:"then,omitempty"`
}
