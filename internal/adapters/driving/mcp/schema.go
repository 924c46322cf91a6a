package mcp

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/custodia-labs/gcpblocks/internal/core/domain"
)

// ToolName returns the tool name for a block ID. Dots are not accepted by
// every MCP client, so they become underscores.
func ToolName(blockID string) string {
	return strings.ReplaceAll(blockID, ".", "_")
}

// InputSchema returns the JSON Schema describing a block's inputs.
func InputSchema(b *domain.Block) *jsonschema.Schema {
	schema := &jsonschema.Schema{
		Type:       "object",
		Properties: make(map[string]*jsonschema.Schema, len(b.Fields)),
		// An empty Not schema marshals as false.
		AdditionalProperties: &jsonschema.Schema{Not: &jsonschema.Schema{}},
	}

	for _, f := range b.Fields {
		prop := &jsonschema.Schema{
			Type:        jsonType(f.Type),
			Description: fieldDescription(f),
		}
		for _, v := range f.Enum {
			prop.Enum = append(prop.Enum, v)
		}
		if f.Default != nil {
			if raw, err := json.Marshal(f.Default); err == nil {
				prop.Default = raw
			}
		}
		if f.Type == domain.FieldArray {
			prop.Items = &jsonschema.Schema{Type: "string"}
		}
		schema.Properties[f.Key] = prop

		// project-defaulted fields may be omitted when a project is configured
		if f.Required && !f.DefaultsToProject {
			schema.Required = append(schema.Required, f.Key)
		}
	}

	sort.Strings(schema.Required)
	return schema
}

func jsonType(t domain.FieldType) string {
	switch t {
	case domain.FieldInteger, domain.FieldNumber, domain.FieldBoolean,
		domain.FieldObject, domain.FieldArray:
		return string(t)
	default:
		return "string"
	}
}

func fieldDescription(f domain.Field) string {
	desc := f.Description
	if desc == "" {
		desc = f.Label
	}
	switch {
	case f.Location == domain.LocationMedia:
		desc = strings.TrimSpace(desc + " Raw upload payload.")
	case f.DefaultsToProject:
		desc = strings.TrimSpace(desc + " Defaults to the configured project.")
	}
	return desc
}

func toolDescription(b *domain.Block) string {
	desc := b.Name
	if b.Description != "" {
		desc += ": " + b.Description
	}
	return desc + " (" + b.HTTPMethod + " " + b.Service.BaseURL() + b.Path + ")"
}
