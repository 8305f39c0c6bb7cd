package report

// reportSchema is the JSON Schema every JSON report must satisfy before a
// tree is built from it. It checks shape and enums only; the semantic
// invariants (suites never carry outcomes, examples never carry children)
// belong to spec.Validate.
const reportSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["nodes"],
  "properties": {
    "name": { "type": "string" },
    "duration": { "type": "number", "minimum": 0 },
    "flags": {
      "type": "object",
      "properties": {
        "enabled": { "type": "boolean" },
        "verbose": { "type": "boolean" }
      },
      "additionalProperties": false
    },
    "nodes": {
      "type": "array",
      "items": { "$ref": "#/definitions/node" }
    }
  },
  "definitions": {
    "node": {
      "type": "object",
      "required": ["kind"],
      "properties": {
        "id": { "type": "string" },
        "kind": { "enum": ["suite", "example"] },
        "doc": { "type": "string" },
        "override": { "type": "string" },
        "outcome": { "enum": ["passed", "failed", "skipped"] },
        "children": {
          "type": "array",
          "items": { "$ref": "#/definitions/node" }
        }
      },
      "additionalProperties": false
    }
  }
}`
