// internal/catalog/schema.go
package catalog

// fileSchema describes an external catalog document. Field names match the
// json/yaml tags of Model.
func fileSchema() map[string]any {
	number := map[string]any{"type": "number", "minimum": 0}
	return map[string]any{
		"type":     "object",
		"required": []string{"models"},
		"properties": map[string]any{
			"models": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"required":             []string{"id", "name", "category", "inputPrice", "outputPrice", "free", "openSource", "enabled"},
					"properties": map[string]any{
						"id":       map[string]any{"type": "integer", "minimum": 1},
						"name":     map[string]any{"type": "string", "minLength": 1},
						"provider": map[string]any{"type": "string"},
						"scores": map[string]any{
							"type":                 "object",
							"additionalProperties": false,
							"properties": map[string]any{
								"mmlu":      number,
								"hellaswag": number,
								"humaneval": number,
								"gpqa":      number,
							},
						},
						"inputPrice":    number,
						"outputPrice":   number,
						"free":          map[string]any{"type": "boolean"},
						"openSource":    map[string]any{"type": "boolean"},
						"enabled":       map[string]any{"type": "boolean"},
						"contextWindow": map[string]any{"type": "string"},
						"category":      map[string]any{"type": "string", "enum": categoryNames()},
						"pros":          map[string]any{"type": "string"},
						"cons":          map[string]any{"type": "string"},
						"bestFor":       map[string]any{"type": "string"},
						"priceNote":     map[string]any{"type": "string"},
					},
				},
			},
		},
	}
}

func categoryNames() []string {
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, string(c.Name))
	}
	return names
}
