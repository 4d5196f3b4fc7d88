package catalog

// packSchema defines the JSON schema for content pack files. Packs come
// from outside the binary, so they are validated before merging.
var packSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"languageCode": map[string]any{
			"type":        "string",
			"minLength":   2,
			"description": "ISO language code the lessons belong to",
		},
		"lessons": map[string]any{
			"type":  "array",
			"items": lessonSchema,
		},
	},
	"required":             []any{"languageCode", "lessons"},
	"additionalProperties": false,
}

var lessonSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"title":        map[string]any{"type": "string", "minLength": 1},
		"description":  map[string]any{"type": "string"},
		"languageCode": map[string]any{"type": "string"},
		"lessonNumber": map[string]any{"type": "integer", "minimum": 1},
		"difficulty": map[string]any{
			"type": "string",
			"enum": []any{"beginner", "intermediate", "advanced"},
		},
		"vocabulary": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"word":               map[string]any{"type": "string", "minLength": 1},
					"translation":        map[string]any{"type": "string", "minLength": 1},
					"pronunciation":      map[string]any{"type": "string"},
					"example":            map[string]any{"type": "string"},
					"exampleTranslation": map[string]any{"type": "string"},
				},
				"required": []any{"word", "translation"},
			},
		},
		"dialogues": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"title":        map[string]any{"type": "string"},
					"scenario":     map[string]any{"type": "string"},
					"participants": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					"lines": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"speaker":     map[string]any{"type": "string"},
								"text":        map[string]any{"type": "string", "minLength": 1},
								"translation": map[string]any{"type": "string"},
							},
							"required": []any{"speaker", "text"},
						},
					},
				},
				"required": []any{"title", "lines"},
			},
		},
		"exercises": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"type": map[string]any{
						"type": "string",
						"enum": []any{"multipleChoice", "fillInTheBlank", "translation", "pronunciation", "listening"},
					},
					"question":      map[string]any{"type": "string", "minLength": 1},
					"options":       map[string]any{"type": "array", "items": map[string]any{"type": "string"}, "minItems": 2},
					"correctAnswer": map[string]any{"type": "string", "minLength": 1},
					"explanation":   map[string]any{"type": "string"},
					"points":        map[string]any{"type": "integer", "minimum": 1},
				},
				"required": []any{"type", "question", "options", "correctAnswer", "points"},
			},
		},
	},
	"required": []any{"title", "lessonNumber", "difficulty"},
}
