package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"dining-planner/internal/model"

	"github.com/xeipuuv/gojsonschema"
)

const maxBodyBytes = 1 << 20

const goalsDefinition = `{
	"type": "object",
	"properties": {
		"targetCalories": {"type": "number", "minimum": 0},
		"targetProtein": {"type": "number", "minimum": 0},
		"targetCarbs": {"type": "number", "minimum": 0},
		"targetFat": {"type": "number", "minimum": 0},
		"maxBudget": {"type": "number", "minimum": 0},
		"dietaryRestrictions": {"type": ["array", "null"], "items": {"type": "string"}}
	}
}`

const itemIDList = `{"type": ["array", "null"], "items": {"type": "string", "minLength": 1}}`

var (
	planRequestSchema = mustSchema(`{
		"type": "object",
		"properties": {
			"items": ` + itemIDList + `,
			"goals": ` + goalsDefinition + `,
			"location": {"type": "string"}
		}
	}`)

	suggestRequestSchema = mustSchema(`{
		"type": "object",
		"required": ["itemId", "reason"],
		"properties": {
			"itemId": {"type": "string", "minLength": 1},
			"reason": {"enum": ["budget", "nutrition", "dietary"]},
			"goals": ` + goalsDefinition + `,
			"location": {"type": "string"}
		}
	}`)

	generateRequestSchema = mustSchema(`{
		"type": "object",
		"properties": {
			"goals": ` + goalsDefinition + `,
			"location": {"type": "string"}
		}
	}`)

	savePlanRequestSchema = mustSchema(`{
		"type": "object",
		"required": ["userId", "date", "items"],
		"properties": {
			"userId": {"type": "string", "minLength": 1},
			"date": {"type": "string"},
			"items": {"type": "array", "minItems": 1, "items": {"type": "string", "minLength": 1}}
		}
	}`)

	profileRequestSchema = mustSchema(`{
		"type": "object",
		"properties": {
			"name": {"type": "string"},
			"weightKg": {"type": "number", "minimum": 0},
			"fitnessGoal": {"enum": ["", "lose_weight", "maintain", "gain_weight", "build_muscle"]},
			"goals": {"oneOf": [{"type": "null"}, ` + goalsDefinition + `]},
			"maxBudget": {"type": "number", "minimum": 0},
			"dietaryRestrictions": {"type": ["array", "null"], "items": {"type": "string"}}
		}
	}`)

	importRequestSchema = mustSchema(`{
		"type": "object",
		"required": ["files"],
		"properties": {
			"files": {"type": "array", "minItems": 1, "items": {"type": "string", "minLength": 1}},
			"dryRun": {"type": "boolean"}
		}
	}`)
)

func mustSchema(s string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(s))
	if err != nil {
		panic(fmt.Sprintf("invalid request schema: %v", err))
	}
	return schema
}

// goalFields are the properties whose violations are reported as invalid goals.
var goalFields = []string{"goals", "targetCalories", "targetProtein", "targetCarbs", "targetFat", "maxBudget", "weightKg", "fitnessGoal", "dietaryRestrictions"}

// decodeValidated reads the request body, checks it against schema and
// decodes it into dst.
func decodeValidated(w http.ResponseWriter, r *http.Request, schema *gojsonschema.Schema, dst any) error {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return model.NewDomainError(model.ErrCodeInvalidRequest, "request body could not be read")
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return model.NewDomainError(model.ErrCodeInvalidJSON, "invalid request body")
	}

	if !result.Valid() {
		code := model.ErrCodeInvalidRequest
		msgs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			msgs[i] = desc.String()
			switch {
			case desc.Field() == "reason":
				code = model.ErrCodeInvalidReason
			case isGoalField(desc.Field()) && code != model.ErrCodeInvalidReason:
				code = model.ErrCodeInvalidGoals
			}
		}
		return model.NewDomainError(code, strings.Join(msgs, "; "))
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return model.NewDomainError(model.ErrCodeInvalidJSON, "invalid request body")
	}
	return nil
}

func isGoalField(field string) bool {
	root, _, _ := strings.Cut(field, ".")
	for _, f := range goalFields {
		if root == f {
			return true
		}
	}
	return false
}
