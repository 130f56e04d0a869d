// Package docs registers the Swagger document served at /swagger/index.html.
// Regenerate with `swag init -g cmd/serve.go` after changing handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/recruiter/assessments": {
            "get": {"tags": ["Recruiter - Assessments"], "summary": "(Recruiter) List assessments", "produces": ["application/json"],
                "parameters": [{"type": "integer", "name": "recruiter_id", "in": "query", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid recruiter ID"}}},
            "post": {"tags": ["Recruiter - Assessments"], "summary": "(Recruiter) Create an assessment", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"name": "assessment_data", "in": "body", "required": true, "schema": {"type": "object"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid input"}}}
        },
        "/recruiter/assessments/{id}": {
            "get": {"tags": ["Recruiter - Assessments"], "summary": "(Recruiter) Get assessment details", "produces": ["application/json"],
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}, {"type": "integer", "name": "recruiter_id", "in": "query", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Assessment not found"}}}
        },
        "/recruiter/assessments/{id}/candidates": {
            "get": {"tags": ["Recruiter - Assessments"], "summary": "(Recruiter) List candidates with results", "produces": ["application/json"],
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}, {"type": "integer", "name": "recruiter_id", "in": "query", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Assessment not found"}}}
        },
        "/assessments/{id}/public": {
            "get": {"tags": ["Candidate - Assessments"], "summary": "(Candidate) View an assessment before starting", "produces": ["application/json"],
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Assessment not found"}}}
        },
        "/assessments/{id}/start": {
            "post": {"tags": ["Candidate - Assessments"], "summary": "(Candidate) Submit a resume and start the assessment", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}, {"name": "start_data", "in": "body", "required": true, "schema": {"type": "object"}}],
                "responses": {"200": {"description": "OK"}, "409": {"description": "Assessment cannot be started"}}}
        },
        "/assessments/{id}/progress": {
            "get": {"tags": ["Candidate - Assessments"], "summary": "(Candidate) Get assessment progress", "produces": ["application/json"],
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}, {"type": "integer", "name": "candidate_id", "in": "query", "required": true}],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Not the assigned candidate"}}}
        },
        "/assessments/{id}/questions": {
            "get": {"tags": ["Candidate - Assessments"], "summary": "(Candidate) List assessment questions", "produces": ["application/json"],
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}, {"type": "integer", "name": "candidate_id", "in": "query", "required": true}],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Not the assigned candidate"}}}
        },
        "/assessments/{id}/complete": {
            "post": {"tags": ["Candidate - Assessments"], "summary": "(Candidate) Complete the assessment", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}, {"name": "complete_data", "in": "body", "required": true, "schema": {"type": "object"}}],
                "responses": {"200": {"description": "OK"}, "409": {"description": "Unanswered questions or assessment not active"}, "422": {"description": "No answers"}}}
        },
        "/questions/{question_id}/answer": {
            "post": {"tags": ["Candidate - Answers"], "summary": "(Candidate) Answer a question", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"type": "integer", "name": "question_id", "in": "path", "required": true}, {"name": "answer_data", "in": "body", "required": true, "schema": {"type": "object"}}],
                "responses": {"201": {"description": "Created"}, "409": {"description": "Already answered or assessment not active"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "Skillgate Assessment API",
	Description:      "Resume-gated technical assessments with AI-generated questions and grading.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
