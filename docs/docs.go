// Package docs registers the OpenAPI description served under /api/swagger.
//
// The resource handlers are generic over the entity kind, so the paths below
// are maintained here instead of being generated from handler annotations.
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
        "/health": {
            "get": {"tags": ["health"], "summary": "Dependency health", "responses": {"200": {"description": "OK"}, "503": {"description": "Degraded"}}}
        },
        "/profils": {
            "get": {"tags": ["profils"], "summary": "List all profils", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Profil"}}}}},
            "post": {"tags": ["profils"], "summary": "Create a profil", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "profil", "required": true, "schema": {"$ref": "#/definitions/domain.Profil"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Profil"}}, "400": {"description": "Invalid body or id already set", "schema": {"$ref": "#/definitions/response.Response"}}}},
            "put": {"tags": ["profils"], "summary": "Update a profil (creates it when id is missing)", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "profil", "required": true, "schema": {"$ref": "#/definitions/domain.Profil"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Profil"}}, "201": {"description": "Created"}, "400": {"description": "Invalid body", "schema": {"$ref": "#/definitions/response.Response"}}}}
        },
        "/profils/{id}": {
            "get": {"tags": ["profils"], "summary": "Get a profil", "parameters": [{"in": "path", "name": "id", "type": "integer", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Profil"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/response.Response"}}}},
            "delete": {"tags": ["profils"], "summary": "Delete a profil", "parameters": [{"in": "path", "name": "id", "type": "integer", "required": true}],
                "responses": {"200": {"description": "OK"}}}
        },
        "/profils/user/{userId}": {
            "get": {"tags": ["profils"], "summary": "Get the profil of a user", "parameters": [{"in": "path", "name": "userId", "type": "integer", "required": true}],
                "responses": {"200": {"description": "Profil or null", "schema": {"$ref": "#/definitions/domain.Profil"}}}}
        },
        "/_search/profils": {
            "get": {"tags": ["profils"], "summary": "Full-text search over profils", "parameters": [{"in": "query", "name": "query", "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Profil"}}}}}
        },
        "/skills": {
            "get": {"tags": ["skills"], "summary": "List all skills", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Skill"}}}}},
            "post": {"tags": ["skills"], "summary": "Create a skill", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "skill", "required": true, "schema": {"$ref": "#/definitions/domain.Skill"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Skill"}}, "400": {"description": "Invalid body or id already set", "schema": {"$ref": "#/definitions/response.Response"}}}},
            "put": {"tags": ["skills"], "summary": "Update a skill (creates it when id is missing)", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "skill", "required": true, "schema": {"$ref": "#/definitions/domain.Skill"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Skill"}}, "201": {"description": "Created"}, "400": {"description": "Invalid body", "schema": {"$ref": "#/definitions/response.Response"}}}}
        },
        "/skills/{id}": {
            "get": {"tags": ["skills"], "summary": "Get a skill", "parameters": [{"in": "path", "name": "id", "type": "integer", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Skill"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/response.Response"}}}},
            "delete": {"tags": ["skills"], "summary": "Delete a skill", "parameters": [{"in": "path", "name": "id", "type": "integer", "required": true}],
                "responses": {"200": {"description": "OK"}}}
        },
        "/_search/skills": {
            "get": {"tags": ["skills"], "summary": "Full-text search over skills", "parameters": [{"in": "query", "name": "query", "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Skill"}}}}}
        }
    },
    "definitions": {
        "domain.Profil": {
            "type": "object",
            "required": ["user_id", "first_name", "last_name"],
            "properties": {
                "id": {"type": "integer"},
                "user_id": {"type": "integer"},
                "first_name": {"type": "string", "maxLength": 100},
                "last_name": {"type": "string", "maxLength": 100},
                "title": {"type": "string", "maxLength": 150},
                "bio": {"type": "string", "maxLength": 2000},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "location": {"type": "string", "maxLength": 150},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "domain.Skill": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string", "maxLength": 100},
                "category": {"type": "string", "maxLength": 100},
                "level": {"type": "integer", "minimum": 0, "maximum": 100},
                "description": {"type": "string", "maxLength": 1000},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "response.Response": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "data": {},
                "error": {},
                "request_id": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Profile Backend API",
	Description:      "Profils and skills with full-text search.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
