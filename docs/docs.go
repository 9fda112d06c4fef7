// Package docs registers the OpenAPI description served at /swagger.
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
        "/parse": {
            "post": {
                "description": "Extract a structured trip plan from a markdown itinerary",
                "consumes": ["application/json", "text/plain", "text/markdown"],
                "produces": ["application/json"],
                "tags": ["parse"],
                "summary": "Parse a trip plan document",
                "parameters": [
                    {"description": "Document to parse", "name": "request", "in": "body", "required": true,
                     "schema": {"$ref": "#/definitions/handler.ParseRequest"}}
                ],
                "responses": {
                    "200": {"description": "Extracted trip plan", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "400": {"description": "Empty or non-text document", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}},
                    "413": {"description": "Document too large", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/plans": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["plans"],
                "summary": "List plans",
                "parameters": [
                    {"type": "integer", "default": 0, "name": "offset", "in": "query"},
                    {"type": "integer", "default": 20, "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "List of plans", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["plans"],
                "summary": "Store and parse a trip plan",
                "parameters": [
                    {"description": "Plan document", "name": "request", "in": "body", "required": true,
                     "schema": {"$ref": "#/definitions/handler.CreatePlanRequest"}}
                ],
                "responses": {
                    "201": {"description": "Plan created and parsed", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "400": {"description": "Invalid request", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}},
                    "413": {"description": "Document too large", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/plans/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["plans"],
                "summary": "Get plan by ID",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Plan details", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "404": {"description": "Plan not found", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["plans"],
                "summary": "Delete a plan",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Plan deleted", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "404": {"description": "Plan not found", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/plans/{id}/source": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["plans"],
                "summary": "Get the raw document link",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Presigned URL", "schema": {"$ref": "#/definitions/handler.Response"}}
                }
            }
        },
        "/plans/{id}/reparse": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["plans"],
                "summary": "Queue a plan for re-extraction",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "202": {"description": "Plan queued", "schema": {"$ref": "#/definitions/handler.Response"}}
                }
            }
        },
        "/plans/{id}/export": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/octet-stream"],
                "tags": ["plans"],
                "summary": "Export a plan",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"enum": ["csv", "xlsx"], "type": "string", "default": "csv", "name": "format", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Exported plan", "schema": {"type": "file"}},
                    "409": {"description": "Plan not parsed", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/plans/{id}/share": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["plans"],
                "summary": "Email a plan",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"description": "Recipient", "name": "request", "in": "body",
                     "schema": {"$ref": "#/definitions/handler.SharePlanRequest"}}
                ],
                "responses": {
                    "200": {"description": "Email sent", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "400": {"description": "Invalid email", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        }
    },
    "definitions": {
        "handler.APIError": {
            "type": "object",
            "properties": {"code": {"type": "string"}, "message": {"type": "string"}}
        },
        "handler.ErrorResponseBody": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": false},
                "error": {"$ref": "#/definitions/handler.APIError"}
            }
        },
        "handler.Response": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "data": {},
                "meta": {"$ref": "#/definitions/handler.PagMeta"}
            }
        },
        "handler.PagMeta": {
            "type": "object",
            "properties": {"total": {"type": "integer"}, "offset": {"type": "integer"}, "limit": {"type": "integer"}}
        },
        "handler.ParseRequest": {
            "type": "object",
            "required": ["document"],
            "properties": {"document": {"type": "string"}}
        },
        "handler.CreatePlanRequest": {
            "type": "object",
            "required": ["document"],
            "properties": {"name": {"type": "string"}, "document": {"type": "string"}}
        },
        "handler.SharePlanRequest": {
            "type": "object",
            "properties": {"email": {"type": "string"}}
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
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Wanderplan API",
	Description:      "Turns generated markdown itineraries into structured trip plans.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
