// Package swagger holds the OpenAPI document served under /swagger/*.
// It is maintained by hand to match the @Router annotations in feature/assets/handler.go;
// running `swag init -g cmd/start.go -o docs/swagger` regenerates an equivalent file.
package swagger

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
        "/assets": {
            "post": {
                "description": "Uploads a file to the bucket under a unique, date-bucketed name.",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["assets"],
                "summary": "Save Asset",
                "parameters": [
                    {"type": "file", "description": "File to store", "name": "file", "in": "formData", "required": true},
                    {"type": "string", "description": "MIME type, defaults to the part's Content-Type", "name": "type", "in": "formData"}
                ],
                "responses": {
                    "200": {"description": "Public URL", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "delete": {
                "description": "Deletes filename, optionally inside dir.",
                "produces": ["application/json"],
                "tags": ["assets"],
                "summary": "Delete Asset",
                "parameters": [
                    {"type": "string", "description": "File name", "name": "filename", "in": "query", "required": true},
                    {"type": "string", "description": "Target directory", "name": "dir", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Deleted", "schema": {"type": "object", "additionalProperties": {"type": "boolean"}}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/assets/exists": {
            "get": {
                "description": "Checks whether filename exists, optionally inside dir.",
                "produces": ["application/json"],
                "tags": ["assets"],
                "summary": "Asset Exists",
                "parameters": [
                    {"type": "string", "description": "File name", "name": "filename", "in": "query", "required": true},
                    {"type": "string", "description": "Target directory", "name": "dir", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Existence", "schema": {"type": "object", "additionalProperties": {"type": "boolean"}}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/assets/read": {
            "get": {
                "description": "Streams the object at path back to the caller.",
                "produces": ["application/octet-stream"],
                "tags": ["assets"],
                "summary": "Read Asset",
                "parameters": [
                    {"type": "string", "description": "Object path", "name": "path", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "Object content", "schema": {"type": "file"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Ghost GCS Storage API",
	Description:      "Asset storage host backed by Google Cloud Storage.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
