// Package docs registers the OpenAPI description served under /swagger.
// Regenerate with: swag init -g cmd/rentsoft/main.go -o docs
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
        "/auth/register": {"post": {"tags": ["auth"], "summary": "Register a new tenant", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "409": {"description": "Conflict"}}}},
        "/auth/login": {"post": {"tags": ["auth"], "summary": "Login", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}, "429": {"description": "Too Many Requests"}}}},
        "/auth/logout": {"post": {"security": [{"BearerAuth": []}], "tags": ["auth"], "summary": "Logout", "responses": {"204": {"description": "No Content"}}}},
        "/auth/me": {"get": {"security": [{"BearerAuth": []}], "tags": ["auth"], "summary": "Current user", "responses": {"200": {"description": "OK"}}}},
        "/users": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "List users", "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Create a user with any role", "responses": {"201": {"description": "Created"}, "403": {"description": "Forbidden"}, "409": {"description": "Conflict"}}}
        },
        "/properties": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["properties"], "summary": "List properties", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["properties"], "summary": "Create a property", "responses": {"201": {"description": "Created"}, "403": {"description": "Forbidden"}}}
        },
        "/properties/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["properties"], "summary": "Get a property", "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}},
            "patch": {"security": [{"BearerAuth": []}], "tags": ["properties"], "summary": "Update a property", "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["properties"], "summary": "Delete a property with its units and amenities", "responses": {"204": {"description": "No Content"}, "403": {"description": "Forbidden"}}}
        },
        "/properties/{id}/amenities": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["properties"], "summary": "List a property's amenities", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["properties"], "summary": "Add an amenity to a property", "responses": {"201": {"description": "Created"}}}
        },
        "/units": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["units"], "summary": "List units", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["units"], "summary": "Create a unit", "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}}
        },
        "/units/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["units"], "summary": "Get a unit", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "patch": {"security": [{"BearerAuth": []}], "tags": ["units"], "summary": "Update a unit", "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}}
        },
        "/leases": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["leases"], "summary": "List leases", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["leases"], "summary": "Create a lease", "responses": {"201": {"description": "Created"}, "404": {"description": "Not Found"}}}
        },
        "/leases/{id}/status": {
            "patch": {"security": [{"BearerAuth": []}], "tags": ["leases"], "summary": "Change a lease's status", "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}}
        },
        "/applications": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["applications"], "summary": "List rental applications", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["applications"], "summary": "Submit a rental application", "responses": {"201": {"description": "Created"}}}
        },
        "/maintenance": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["maintenance"], "summary": "List maintenance requests", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["maintenance"], "summary": "Report a maintenance issue", "responses": {"201": {"description": "Created"}}}
        },
        "/payments": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["payments"], "summary": "List payments", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["payments"], "summary": "Record a payment", "responses": {"201": {"description": "Created"}}}
        },
        "/dashboard": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["dashboard"], "summary": "Portfolio counters", "responses": {"200": {"description": "OK"}}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "RentSoft Property API",
	Description:      "Property management: properties, units, leases, applications, maintenance and payments.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
