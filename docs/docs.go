// Package docs holds the OpenAPI description served at /swagger/. It mirrors
// the godoc annotations on the controllers; `go generate ./cmd/api` rewrites it
// with swag from those annotations.
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
        "/api": {
            "get": {
                "produces": ["application/json"],
                "tags": ["meta"],
                "summary": "API index",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.APIIndex"}}
                }
            }
        },
        "/donations": {
            "get": {
                "description": "Returns every donation regardless of status or freshness, newest first.",
                "produces": ["application/json"],
                "tags": ["donations"],
                "summary": "List all donations",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Donation"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.APIError"}},
                    "503": {"description": "Database not configured or unavailable", "schema": {"$ref": "#/definitions/helpers.APIError"}}
                }
            },
            "post": {
                "description": "Validates and stores a donation. Cooked food is claimable for four hours; packed food has no deadline. isFresh must be true.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["donations"],
                "summary": "List surplus food",
                "parameters": [
                    {"description": "Donation", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.DonationInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Donation"}},
                    "400": {"description": "message and offending field", "schema": {"$ref": "#/definitions/helpers.APIError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.APIError"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/helpers.APIError"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["meta"],
                "summary": "Liveness and store status",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.Health"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/controllers.Health"}}
                }
            }
        },
        "/inventory": {
            "get": {
                "description": "Returns available donations whose safety window has not passed, newest first. Expiry is evaluated at request time.",
                "produces": ["application/json"],
                "tags": ["donations"],
                "summary": "List claimable donations",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Donation"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.APIError"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/helpers.APIError"}}
                }
            }
        },
        "/ngo-requests": {
            "get": {
                "produces": ["application/json"],
                "tags": ["ngo-requests"],
                "summary": "List NGO requests",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.NgoRequest"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.APIError"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/helpers.APIError"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["ngo-requests"],
                "summary": "Post an NGO food requirement",
                "parameters": [
                    {"description": "NGO request", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.NgoRequestInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.NgoRequest"}},
                    "400": {"description": "message and offending field", "schema": {"$ref": "#/definitions/helpers.APIError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.APIError"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/helpers.APIError"}}
                }
            }
        },
        "/repository": {
            "get": {
                "description": "Running totals per city and food type. NGO requests are counted under food type \"Requested\".",
                "produces": ["application/json"],
                "tags": ["repository"],
                "summary": "Aggregate donated and requested counts",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.FoodTotal"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.APIError"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/helpers.APIError"}}
                }
            }
        }
    },
    "definitions": {
        "controllers.APIIndex": {
            "type": "object",
            "properties": {
                "endpoints": {"type": "array", "items": {"type": "string"}},
                "name": {"type": "string"},
                "version": {"type": "string"}
            }
        },
        "controllers.Health": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "store": {"type": "string"}
            }
        },
        "domain.Donation": {
            "type": "object",
            "properties": {
                "area": {"type": "string"},
                "city": {"type": "string"},
                "contactNumber": {"type": "string"},
                "createdAt": {"type": "string"},
                "donorName": {"type": "string"},
                "foodType": {"type": "string", "enum": ["Cooked", "Packed"]},
                "id": {"type": "integer"},
                "isFresh": {"type": "boolean"},
                "quantity": {"type": "string"},
                "safeUntil": {"type": "string"},
                "status": {"type": "string", "enum": ["pending", "available", "claimed"]}
            }
        },
        "domain.DonationInput": {
            "type": "object",
            "required": ["city", "contactNumber", "donorName", "foodType", "isFresh", "quantity"],
            "properties": {
                "area": {"type": "string"},
                "city": {"type": "string"},
                "contactNumber": {"type": "string", "minLength": 10},
                "donorName": {"type": "string"},
                "foodType": {"type": "string", "enum": ["Cooked", "Packed"]},
                "isFresh": {"description": "IsFresh confirms the food was prepared within the last two hours.", "type": "boolean"},
                "quantity": {"type": "string"}
            }
        },
        "domain.FoodTotal": {
            "type": "object",
            "properties": {
                "city": {"type": "string"},
                "foodType": {"type": "string"},
                "id": {"type": "integer"},
                "totalDonated": {"type": "integer"},
                "totalRequested": {"type": "integer"},
                "updatedAt": {"type": "string"}
            }
        },
        "domain.NgoRequest": {
            "type": "object",
            "properties": {
                "city": {"type": "string"},
                "contactNumber": {"type": "string"},
                "createdAt": {"type": "string"},
                "id": {"type": "integer"},
                "ngoName": {"type": "string"},
                "requirements": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "domain.NgoRequestInput": {
            "type": "object",
            "required": ["city", "contactNumber", "ngoName", "requirements"],
            "properties": {
                "city": {"type": "string"},
                "contactNumber": {"type": "string", "minLength": 10},
                "ngoName": {"type": "string"},
                "requirements": {"type": "string"}
            }
        },
        "helpers.APIError": {
            "type": "object",
            "properties": {
                "field": {"description": "Field names the rejected input field on validation errors.", "type": "string"},
                "message": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "AaharSevaX food donation API",
	Description:      "Connects surplus-food donors with NGOs. Cooked food is claimable for four hours after listing.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
