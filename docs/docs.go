// Package docs registers the OpenAPI document served at /swagger/.
// Regenerate with: swag init -g cmd/server/main.go -o docs
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
        "/healthz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["ops"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "data.status is ok", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "503": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/rsvp": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "List all RSVPs",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.ListRSVPsSuccessResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            },
            "post": {
                "description": "Creates an RSVP and returns it with the guest's secret update link. Rejected after the RSVP deadline.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["guest"],
                "summary": "Submit an RSVP",
                "parameters": [
                    {"description": "RSVP", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.RSVPInputRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/controllers.CreateRSVPSuccessResponse"}},
                    "400": {"description": "error.code: validation_failed or bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "403": {"description": "error.code: deadline_passed", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "409": {"description": "error.code: duplicate_email", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "429": {"description": "error.code: rate_limited", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/rsvp/event-info": {
            "get": {
                "produces": ["application/json"],
                "tags": ["guest"],
                "summary": "Get event details and RSVP deadline status",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.EventInfoSuccessResponse"}}
                }
            }
        },
        "/rsvp/summary": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Get RSVP totals",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.SummarySuccessResponse"}}
                }
            }
        },
        "/rsvp/attending/yes": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "List attending RSVPs with guest totals",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.ListByAttendanceSuccessResponse"}}
                }
            }
        },
        "/rsvp/attending/no": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "List RSVPs that declined",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.ListByAttendanceSuccessResponse"}}
                }
            }
        },
        "/rsvp/token/{token}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["guest"],
                "summary": "Get an RSVP by its update token",
                "parameters": [{"type": "string", "description": "Update token", "name": "token", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.RSVPSuccessResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            },
            "put": {
                "description": "Switching attending to true without counts defaults numOfGuests to 1 and numOfChildren to 0. Rejected after the RSVP deadline.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["guest"],
                "summary": "Update your RSVP with its update token",
                "parameters": [
                    {"type": "string", "description": "Update token", "name": "token", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.RSVPInputRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.RSVPSuccessResponse"}},
                    "400": {"description": "error.code: validation_failed or bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "403": {"description": "error.code: deadline_passed", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "409": {"description": "error.code: duplicate_email", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/rsvp/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Get an RSVP by ID",
                "parameters": [{"type": "string", "description": "RSVP ID (UUID)", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.RSVPSuccessResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            },
            "put": {
                "description": "Admin update; not subject to the RSVP deadline.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Update an RSVP by ID",
                "parameters": [
                    {"type": "string", "description": "RSVP ID (UUID)", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.RSVPInputRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.RSVPSuccessResponse"}},
                    "400": {"description": "error.code: validation_failed or bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "409": {"description": "error.code: duplicate_email", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Delete an RSVP by ID",
                "parameters": [{"type": "string", "description": "RSVP ID (UUID)", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "data.message and data.id", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "helpers.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "errors": {"type": "array", "items": {"type": "string"}},
                "details": {}
            }
        },
        "helpers.APIResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "controllers.RSVPInputRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "Ana Silva"},
                "email": {"type": "string", "example": "ana@example.com"},
                "attending": {"type": "boolean", "example": true},
                "numOfGuests": {"type": "integer", "example": 2},
                "numOfChildren": {"type": "integer", "example": 1}
            }
        },
        "domain.RSVP": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "attending": {"type": "boolean"},
                "numOfGuests": {"type": "integer"},
                "numOfChildren": {"type": "integer"},
                "updateToken": {"type": "string"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "domain.RSVPSummary": {
            "type": "object",
            "properties": {
                "totalResponses": {"type": "integer"},
                "attending": {"type": "integer"},
                "notAttending": {"type": "integer"},
                "totalGuests": {"type": "integer"},
                "totalChildren": {"type": "integer"},
                "totalPeople": {"type": "integer"}
            }
        },
        "domain.EventInfo": {
            "type": "object",
            "properties": {
                "eventName": {"type": "string"},
                "eventDate": {"type": "string"},
                "eventLocation": {"type": "string"},
                "rsvpDeadline": {"type": "string"},
                "isDeadlinePassed": {"type": "boolean"},
                "canStillRSVP": {"type": "boolean"},
                "daysUntilDeadline": {"type": "integer"},
                "daysUntilEvent": {"type": "integer"}
            }
        },
        "controllers.CreateRSVPSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "object",
                    "properties": {
                        "message": {"type": "string"},
                        "rsvp": {"$ref": "#/definitions/domain.RSVP"},
                        "updateLink": {"type": "string"}
                    }
                },
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "controllers.RSVPSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "object",
                    "properties": {
                        "message": {"type": "string"},
                        "rsvp": {"$ref": "#/definitions/domain.RSVP"}
                    }
                },
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "controllers.ListRSVPsSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "object",
                    "properties": {
                        "message": {"type": "string"},
                        "count": {"type": "integer"},
                        "rsvps": {"type": "array", "items": {"$ref": "#/definitions/domain.RSVP"}}
                    }
                },
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "controllers.ListByAttendanceSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "object",
                    "properties": {
                        "message": {"type": "string"},
                        "count": {"type": "integer"},
                        "totalGuests": {"type": "integer"},
                        "totalChildren": {"type": "integer"},
                        "rsvps": {"type": "array", "items": {"$ref": "#/definitions/domain.RSVP"}}
                    }
                },
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "controllers.SummarySuccessResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/domain.RSVPSummary"},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "controllers.EventInfoSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/domain.EventInfo"},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Event RSVP API",
	Description:      "Guest RSVP submission, token-based self-service updates and admin reporting for a single event.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
