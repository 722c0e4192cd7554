package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Staff Panel API",
        "description": "Roster, schedule, and payout backend for the staff dashboard",
        "version": "0.1.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Teachers", "description": "Staff roster management"},
        {"name": "Schedule", "description": "Per-teacher daily slot grid"},
        {"name": "Dashboard", "description": "Roster and engagement overview"},
        {"name": "Payouts", "description": "Busy-hour payout derivation"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check including blob-store reachability",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/api/v1/teachers": {
            "get": {
                "tags": ["Teachers"],
                "summary": "List teachers",
                "parameters": [
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "department", "in": "query", "type": "string"},
                    {"name": "status", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "OK"}
                }
            },
            "post": {
                "tags": ["Teachers"],
                "summary": "Create teacher",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateTeacherRequest"}}
                ],
                "responses": {
                    "201": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "Created"},
                    "400": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "Validation error"}
                }
            }
        },
        "/api/v1/teachers/{id}": {
            "get": {
                "tags": ["Teachers"],
                "summary": "Get teacher detail",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "OK"},
                    "404": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "Not found"}
                }
            },
            "patch": {
                "tags": ["Teachers"],
                "summary": "Partially update teacher",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/TeacherPatch"}}
                ],
                "responses": {
                    "204": {"description": "No content"}
                }
            },
            "delete": {
                "tags": ["Teachers"],
                "summary": "Delete teacher and cascade to its schedule entry",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No content"}
                }
            }
        },
        "/api/v1/teachers/{id}/engagement": {
            "get": {
                "tags": ["Teachers"],
                "summary": "Daily engaged hours for one teacher",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "OK"}
                }
            }
        },
        "/api/v1/schedule": {
            "get": {
                "tags": ["Schedule"],
                "summary": "Get the reconciled schedule grid",
                "responses": {
                    "200": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "OK"}
                }
            }
        },
        "/api/v1/schedule/{teacherId}/slots/{slot}": {
            "put": {
                "tags": ["Schedule"],
                "summary": "Update one field of one schedule slot",
                "parameters": [
                    {"name": "teacherId", "in": "path", "required": true, "type": "string"},
                    {"name": "slot", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateSlotRequest"}}
                ],
                "responses": {
                    "200": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "OK"},
                    "400": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "Unknown slot field"}
                }
            }
        },
        "/api/v1/dashboard": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Roster and engagement overview",
                "responses": {
                    "200": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "OK"}
                }
            }
        },
        "/api/v1/payouts": {
            "get": {
                "tags": ["Payouts"],
                "summary": "Per-teacher payout derivation",
                "responses": {
                    "200": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "OK"}
                }
            }
        },
        "/api/v1/payouts/report": {
            "get": {
                "tags": ["Payouts"],
                "summary": "Download the payout report as CSV or PDF",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "Report file"},
                    "404": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "Exports not enabled"}
                }
            }
        }
    },
    "definitions": {
        "CreateTeacherRequest": {
            "type": "object",
            "required": ["name", "email", "subject", "department", "hourlyRate"],
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "subject": {"type": "string"},
                "department": {"type": "string"},
                "experience": {"type": "integer"},
                "location": {"type": "string"},
                "rating": {"type": "number"},
                "studentsCount": {"type": "integer"},
                "hourlyRate": {"type": "number"},
                "bio": {"type": "string"},
                "qualifications": {"type": "array", "items": {"type": "string"}},
                "specializations": {"type": "array", "items": {"type": "string"}}
            }
        },
        "TeacherPatch": {
            "type": "object",
            "description": "Partial update; absent fields keep the stored value, list fields are replaced wholesale"
        },
        "UpdateSlotRequest": {
            "type": "object",
            "required": ["field"],
            "properties": {
                "field": {"type": "string"},
                "value": {"type": "string"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
