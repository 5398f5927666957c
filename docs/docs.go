package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "description": "Personal task tracking API with categories, due dates and priorities.",
        "title": "Todo List API",
        "version": "1.0"
    },
    "host": "localhost:5000",
    "basePath": "/",
    "schemes": ["http"],
    "paths": {
        "/health": {
            "get": {
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {
                    "200": {"description": "Server is healthy"}
                }
            }
        },
        "/auth/register": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Register a new account",
                "responses": {
                    "201": {"description": "Account created, token issued"},
                    "400": {"description": "Invalid payload"},
                    "409": {"description": "Email or username already taken"}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Authenticate and receive a token",
                "responses": {
                    "200": {"description": "Token issued"},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/auth/check": {
            "get": {
                "tags": ["Authentication"],
                "summary": "Verify the presented bearer token",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Token is valid"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/categories": {
            "get": {
                "tags": ["Categories"],
                "summary": "List own categories",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Categories owned by the caller"},
                    "401": {"description": "Unauthorized"}
                }
            },
            "post": {
                "tags": ["Categories"],
                "summary": "Create a category",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "201": {"description": "Category created"},
                    "400": {"description": "Name missing"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/categories/{id}": {
            "get": {
                "tags": ["Categories"],
                "summary": "Get own category",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Category"},
                    "401": {"description": "Unauthorized"},
                    "404": {"description": "Not found"}
                }
            },
            "delete": {
                "tags": ["Categories"],
                "summary": "Delete own category (referencing tasks keep a dangling categoryId)",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Deleted"},
                    "401": {"description": "Unauthorized"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/tasks": {
            "get": {
                "tags": ["Tasks"],
                "summary": "List own tasks with computed overdue flag",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Tasks owned by the caller"},
                    "401": {"description": "Unauthorized"}
                }
            },
            "post": {
                "tags": ["Tasks"],
                "summary": "Create a task",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "201": {"description": "Task created"},
                    "400": {"description": "Validation failure (field-tagged)"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/tasks/{id}": {
            "get": {
                "tags": ["Tasks"],
                "summary": "Get own task",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Task"},
                    "401": {"description": "Unauthorized"},
                    "404": {"description": "Not found"}
                }
            },
            "put": {
                "tags": ["Tasks"],
                "summary": "Replace own task (full replace, absent fields cleared)",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Task replaced"},
                    "400": {"description": "Validation failure (field-tagged)"},
                    "401": {"description": "Unauthorized"},
                    "404": {"description": "Not found"}
                }
            },
            "delete": {
                "tags": ["Tasks"],
                "summary": "Delete own task",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Deleted"},
                    "401": {"description": "Unauthorized"},
                    "404": {"description": "Not found"}
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header",
            "description": "Type 'Bearer' followed by a space and JWT token"
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5000",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Todo List API",
	Description:      "Personal task tracking API with categories, due dates and priorities.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
