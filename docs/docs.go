// Package docs registers the OpenAPI document served at /swagger.
// Regenerate with: swag init -g cmd/server/main.go
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
        "/auth/token": {"post": {"tags": ["auth"], "summary": "Log in and get a token", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}},
        "/auth/register": {"post": {"tags": ["auth"], "summary": "Register a buyer", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}},
        "/auth/logout": {"post": {"security": [{"BearerAuth": []}], "tags": ["auth"], "summary": "Revoke the current token", "responses": {"200": {"description": "OK"}}}},
        "/users": {"get": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "List users", "responses": {"200": {"description": "OK"}}}},
        "/users/{username}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Get a user", "parameters": [{"type": "string", "name": "username", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "patch": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Update a user", "parameters": [{"type": "string", "name": "username", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Remove a user", "parameters": [{"type": "string", "name": "username", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/users/{username}/orders": {"get": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "List a user's orders", "parameters": [{"type": "string", "name": "username", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/sellers": {"get": {"tags": ["sellers"], "summary": "List sellers", "responses": {"200": {"description": "OK"}}}},
        "/sellers/register": {"post": {"tags": ["sellers"], "summary": "Register a seller", "responses": {"201": {"description": "Created"}}}},
        "/sellers/{sellerId}": {
            "get": {"tags": ["sellers"], "summary": "Get a seller", "parameters": [{"type": "integer", "name": "sellerId", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "patch": {"security": [{"BearerAuth": []}], "tags": ["sellers"], "summary": "Update a seller", "parameters": [{"type": "integer", "name": "sellerId", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/sellers/{sellerId}/products": {"get": {"tags": ["sellers"], "summary": "List a seller's products", "parameters": [{"type": "integer", "name": "sellerId", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/sellers/{sellerId}/remove": {"patch": {"security": [{"BearerAuth": []}], "tags": ["sellers"], "summary": "Remove a seller and its user", "parameters": [{"type": "integer", "name": "sellerId", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/products": {"get": {"tags": ["products"], "summary": "List products", "responses": {"200": {"description": "OK"}}}},
        "/products/create": {"post": {"security": [{"BearerAuth": []}], "tags": ["products"], "summary": "Create a product", "responses": {"201": {"description": "Created"}}}},
        "/products/{productId}": {
            "get": {"tags": ["products"], "summary": "Get a product with its reviews", "parameters": [{"type": "integer", "name": "productId", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "patch": {"security": [{"BearerAuth": []}], "tags": ["products"], "summary": "Update a product", "parameters": [{"type": "integer", "name": "productId", "in": "path", "required": true}], "responses": {"201": {"description": "Created"}}}
        },
        "/products/{productId}/remove": {"patch": {"security": [{"BearerAuth": []}], "tags": ["products"], "summary": "Remove a product", "parameters": [{"type": "integer", "name": "productId", "in": "path", "required": true}], "responses": {"201": {"description": "Created"}}}},
        "/orders": {"get": {"security": [{"BearerAuth": []}], "tags": ["orders"], "summary": "List orders", "responses": {"200": {"description": "OK"}}}},
        "/orders/create": {"post": {"security": [{"BearerAuth": []}], "tags": ["orders"], "summary": "Place an order", "responses": {"201": {"description": "Created"}}}},
        "/orders/{orderId}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["orders"], "summary": "Get an order", "parameters": [{"type": "integer", "name": "orderId", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "patch": {"security": [{"BearerAuth": []}], "tags": ["orders"], "summary": "Update an order and its line items", "parameters": [{"type": "integer", "name": "orderId", "in": "path", "required": true}], "responses": {"201": {"description": "Created"}}}
        },
        "/orders/{orderId}/remove": {"patch": {"security": [{"BearerAuth": []}], "tags": ["orders"], "summary": "Remove an order and its line items", "parameters": [{"type": "integer", "name": "orderId", "in": "path", "required": true}], "responses": {"201": {"description": "Created"}}}},
        "/reviews": {"get": {"tags": ["reviews"], "summary": "List reviews", "responses": {"200": {"description": "OK"}}}},
        "/reviews/create": {"post": {"security": [{"BearerAuth": []}], "tags": ["reviews"], "summary": "Review a product", "responses": {"201": {"description": "Created"}}}},
        "/reviews/{reviewId}": {
            "get": {"tags": ["reviews"], "summary": "Get a review", "parameters": [{"type": "integer", "name": "reviewId", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "patch": {"security": [{"BearerAuth": []}], "tags": ["reviews"], "summary": "Update a review", "parameters": [{"type": "integer", "name": "reviewId", "in": "path", "required": true}], "responses": {"201": {"description": "Created"}}}
        },
        "/reviews/{reviewId}/remove": {"patch": {"security": [{"BearerAuth": []}], "tags": ["reviews"], "summary": "Remove a review", "parameters": [{"type": "integer", "name": "reviewId", "in": "path", "required": true}], "responses": {"201": {"description": "Created"}}}},
        "/payment/create-checkout-session": {"post": {"security": [{"BearerAuth": []}], "tags": ["payment"], "summary": "Start a hosted checkout for a cart", "responses": {"200": {"description": "Checkout session id"}}}}
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:3001",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Meat Market API",
	Description:      "Marketplace API for buyers, sellers, products, orders and reviews.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
