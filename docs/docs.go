// Package docs holds the swagger document served at /swagger. It mirrors the
// handler annotations; `swag init -g cmd/server/main.go` regenerates it.
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
        "/api/v1/bankaccount": {
            "post": {
                "description": "Opens an account for the given holder name.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Create a bank account",
                "parameters": [
                    {"description": "Account holder", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/account.CreateAccountRequest"}}
                ],
                "responses": {
                    "201": {"description": "Account created", "schema": {"allOf": [{"$ref": "#/definitions/common.Response"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/account.AccountResponse"}}}]}},
                    "400": {"description": "Invalid request", "schema": {"$ref": "#/definitions/common.ProblemDetails"}},
                    "429": {"description": "Too many requests", "schema": {"$ref": "#/definitions/common.ProblemDetails"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/common.ProblemDetails"}}
                }
            }
        },
        "/api/v1/bankaccount/{id}": {
            "get": {
                "description": "Lists the account's balances; amounts are strings with four decimal places.",
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Get balances",
                "parameters": [
                    {"type": "integer", "description": "Account ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Balances fetched", "schema": {"allOf": [{"$ref": "#/definitions/common.Response"}, {"type": "object", "properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/account.BalanceResponse"}}}}]}},
                    "400": {"description": "Invalid account ID", "schema": {"$ref": "#/definitions/common.ProblemDetails"}},
                    "404": {"description": "Account not found", "schema": {"$ref": "#/definitions/common.ProblemDetails"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/common.ProblemDetails"}}
                }
            }
        },
        "/api/v1/bankaccount/{id}/currency": {
            "post": {
                "description": "Debits amount from fromCurrency and credits the converted value to toCurrency.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Exchange currency",
                "parameters": [
                    {"type": "integer", "description": "Account ID", "name": "id", "in": "path", "required": true},
                    {"description": "Exchange details", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/account.ExchangeRequest"}}
                ],
                "responses": {
                    "200": {"description": "Exchange successful", "schema": {"$ref": "#/definitions/common.Response"}},
                    "400": {"description": "Insufficient funds, unsupported currency or invalid request", "schema": {"$ref": "#/definitions/common.ProblemDetails"}},
                    "404": {"description": "Account not found", "schema": {"$ref": "#/definitions/common.ProblemDetails"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/common.ProblemDetails"}}
                }
            }
        },
        "/api/v1/bankaccount/{id}/debit": {
            "post": {
                "description": "Debits amount from an existing currency balance after the external system check.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Debit funds",
                "parameters": [
                    {"type": "integer", "description": "Account ID", "name": "id", "in": "path", "required": true},
                    {"description": "Debit details", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/account.MoneyRequest"}}
                ],
                "responses": {
                    "200": {"description": "Debit successful", "schema": {"$ref": "#/definitions/common.Response"}},
                    "400": {"description": "Insufficient funds or invalid request", "schema": {"$ref": "#/definitions/common.ProblemDetails"}},
                    "404": {"description": "Account or currency not found", "schema": {"$ref": "#/definitions/common.ProblemDetails"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/common.ProblemDetails"}},
                    "503": {"description": "External system unavailable", "schema": {"$ref": "#/definitions/common.ProblemDetails"}}
                }
            }
        },
        "/api/v1/bankaccount/{id}/deposit": {
            "post": {
                "description": "Credits amount to the currency balance, creating the balance on first use.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Deposit funds",
                "parameters": [
                    {"type": "integer", "description": "Account ID", "name": "id", "in": "path", "required": true},
                    {"description": "Deposit details", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/account.MoneyRequest"}}
                ],
                "responses": {
                    "200": {"description": "Deposit successful", "schema": {"$ref": "#/definitions/common.Response"}},
                    "400": {"description": "Invalid request", "schema": {"$ref": "#/definitions/common.ProblemDetails"}},
                    "404": {"description": "Account not found", "schema": {"$ref": "#/definitions/common.ProblemDetails"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/common.ProblemDetails"}}
                }
            }
        },
        "/api/v1/currencies": {
            "get": {
                "description": "Lists every currency the ledger accepts with its fixed rate to EUR.",
                "produces": ["application/json"],
                "tags": ["currencies"],
                "summary": "List supported currencies",
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/common.Response"}, {"type": "object", "properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/currency.RateResponse"}}}}]}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/common.ProblemDetails"}}
                }
            }
        }
    },
    "definitions": {
        "account.AccountResponse": {
            "type": "object",
            "properties": {"id": {"type": "integer"}, "name": {"type": "string"}}
        },
        "account.BalanceResponse": {
            "type": "object",
            "properties": {"balance": {"type": "string", "example": "100.0000"}, "currency": {"type": "string", "example": "EUR"}}
        },
        "account.CreateAccountRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {"name": {"type": "string", "maxLength": 255}}
        },
        "account.ExchangeRequest": {
            "type": "object",
            "required": ["amount", "fromCurrency", "toCurrency"],
            "properties": {
                "amount": {"type": "number", "minimum": 0.01},
                "fromCurrency": {"type": "string"},
                "toCurrency": {"type": "string"}
            }
        },
        "account.MoneyRequest": {
            "type": "object",
            "required": ["amount", "currency"],
            "properties": {"amount": {"type": "number", "minimum": 0.01}, "currency": {"type": "string"}}
        },
        "common.ProblemDetails": {
            "type": "object",
            "properties": {
                "detail": {"type": "string"},
                "errors": {},
                "instance": {"type": "string"},
                "status": {"type": "integer"},
                "title": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "common.Response": {
            "type": "object",
            "properties": {"data": {}, "message": {"type": "string"}, "status": {"type": "integer"}}
        },
        "currency.RateResponse": {
            "type": "object",
            "properties": {"code": {"type": "string", "example": "USD"}, "rate_to_eur": {"type": "string", "example": "0.85"}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:3000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Bank Account API",
	Description:      "Multi-currency bank account ledger",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
