// Package docs holds the Swagger document served under /swagger.
// Keep it in sync with the @ annotations on the API handlers (swag init -g cmd/grocer/main.go).
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
        "/cart": {
            "get": {
                "produces": ["application/json"],
                "tags": ["cart"],
                "summary": "Get cart",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"type": "string"}}
                    }
                }
            },
            "post": {
                "description": "不檢查商品是否存在，名稱原樣存入購物車",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["cart"],
                "summary": "Add to cart",
                "parameters": [
                    {
                        "description": "商品名稱",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.AddToCartRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CartResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.HTTPError"}}
                }
            }
        },
        "/feedback": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["feedback"],
                "summary": "Submit feedback",
                "parameters": [
                    {
                        "description": "意見內容",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.FeedbackRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.HTTPError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.HTTPError"}}
                }
            }
        },
        "/orders": {
            "post": {
                "description": "先檢查購物車是否為空 (400)，再檢查是否登入 (401)",
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Place order",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.HTTPError"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.HTTPError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.HTTPError"}}
                }
            }
        },
        "/ping": {
            "get": {
                "description": "回傳 pong，並檢查資料庫連線是否正常",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health Check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.PingResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.HTTPError"}}
                }
            }
        },
        "/products": {
            "get": {
                "description": "依 id 排序回傳所有商品；沒有商品時回傳空陣列",
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "List products",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Product"}}
                    },
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.HTTPError"}}
                }
            }
        }
    },
    "definitions": {
        "dto.AddToCartRequest": {
            "type": "object",
            "required": ["product_name"],
            "properties": {"product_name": {"type": "string", "example": "Milk"}}
        },
        "dto.CartResponse": {
            "type": "object",
            "properties": {
                "cart": {"type": "array", "items": {"type": "string"}},
                "message": {"type": "string", "example": "Milk added to cart"}
            }
        },
        "dto.FeedbackRequest": {
            "type": "object",
            "required": ["feedback"],
            "properties": {"feedback": {"type": "string", "example": "Great produce!"}}
        },
        "dto.HTTPError": {
            "type": "object",
            "properties": {"message": {"description": "message 錯誤描述", "type": "string", "example": "Invalid input!"}}
        },
        "dto.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string", "example": "Feedback submitted!"}}
        },
        "handler.PingResponse": {
            "type": "object",
            "properties": {"message": {"description": "回應訊息", "type": "string", "example": "pong"}}
        },
        "model.Product": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "price": {"type": "number"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Grocer API",
	Description:      "Grocer 商店的 JSON API（商品、購物車、訂單、意見回饋）",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
