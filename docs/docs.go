// Package docs описание API в формате Swagger 2.0 для /docs.
//
// Содержимое соответствует аннотациям обработчиков и обновляется командой
// swag init -g cmd/subscriptions/main.go.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/subscriptions": {
            "get": {
                "description": "Возвращает текущую подписку. Истёкшая подписка получает статус expired.",
                "produces": ["application/json"],
                "tags": ["Subscriptions"],
                "summary": "Получить подписку",
                "responses": {
                    "200": {
                        "description": "Текущая подписка",
                        "schema": {"$ref": "#/definitions/models.SubscriptionResponse"}
                    },
                    "404": {
                        "description": "Подписки нет",
                        "schema": {"$ref": "#/definitions/response.ErrorResponse"}
                    },
                    "500": {
                        "description": "Ошибка сервера",
                        "schema": {"$ref": "#/definitions/response.ErrorResponse"}
                    }
                }
            },
            "post": {
                "description": "Покупает подписку или меняет срок текущей. Для действующей подписки списывается или возвращается разница в цене.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Subscriptions"],
                "summary": "Купить или сменить подписку",
                "parameters": [
                    {
                        "description": "Продукт и число месяцев",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.SubscriptionInput"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Сохранённая подписка",
                        "schema": {"$ref": "#/definitions/models.SubscriptionResponse"}
                    },
                    "400": {
                        "description": "Ошибка валидации или платёжного сервиса",
                        "schema": {"$ref": "#/definitions/response.ErrorResponse"}
                    },
                    "500": {
                        "description": "Ошибка сервера",
                        "schema": {"$ref": "#/definitions/response.ErrorResponse"}
                    }
                }
            },
            "delete": {
                "description": "Отменяет подписку. Действующая подписка возвращается полной стоимостью.",
                "produces": ["application/json"],
                "tags": ["Subscriptions"],
                "summary": "Отменить подписку",
                "responses": {
                    "200": {
                        "description": "Подписка отменена",
                        "schema": {"$ref": "#/definitions/response.MessageResponse"}
                    },
                    "400": {
                        "description": "Подписка уже отменена или возврат не прошёл",
                        "schema": {"$ref": "#/definitions/response.ErrorResponse"}
                    },
                    "404": {
                        "description": "Подписки нет",
                        "schema": {"$ref": "#/definitions/response.ErrorResponse"}
                    },
                    "500": {
                        "description": "Ошибка сервера",
                        "schema": {"$ref": "#/definitions/response.ErrorResponse"}
                    }
                }
            }
        }
    },
    "definitions": {
        "models.SubscriptionInput": {
            "type": "object",
            "properties": {
                "monthsPurchased": {"type": "integer", "example": 3},
                "product": {"type": "string", "example": "premium"}
            }
        },
        "models.SubscriptionResponse": {
            "type": "object",
            "properties": {
                "dateExpires": {"type": "string", "example": "2024-04-01T00:00:00.000Z"},
                "datePurchased": {"type": "string", "example": "2024-01-01T00:00:00.000Z"},
                "monthsPurchased": {"type": "integer", "example": 3},
                "product": {"type": "string", "example": "premium"},
                "status": {"type": "string", "example": "active"}
            }
        },
        "response.ErrorResponse": {
            "type": "object",
            "properties": {
                "details": {"type": "array", "items": {"type": "string"}},
                "error": {"type": "string", "example": "Validation failed"}
            }
        },
        "response.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "Subscription cancelled successfully"}
            }
        }
    }
}`

// SwaggerInfo общие сведения об API; host и basePath можно поменять при запуске.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:3001",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Subscriptions API",
	Description:      "API для покупки, смены и отмены подписки",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
