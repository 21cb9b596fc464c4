// Package docs holds the OpenAPI document served at /swagger.
// Regenerate with: swag init -g cmd/api/main.go -o docs
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
		"/admin-reports": {
			"post": {
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "Report",
						"schema": {
							"$ref": "#/definitions/dto.CreateAdminReportRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/domain.ReportAdmin"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "File a report to the platform admins",
				"tags": [
					"admin-reports"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"get": {
				"parameters": [
					{
						"name": "owner_id",
						"in": "query",
						"required": false,
						"description": "Filter by owner (admins only)",
						"type": "string"
					},
					{
						"name": "status",
						"in": "query",
						"required": false,
						"description": "pending, in_progress or resolved",
						"type": "string"
					},
					{
						"name": "page",
						"in": "query",
						"required": false,
						"description": "Page number",
						"type": "integer"
					},
					{
						"name": "page_size",
						"in": "query",
						"required": false,
						"description": "Page size",
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.PageResponse-domain.ReportAdmin"
						}
					}
				},
				"summary": "List owner reports",
				"description": "Admins see every report, owners only their own",
				"tags": [
					"admin-reports"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/admin-reports/{id}": {
			"get": {
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Report ID",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.ReportAdmin"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Get an owner report",
				"tags": [
					"admin-reports"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"put": {
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Report ID",
						"type": "string"
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "Status and response",
						"schema": {
							"$ref": "#/definitions/dto.UpdateReportRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.ReportAdmin"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Respond to an owner report",
				"tags": [
					"admin-reports"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/admin/dashboard": {
			"get": {
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.AdminDashboard"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Platform dashboard",
				"tags": [
					"admin"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/admin/jobs/overdue": {
			"post": {
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.SweepResponse"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Run the billing sweep now",
				"description": "Flags overdue invoices, sends due reminders and expires ended contracts and subscriptions",
				"tags": [
					"admin"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/admin/license-keys": {
			"post": {
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "Plan and count",
						"schema": {
							"$ref": "#/definitions/dto.GenerateLicenseKeysRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/domain.LicenseKey"
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Generate license keys",
				"tags": [
					"admin"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"get": {
				"parameters": [
					{
						"name": "status",
						"in": "query",
						"required": false,
						"description": "unused, used or revoked",
						"type": "string"
					},
					{
						"name": "plan",
						"in": "query",
						"required": false,
						"description": "Filter by plan",
						"type": "string"
					},
					{
						"name": "page",
						"in": "query",
						"required": false,
						"description": "Page number",
						"type": "integer"
					},
					{
						"name": "page_size",
						"in": "query",
						"required": false,
						"description": "Page size",
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.PageResponse-domain.LicenseKey"
						}
					}
				},
				"summary": "List license keys",
				"tags": [
					"admin"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/admin/license-keys/{id}/revoke": {
			"post": {
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "License key ID",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.LicenseKey"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Revoke an unused license key",
				"tags": [
					"admin"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/admin/owners": {
			"get": {
				"parameters": [
					{
						"name": "status",
						"in": "query",
						"required": false,
						"description": "pending, active or locked",
						"type": "string"
					},
					{
						"name": "search",
						"in": "query",
						"required": false,
						"description": "Business name or email contains",
						"type": "string"
					},
					{
						"name": "page",
						"in": "query",
						"required": false,
						"description": "Page number",
						"type": "integer"
					},
					{
						"name": "page_size",
						"in": "query",
						"required": false,
						"description": "Page size",
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.PageResponse-domain.Owner"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "List owners",
				"tags": [
					"admin"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/admin/owners/{id}": {
			"get": {
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Owner ID",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.Owner"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Get an owner",
				"tags": [
					"admin"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/admin/owners/{id}/approve": {
			"post": {
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Owner ID",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.Owner"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Approve a pending owner",
				"tags": [
					"admin"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/admin/owners/{id}/lock": {
			"post": {
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Owner ID",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.Owner"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Lock an owner account",
				"tags": [
					"admin"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/admin/owners/{id}/unlock": {
			"post": {
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Owner ID",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.Owner"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Unlock an owner account",
				"tags": [
					"admin"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/admin/users": {
			"get": {
				"parameters": [
					{
						"name": "role",
						"in": "query",
						"required": false,
						"description": "admin, owner or tenant",
						"type": "string"
					},
					{
						"name": "email",
						"in": "query",
						"required": false,
						"description": "Email contains",
						"type": "string"
					},
					{
						"name": "active",
						"in": "query",
						"required": false,
						"description": "Filter by active flag",
						"type": "boolean"
					},
					{
						"name": "page",
						"in": "query",
						"required": false,
						"description": "Page number",
						"type": "integer"
					},
					{
						"name": "page_size",
						"in": "query",
						"required": false,
						"description": "Page size",
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.PageResponse-domain.User"
						}
					}
				},
				"summary": "List user accounts",
				"tags": [
					"admin"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/auth/forgot-password": {
			"post": {
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "Email",
						"schema": {
							"$ref": "#/definitions/dto.ForgotPasswordRequest"
						}
					}
				],
				"responses": {
					"202": {
						"description": "Accepted",
						"schema": {
							"$ref": "#/definitions/dto.MessageResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Request a password reset",
				"description": "Always answers 202 so the endpoint cannot be used to discover accounts",
				"tags": [
					"auth"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/auth/login": {
			"post": {
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "Credentials",
						"schema": {
							"$ref": "#/definitions/dto.LoginRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.TokenResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Log in",
				"description": "Exchange email and password for an access token",
				"tags": [
					"auth"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/auth/logout": {
			"post": {
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.MessageResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Log out",
				"description": "Revoke the current access token until it would have expired",
				"tags": [
					"auth"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/auth/me": {
			"get": {
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.UserResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Current user",
				"tags": [
					"auth"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/auth/password": {
			"put": {
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "Passwords",
						"schema": {
							"$ref": "#/definitions/dto.ChangePasswordRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.MessageResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Change password",
				"tags": [
					"auth"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/auth/register": {
			"post": {
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "Registration",
						"schema": {
							"$ref": "#/definitions/dto.RegisterRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.TokenResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Register an owner account",
				"description": "Create a boarding house owner. The account stays pending until an admin approves it.",
				"tags": [
					"auth"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/auth/reset-password": {
			"post": {
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "Token and new password",
						"schema": {
							"$ref": "#/definitions/dto.ResetPasswordRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.MessageResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Reset password with a token",
				"tags": [
					"auth"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/boarding-houses": {
			"post": {
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "Boarding house",
						"schema": {
							"$ref": "#/definitions/dto.BoardingHouseRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/domain.BoardingHouse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"402": {
						"description": "Payment Required",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Create a boarding house",
				"tags": [
					"boarding-houses"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"get": {
				"parameters": [
					{
						"name": "page",
						"in": "query",
						"required": false,
						"description": "Page number",
						"type": "integer"
					},
					{
						"name": "page_size",
						"in": "query",
						"required": false,
						"description": "Page size",
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.PageResponse-domain.BoardingHouse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "List boarding houses",
				"tags": [
					"boarding-houses"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/boarding-houses/{id}": {
			"get": {
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Boarding house ID",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.BoardingHouse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Get a boarding house",
				"tags": [
					"boarding-houses"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"put": {
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Boarding house ID",
						"type": "string"
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "Boarding house",
						"schema": {
							"$ref": "#/definitions/dto.BoardingHouseRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.BoardingHouse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Update a boarding house",
				"tags": [
					"boarding-houses"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Boarding house ID",
						"type": "string"
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Delete a boarding house",
				"description": "Only houses without rooms can be deleted",
				"tags": [
					"boarding-houses"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/contracts": {
			"post": {
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "Contract",
						"schema": {
							"$ref": "#/definitions/dto.CreateContractRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/domain.RentalContract"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Create a rental contract",
				"description": "Moves the tenant into the room and updates room occupancy",
				"tags": [
					"contracts"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"get": {
				"parameters": [
					{
						"name": "status",
						"in": "query",
						"required": false,
						"description": "active, expired or terminated",
						"type": "string"
					},
					{
						"name": "room_id",
						"in": "query",
						"required": false,
						"description": "Filter by room",
						"type": "string"
					},
					{
						"name": "tenant_id",
						"in": "query",
						"required": false,
						"description": "Filter by tenant",
						"type": "string"
					},
					{
						"name": "page",
						"in": "query",
						"required": false,
						"description": "Page number",
						"type": "integer"
					},
					{
						"name": "page_size",
						"in": "query",
						"required": false,
						"description": "Page size",
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.PageResponse-domain.RentalContract"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "List rental contracts",
				"tags": [
					"contracts"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/contracts/{id}": {
			"get": {
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Contract ID",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.RentalContract"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Get a rental contract",
				"tags": [
					"contracts"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"put": {
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Contract ID",
						"type": "string"
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "Fields to change",
						"schema": {
							"$ref": "#/definitions/dto.UpdateContractRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.RentalContract"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Update an active rental contract",
				"description": "Changing room_id transfers the tenant",
				"tags": [
					"contracts"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/contracts/{id}/terminate": {
			"post": {
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Contract ID",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.RentalContract"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Terminate a rental contract",
				"tags": [
					"contracts"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/dashboard": {
			"get": {
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.OwnerDashboard"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Owner dashboard",
				"description": "Occupancy, this month's billing and twelve months of revenue",
				"tags": [
					"dashboard"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/invoices": {
			"post": {
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "Invoice",
						"schema": {
							"$ref": "#/definitions/dto.CreateInvoiceRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/domain.Invoice"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Create an invoice for one room",
				"description": "Prices the room charge and attached services for a billing month",
				"tags": [
					"invoices"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"get": {
				"parameters": [
					{
						"name": "boarding_house_id",
						"in": "query",
						"required": false,
						"description": "Filter by boarding house",
						"type": "string"
					},
					{
						"name": "room_id",
						"in": "query",
						"required": false,
						"description": "Filter by room",
						"type": "string"
					},
					{
						"name": "tenant_id",
						"in": "query",
						"required": false,
						"description": "Filter by tenant",
						"type": "string"
					},
					{
						"name": "billing_month",
						"in": "query",
						"required": false,
						"description": "YYYY-MM",
						"type": "string"
					},
					{
						"name": "status",
						"in": "query",
						"required": false,
						"description": "unpaid, partially_paid, paid, overdue or cancelled",
						"type": "string"
					},
					{
						"name": "page",
						"in": "query",
						"required": false,
						"description": "Page number",
						"type": "integer"
					},
					{
						"name": "page_size",
						"in": "query",
						"required": false,
						"description": "Page size",
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.PageResponse-domain.Invoice"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "List invoices",
				"tags": [
					"invoices"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/invoices/export": {
			"get": {
				"parameters": [
					{
						"name": "month",
						"in": "query",
						"required": true,
						"description": "Billing month (YYYY-MM)",
						"type": "string"
					},
					{
						"name": "format",
						"in": "query",
						"required": false,
						"description": "csv or xlsx",
						"type": "string",
						"default": "csv"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "file"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Export invoices of a billing month",
				"tags": [
					"invoices"
				],
				"produces": [
					"text/csv",
					"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/invoices/generate": {
			"post": {
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "Boarding house and month",
						"schema": {
							"$ref": "#/definitions/dto.GenerateInvoicesRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.GenerateInvoicesResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Generate invoices for a boarding house",
				"description": "Creates one invoice per occupied room. Rooms already invoiced for the month are skipped.",
				"tags": [
					"invoices"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/invoices/{id}": {
			"get": {
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Invoice ID",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.Invoice"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Get an invoice",
				"tags": [
					"invoices"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"put": {
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Invoice ID",
						"type": "string"
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "Fields to change",
						"schema": {
							"$ref": "#/definitions/dto.UpdateInvoiceRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.Invoice"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Update an unpaid invoice",
				"tags": [
					"invoices"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Invoice ID",
						"type": "string"
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Delete an invoice without payments",
				"tags": [
					"invoices"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/invoices/{id}/cancel": {
			"post": {
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Invoice ID",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.Invoice"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Cancel an invoice",
				"tags": [
					"invoices"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/me/invoices": {
			"get": {
				"parameters": [
					{
						"name": "billing_month",
						"in": "query",
						"required": false,
						"description": "YYYY-MM",
						"type": "string"
					},
					{
						"name": "status",
						"in": "query",
						"required": false,
						"description": "Invoice status",
						"type": "string"
					},
					{
						"name": "page",
						"in": "query",
						"required": false,
						"description": "Page number",
						"type": "integer"
					},
					{
						"name": "page_size",
						"in": "query",
						"required": false,
						"description": "Page size",
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.PageResponse-domain.Invoice"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "List the calling tenant's invoices",
				"tags": [
					"me"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/me/invoices/{id}": {
			"get": {
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Invoice ID",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.Invoice"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Get one of the calling tenant's invoices",
				"tags": [
					"me"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/notifications": {
			"get": {
				"parameters": [
					{
						"name": "unread_only",
						"in": "query",
						"required": false,
						"description": "Only unread notifications",
						"type": "boolean"
					},
					{
						"name": "page",
						"in": "query",
						"required": false,
						"description": "Page number",
						"type": "integer"
					},
					{
						"name": "page_size",
						"in": "query",
						"required": false,
						"description": "Page size",
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.PageResponse-domain.Notification"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "List the caller's notifications",
				"tags": [
					"notifications"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/notifications/read-all": {
			"put": {
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.MarkAllReadResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Mark every notification as read",
				"tags": [
					"notifications"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/notifications/stream": {
			"get": {
				"parameters": [
					{
						"name": "access_token",
						"in": "query",
						"required": false,
						"description": "Access token when the Authorization header cannot be set",
						"type": "string"
					}
				],
				"responses": {
					"101": {
						"description": "Switching Protocols"
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Stream notifications",
				"description": "Upgrades to a websocket that receives the caller's notifications as JSON messages",
				"tags": [
					"notifications"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/notifications/unread-count": {
			"get": {
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.UnreadCountResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Count unread notifications",
				"tags": [
					"notifications"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/notifications/{id}/read": {
			"put": {
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Notification ID",
						"type": "string"
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Mark a notification as read",
				"tags": [
					"notifications"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/payments": {
			"post": {
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "Payment",
						"schema": {
							"$ref": "#/definitions/dto.CreatePaymentRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/domain.Payment"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Record a cash or bank transfer payment",
				"tags": [
					"payments"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"get": {
				"parameters": [
					{
						"name": "invoice_id",
						"in": "query",
						"required": false,
						"description": "Filter by invoice",
						"type": "string"
					},
					{
						"name": "tenant_id",
						"in": "query",
						"required": false,
						"description": "Filter by tenant",
						"type": "string"
					},
					{
						"name": "status",
						"in": "query",
						"required": false,
						"description": "pending, succeeded or failed",
						"type": "string"
					},
					{
						"name": "method",
						"in": "query",
						"required": false,
						"description": "cash, bank_transfer or stripe",
						"type": "string"
					},
					{
						"name": "page",
						"in": "query",
						"required": false,
						"description": "Page number",
						"type": "integer"
					},
					{
						"name": "page_size",
						"in": "query",
						"required": false,
						"description": "Page size",
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.PageResponse-domain.Payment"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "List payments",
				"description": "Tenants only see their own payments",
				"tags": [
					"payments"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/payments/confirm": {
			"post": {
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "Payment intent",
						"schema": {
							"$ref": "#/definitions/dto.ConfirmPaymentRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.Payment"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Confirm an online payment",
				"description": "Polls Stripe for the intent status and settles the payment when it succeeded",
				"tags": [
					"payments"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/payments/intents": {
			"post": {
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "Invoice",
						"schema": {
							"$ref": "#/definitions/dto.CreatePaymentIntentRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.PaymentIntentResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Start an online card payment",
				"description": "Creates a Stripe payment intent for the outstanding balance of an invoice",
				"tags": [
					"payments"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/payments/webhook": {
			"post": {
				"parameters": [
					{
						"name": "Stripe-Signature",
						"in": "header",
						"required": true,
						"description": "Stripe signature",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.MessageResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Stripe webhook",
				"description": "Receives payment intent events. The body must be the raw signed payload.",
				"tags": [
					"payments"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/payments/{id}": {
			"get": {
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Payment ID",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.Payment"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Get a payment",
				"tags": [
					"payments"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/reports": {
			"post": {
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "Report",
						"schema": {
							"$ref": "#/definitions/dto.CreateReportRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/domain.Report"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "File a report to the owner",
				"tags": [
					"reports"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"get": {
				"parameters": [
					{
						"name": "tenant_id",
						"in": "query",
						"required": false,
						"description": "Filter by tenant",
						"type": "string"
					},
					{
						"name": "status",
						"in": "query",
						"required": false,
						"description": "pending, in_progress or resolved",
						"type": "string"
					},
					{
						"name": "page",
						"in": "query",
						"required": false,
						"description": "Page number",
						"type": "integer"
					},
					{
						"name": "page_size",
						"in": "query",
						"required": false,
						"description": "Page size",
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.PageResponse-domain.Report"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "List tenant reports",
				"tags": [
					"reports"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/reports/{id}": {
			"get": {
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Report ID",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.Report"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Get a tenant report",
				"tags": [
					"reports"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"put": {
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Report ID",
						"type": "string"
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "Status and response",
						"schema": {
							"$ref": "#/definitions/dto.UpdateReportRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.Report"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Respond to a tenant report",
				"tags": [
					"reports"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/rooms": {
			"post": {
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "Room",
						"schema": {
							"$ref": "#/definitions/dto.CreateRoomRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/domain.Room"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"402": {
						"description": "Payment Required",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Create a room",
				"tags": [
					"rooms"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"get": {
				"parameters": [
					{
						"name": "boarding_house_id",
						"in": "query",
						"required": false,
						"description": "Filter by boarding house",
						"type": "string"
					},
					{
						"name": "status",
						"in": "query",
						"required": false,
						"description": "available, occupied or maintenance",
						"type": "string"
					},
					{
						"name": "page",
						"in": "query",
						"required": false,
						"description": "Page number",
						"type": "integer"
					},
					{
						"name": "page_size",
						"in": "query",
						"required": false,
						"description": "Page size",
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.PageResponse-domain.Room"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "List rooms",
				"tags": [
					"rooms"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/rooms/{id}": {
			"get": {
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Room ID",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.Room"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Get a room",
				"tags": [
					"rooms"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"put": {
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Room ID",
						"type": "string"
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "Fields to change",
						"schema": {
							"$ref": "#/definitions/dto.UpdateRoomRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.Room"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Update a room",
				"tags": [
					"rooms"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Room ID",
						"type": "string"
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Delete a room",
				"description": "Rooms with contracts or invoices cannot be deleted",
				"tags": [
					"rooms"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/rooms/{id}/images": {
			"post": {
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Room ID",
						"type": "string"
					},
					{
						"name": "image",
						"in": "formData",
						"required": true,
						"description": "Image file",
						"type": "file"
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.ImageUploadResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Upload a room photo",
				"description": "The image is resized and stored as JPEG",
				"tags": [
					"rooms"
				],
				"consumes": [
					"multipart/form-data"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/rooms/{id}/services": {
			"get": {
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Room ID",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/domain.RoomService"
							}
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "List services attached to a room",
				"tags": [
					"rooms"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"post": {
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Room ID",
						"type": "string"
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "Service and fixed quantity",
						"schema": {
							"$ref": "#/definitions/dto.AttachServiceRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/domain.RoomService"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Attach a billable service to a room",
				"tags": [
					"rooms"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/rooms/{id}/services/{service_id}": {
			"delete": {
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Room ID",
						"type": "string"
					},
					{
						"name": "service_id",
						"in": "path",
						"required": true,
						"description": "Service ID",
						"type": "string"
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Detach a billable service from a room",
				"tags": [
					"rooms"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/services": {
			"post": {
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "Service",
						"schema": {
							"$ref": "#/definitions/dto.ServiceRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/domain.Service"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Create a billable service",
				"tags": [
					"services"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"get": {
				"parameters": [
					{
						"name": "boarding_house_id",
						"in": "query",
						"required": false,
						"description": "Filter by boarding house",
						"type": "string"
					},
					{
						"name": "page",
						"in": "query",
						"required": false,
						"description": "Page number",
						"type": "integer"
					},
					{
						"name": "page_size",
						"in": "query",
						"required": false,
						"description": "Page size",
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.PageResponse-domain.Service"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "List billable services",
				"tags": [
					"services"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/services/{id}": {
			"get": {
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Service ID",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.Service"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Get a billable service",
				"tags": [
					"services"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"put": {
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Service ID",
						"type": "string"
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "Service",
						"schema": {
							"$ref": "#/definitions/dto.ServiceRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.Service"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Update a billable service",
				"description": "Price changes apply to invoices created afterwards",
				"tags": [
					"services"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Service ID",
						"type": "string"
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Delete a billable service",
				"tags": [
					"services"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/subscriptions": {
			"get": {
				"parameters": [
					{
						"name": "owner_id",
						"in": "query",
						"required": false,
						"description": "Filter by owner (admins only)",
						"type": "string"
					},
					{
						"name": "page",
						"in": "query",
						"required": false,
						"description": "Page number",
						"type": "integer"
					},
					{
						"name": "page_size",
						"in": "query",
						"required": false,
						"description": "Page size",
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.PageResponse-domain.Subscription"
						}
					}
				},
				"summary": "List subscriptions",
				"description": "Admins may filter by owner_id; owners always see their own history",
				"tags": [
					"subscriptions"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/subscriptions/current": {
			"get": {
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.Subscription"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Current subscription",
				"tags": [
					"subscriptions"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/subscriptions/redeem": {
			"post": {
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "License key",
						"schema": {
							"$ref": "#/definitions/dto.RedeemLicenseRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/domain.Subscription"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Redeem a license key",
				"description": "Starts or extends the caller's subscription",
				"tags": [
					"subscriptions"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/tenants": {
			"post": {
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "Tenant",
						"schema": {
							"$ref": "#/definitions/dto.CreateTenantRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/domain.Tenant"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Create a tenant",
				"description": "Create a tenant and optionally a login account for them",
				"tags": [
					"tenants"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"get": {
				"parameters": [
					{
						"name": "room_id",
						"in": "query",
						"required": false,
						"description": "Filter by room",
						"type": "string"
					},
					{
						"name": "status",
						"in": "query",
						"required": false,
						"description": "active or moved_out",
						"type": "string"
					},
					{
						"name": "search",
						"in": "query",
						"required": false,
						"description": "Name, phone or email contains",
						"type": "string"
					},
					{
						"name": "page",
						"in": "query",
						"required": false,
						"description": "Page number",
						"type": "integer"
					},
					{
						"name": "page_size",
						"in": "query",
						"required": false,
						"description": "Page size",
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.PageResponse-domain.Tenant"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "List tenants",
				"tags": [
					"tenants"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/tenants/search": {
			"get": {
				"parameters": [
					{
						"name": "q",
						"in": "query",
						"required": true,
						"description": "Search text",
						"type": "string"
					},
					{
						"name": "page",
						"in": "query",
						"required": false,
						"description": "Page number",
						"type": "integer"
					},
					{
						"name": "page_size",
						"in": "query",
						"required": false,
						"description": "Page size",
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/domain.TenantDocument"
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Full-text tenant search",
				"tags": [
					"tenants"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/tenants/{id}": {
			"get": {
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Tenant ID",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.Tenant"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Get a tenant",
				"tags": [
					"tenants"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"put": {
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Tenant ID",
						"type": "string"
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "Fields to change",
						"schema": {
							"$ref": "#/definitions/dto.UpdateTenantRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.Tenant"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Update a tenant",
				"tags": [
					"tenants"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Tenant ID",
						"type": "string"
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/dto.Error"
						}
					}
				},
				"summary": "Delete a tenant",
				"description": "Tenants with an active contract cannot be deleted",
				"tags": [
					"tenants"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		}
	},
	"definitions": {
		"domain.AdminDashboard": {
			"type": "object",
			"properties": {
				"owners_by_status": {
					"type": "object",
					"additionalProperties": true
				},
				"active_subscriptions": {
					"type": "integer"
				},
				"boarding_houses": {
					"type": "integer"
				},
				"rooms": {
					"type": "integer"
				},
				"tenants": {
					"type": "integer"
				},
				"license_revenue": {
					"type": "string"
				},
				"pending_admin_reports": {
					"type": "integer"
				}
			}
		},
		"domain.BoardingHouse": {
			"type": "object",
			"properties": {
				"owner_id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"address": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"total_floors": {
					"type": "integer"
				},
				"id": {
					"type": "string"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				},
				"updated_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"domain.Invoice": {
			"type": "object",
			"properties": {
				"owner_id": {
					"type": "string"
				},
				"room_id": {
					"type": "string"
				},
				"tenant_id": {
					"type": "string"
				},
				"contract_id": {
					"type": "string"
				},
				"billing_month": {
					"type": "string"
				},
				"room_charge": {
					"type": "string"
				},
				"service_charge": {
					"type": "string"
				},
				"extra_charge": {
					"type": "string"
				},
				"discount": {
					"type": "string"
				},
				"total_amount": {
					"type": "string"
				},
				"paid_amount": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"due_date": {
					"type": "string",
					"format": "date-time"
				},
				"paid_at": {
					"type": "string",
					"format": "date-time"
				},
				"reminder_sent_at": {
					"type": "string",
					"format": "date-time"
				},
				"overdue_notified_at": {
					"type": "string",
					"format": "date-time"
				},
				"lines": {
					"type": "object"
				},
				"note": {
					"type": "string"
				},
				"room": {
					"$ref": "#/definitions/domain.Room"
				},
				"tenant": {
					"$ref": "#/definitions/domain.Tenant"
				},
				"id": {
					"type": "string"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				},
				"updated_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"domain.LicenseKey": {
			"type": "object",
			"properties": {
				"key": {
					"type": "string"
				},
				"plan": {
					"type": "string"
				},
				"duration_days": {
					"type": "integer"
				},
				"price": {
					"type": "string"
				},
				"max_rooms": {
					"type": "integer"
				},
				"status": {
					"type": "string"
				},
				"used_by_owner": {
					"type": "string"
				},
				"used_at": {
					"type": "string",
					"format": "date-time"
				},
				"id": {
					"type": "string"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				},
				"updated_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"domain.MonthlyRevenue": {
			"type": "object",
			"properties": {
				"billing_month": {
					"type": "string"
				},
				"billed": {
					"type": "string"
				},
				"collected": {
					"type": "string"
				}
			}
		},
		"domain.Notification": {
			"type": "object",
			"properties": {
				"user_id": {
					"type": "string"
				},
				"title": {
					"type": "string"
				},
				"message": {
					"type": "string"
				},
				"type": {
					"type": "string"
				},
				"reference_id": {
					"type": "string"
				},
				"is_read": {
					"type": "boolean"
				},
				"id": {
					"type": "string"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				},
				"updated_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"domain.Owner": {
			"type": "object",
			"properties": {
				"user_id": {
					"type": "string"
				},
				"business_name": {
					"type": "string"
				},
				"phone": {
					"type": "string"
				},
				"address": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"user": {
					"$ref": "#/definitions/domain.User"
				},
				"id": {
					"type": "string"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				},
				"updated_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"domain.OwnerDashboard": {
			"type": "object",
			"properties": {
				"boarding_houses": {
					"type": "integer"
				},
				"rooms_by_status": {
					"type": "object",
					"additionalProperties": true
				},
				"total_rooms": {
					"type": "integer"
				},
				"active_tenants": {
					"type": "integer"
				},
				"active_contracts": {
					"type": "integer"
				},
				"current_month": {
					"type": "string"
				},
				"current_billed": {
					"type": "string"
				},
				"current_collected": {
					"type": "string"
				},
				"current_outstanding": {
					"type": "string"
				},
				"unpaid_invoices": {
					"type": "integer"
				},
				"overdue_invoices": {
					"type": "integer"
				},
				"pending_reports": {
					"type": "integer"
				},
				"revenue": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.MonthlyRevenue"
					}
				}
			}
		},
		"domain.Payment": {
			"type": "object",
			"properties": {
				"owner_id": {
					"type": "string"
				},
				"invoice_id": {
					"type": "string"
				},
				"tenant_id": {
					"type": "string"
				},
				"amount": {
					"type": "string"
				},
				"method": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"provider_ref": {
					"type": "string"
				},
				"paid_at": {
					"type": "string",
					"format": "date-time"
				},
				"note": {
					"type": "string"
				},
				"invoice": {
					"$ref": "#/definitions/domain.Invoice"
				},
				"id": {
					"type": "string"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				},
				"updated_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"domain.RentalContract": {
			"type": "object",
			"properties": {
				"owner_id": {
					"type": "string"
				},
				"room_id": {
					"type": "string"
				},
				"tenant_id": {
					"type": "string"
				},
				"start_date": {
					"type": "string",
					"format": "date-time"
				},
				"end_date": {
					"type": "string",
					"format": "date-time"
				},
				"monthly_rent": {
					"type": "string"
				},
				"deposit": {
					"type": "string"
				},
				"payment_day": {
					"type": "integer"
				},
				"status": {
					"type": "string"
				},
				"terminated_at": {
					"type": "string",
					"format": "date-time"
				},
				"note": {
					"type": "string"
				},
				"room": {
					"$ref": "#/definitions/domain.Room"
				},
				"tenant": {
					"$ref": "#/definitions/domain.Tenant"
				},
				"id": {
					"type": "string"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				},
				"updated_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"domain.Report": {
			"type": "object",
			"properties": {
				"owner_id": {
					"type": "string"
				},
				"tenant_id": {
					"type": "string"
				},
				"room_id": {
					"type": "string"
				},
				"title": {
					"type": "string"
				},
				"content": {
					"type": "string"
				},
				"category": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"response": {
					"type": "string"
				},
				"tenant": {
					"$ref": "#/definitions/domain.Tenant"
				},
				"id": {
					"type": "string"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				},
				"updated_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"domain.ReportAdmin": {
			"type": "object",
			"properties": {
				"owner_id": {
					"type": "string"
				},
				"title": {
					"type": "string"
				},
				"content": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"response": {
					"type": "string"
				},
				"owner": {
					"$ref": "#/definitions/domain.Owner"
				},
				"id": {
					"type": "string"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				},
				"updated_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"domain.Room": {
			"type": "object",
			"properties": {
				"owner_id": {
					"type": "string"
				},
				"boarding_house_id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"floor": {
					"type": "integer"
				},
				"area": {
					"type": "string"
				},
				"price": {
					"type": "string"
				},
				"capacity": {
					"type": "integer"
				},
				"status": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"image_urls": {
					"type": "object"
				},
				"boarding_house": {
					"$ref": "#/definitions/domain.BoardingHouse"
				},
				"id": {
					"type": "string"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				},
				"updated_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"domain.RoomService": {
			"type": "object",
			"properties": {
				"room_id": {
					"type": "string"
				},
				"service_id": {
					"type": "string"
				},
				"quantity": {
					"type": "string"
				},
				"service": {
					"$ref": "#/definitions/domain.Service"
				},
				"id": {
					"type": "string"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				},
				"updated_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"domain.Service": {
			"type": "object",
			"properties": {
				"owner_id": {
					"type": "string"
				},
				"boarding_house_id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"unit": {
					"type": "string"
				},
				"unit_price": {
					"type": "string"
				},
				"metered": {
					"type": "boolean"
				},
				"id": {
					"type": "string"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				},
				"updated_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"domain.Subscription": {
			"type": "object",
			"properties": {
				"owner_id": {
					"type": "string"
				},
				"license_key_id": {
					"type": "string"
				},
				"plan": {
					"type": "string"
				},
				"max_rooms": {
					"type": "integer"
				},
				"starts_at": {
					"type": "string",
					"format": "date-time"
				},
				"expires_at": {
					"type": "string",
					"format": "date-time"
				},
				"status": {
					"type": "string"
				},
				"id": {
					"type": "string"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				},
				"updated_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"domain.Tenant": {
			"type": "object",
			"properties": {
				"owner_id": {
					"type": "string"
				},
				"user_id": {
					"type": "string"
				},
				"room_id": {
					"type": "string"
				},
				"full_name": {
					"type": "string"
				},
				"phone": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"id_number": {
					"type": "string"
				},
				"date_of_birth": {
					"type": "string",
					"format": "date-time"
				},
				"hometown": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"room": {
					"$ref": "#/definitions/domain.Room"
				},
				"id": {
					"type": "string"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				},
				"updated_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"domain.TenantDocument": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"owner_id": {
					"type": "string"
				},
				"room_id": {
					"type": "string"
				},
				"room_name": {
					"type": "string"
				},
				"full_name": {
					"type": "string"
				},
				"phone": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"id_number": {
					"type": "string"
				},
				"hometown": {
					"type": "string"
				},
				"status": {
					"type": "string"
				}
			}
		},
		"domain.User": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"full_name": {
					"type": "string"
				},
				"phone": {
					"type": "string"
				},
				"role": {
					"type": "string"
				},
				"active": {
					"type": "boolean"
				},
				"last_login_at": {
					"type": "string",
					"format": "date-time"
				},
				"id": {
					"type": "string"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				},
				"updated_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"dto.AttachServiceRequest": {
			"type": "object",
			"properties": {
				"service_id": {
					"type": "string"
				},
				"quantity": {
					"type": "string",
					"example": "1"
				}
			},
			"required": [
				"service_id"
			]
		},
		"dto.BoardingHouseRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string",
					"example": "Sunrise House"
				},
				"address": {
					"type": "string",
					"example": "12 Le Loi, District 1"
				},
				"description": {
					"type": "string"
				},
				"total_floors": {
					"type": "integer",
					"example": 3
				}
			},
			"required": [
				"name",
				"address"
			]
		},
		"dto.ChangePasswordRequest": {
			"type": "object",
			"properties": {
				"current_password": {
					"type": "string"
				},
				"new_password": {
					"type": "string"
				}
			},
			"required": [
				"current_password",
				"new_password"
			]
		},
		"dto.ConfirmPaymentRequest": {
			"type": "object",
			"properties": {
				"payment_intent_id": {
					"type": "string",
					"example": "pi_3Nabc"
				}
			},
			"required": [
				"payment_intent_id"
			]
		},
		"dto.CreateAdminReportRequest": {
			"type": "object",
			"properties": {
				"title": {
					"type": "string"
				},
				"content": {
					"type": "string"
				}
			},
			"required": [
				"title",
				"content"
			]
		},
		"dto.CreateContractRequest": {
			"type": "object",
			"properties": {
				"room_id": {
					"type": "string"
				},
				"tenant_id": {
					"type": "string"
				},
				"start_date": {
					"type": "string",
					"format": "date-time",
					"example": "2025-01-01T00:00:00Z"
				},
				"end_date": {
					"type": "string",
					"format": "date-time",
					"example": "2025-12-31T00:00:00Z"
				},
				"monthly_rent": {
					"type": "string",
					"example": "3500000"
				},
				"deposit": {
					"type": "string",
					"example": "3500000"
				},
				"payment_day": {
					"type": "integer",
					"example": 5
				},
				"note": {
					"type": "string"
				}
			},
			"required": [
				"room_id",
				"tenant_id",
				"start_date"
			]
		},
		"dto.CreateInvoiceRequest": {
			"type": "object",
			"properties": {
				"room_id": {
					"type": "string"
				},
				"billing_month": {
					"type": "string",
					"example": "2025-03"
				},
				"quantities": {
					"type": "object",
					"additionalProperties": {
						"type": "string"
					}
				},
				"extra_charge": {
					"type": "string",
					"example": "0"
				},
				"discount": {
					"type": "string",
					"example": "0"
				},
				"due_date": {
					"type": "string",
					"format": "date-time"
				},
				"note": {
					"type": "string"
				}
			},
			"required": [
				"room_id",
				"billing_month"
			]
		},
		"dto.CreatePaymentIntentRequest": {
			"type": "object",
			"properties": {
				"invoice_id": {
					"type": "string"
				}
			},
			"required": [
				"invoice_id"
			]
		},
		"dto.CreatePaymentRequest": {
			"type": "object",
			"properties": {
				"invoice_id": {
					"type": "string"
				},
				"amount": {
					"type": "string",
					"example": "3500000"
				},
				"method": {
					"type": "string",
					"example": "cash"
				},
				"paid_at": {
					"type": "string",
					"format": "date-time"
				},
				"note": {
					"type": "string"
				}
			},
			"required": [
				"invoice_id",
				"method"
			]
		},
		"dto.CreateReportRequest": {
			"type": "object",
			"properties": {
				"title": {
					"type": "string",
					"example": "Leaking tap"
				},
				"content": {
					"type": "string",
					"example": "The bathroom tap leaks at night."
				},
				"category": {
					"type": "string",
					"example": "maintenance"
				}
			},
			"required": [
				"title",
				"content"
			]
		},
		"dto.CreateRoomRequest": {
			"type": "object",
			"properties": {
				"boarding_house_id": {
					"type": "string"
				},
				"name": {
					"type": "string",
					"example": "101"
				},
				"floor": {
					"type": "integer",
					"example": 1
				},
				"area": {
					"type": "string",
					"example": "18.5"
				},
				"price": {
					"type": "string",
					"example": "3500000"
				},
				"capacity": {
					"type": "integer",
					"example": 2
				},
				"description": {
					"type": "string"
				}
			},
			"required": [
				"boarding_house_id",
				"name"
			]
		},
		"dto.CreateTenantRequest": {
			"type": "object",
			"properties": {
				"full_name": {
					"type": "string",
					"example": "Nguyen Van A"
				},
				"phone": {
					"type": "string",
					"example": "0901234567"
				},
				"email": {
					"type": "string",
					"example": "tenant@example.com"
				},
				"id_number": {
					"type": "string",
					"example": "079200001234"
				},
				"date_of_birth": {
					"type": "string",
					"format": "date-time",
					"example": "2000-01-31T00:00:00Z"
				},
				"hometown": {
					"type": "string"
				},
				"create_account": {
					"type": "boolean"
				}
			},
			"required": [
				"full_name",
				"phone"
			]
		},
		"dto.Error": {
			"type": "object",
			"properties": {
				"error": {
					"type": "string",
					"example": "error message"
				}
			}
		},
		"dto.ForgotPasswordRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string",
					"example": "owner@example.com"
				}
			},
			"required": [
				"email"
			]
		},
		"dto.GenerateInvoicesRequest": {
			"type": "object",
			"properties": {
				"boarding_house_id": {
					"type": "string"
				},
				"billing_month": {
					"type": "string",
					"example": "2025-03"
				},
				"due_date": {
					"type": "string",
					"format": "date-time"
				}
			},
			"required": [
				"boarding_house_id",
				"billing_month"
			]
		},
		"dto.GenerateInvoicesResponse": {
			"type": "object",
			"properties": {
				"created": {
					"type": "integer",
					"example": 12
				},
				"skipped": {
					"type": "integer",
					"example": 3
				},
				"invoices": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.Invoice"
					}
				}
			}
		},
		"dto.GenerateLicenseKeysRequest": {
			"type": "object",
			"properties": {
				"plan": {
					"type": "string",
					"example": "standard"
				},
				"duration_days": {
					"type": "integer",
					"example": 30
				},
				"price": {
					"type": "string",
					"example": "199000"
				},
				"max_rooms": {
					"type": "integer",
					"example": 50
				},
				"count": {
					"type": "integer",
					"example": 10
				}
			},
			"required": [
				"plan",
				"duration_days",
				"count"
			]
		},
		"dto.ImageUploadResponse": {
			"type": "object",
			"properties": {
				"url": {
					"type": "string",
					"example": "https://cdn.example.com/rooms/abc.jpg"
				},
				"room": {
					"$ref": "#/definitions/domain.Room"
				}
			}
		},
		"dto.LoginRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string",
					"example": "owner@example.com"
				},
				"password": {
					"type": "string",
					"example": "s3cretpass"
				}
			},
			"required": [
				"email",
				"password"
			]
		},
		"dto.MarkAllReadResponse": {
			"type": "object",
			"properties": {
				"updated": {
					"type": "integer",
					"example": 5
				}
			}
		},
		"dto.MessageResponse": {
			"type": "object",
			"properties": {
				"message": {
					"type": "string",
					"example": "ok"
				}
			}
		},
		"dto.PageResponse-domain.BoardingHouse": {
			"type": "object",
			"properties": {
				"total": {
					"type": "integer",
					"example": 42
				},
				"page": {
					"type": "integer",
					"example": 1
				},
				"page_size": {
					"type": "integer",
					"example": 20
				},
				"items": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.BoardingHouse"
					}
				}
			}
		},
		"dto.PageResponse-domain.Invoice": {
			"type": "object",
			"properties": {
				"total": {
					"type": "integer",
					"example": 42
				},
				"page": {
					"type": "integer",
					"example": 1
				},
				"page_size": {
					"type": "integer",
					"example": 20
				},
				"items": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.Invoice"
					}
				}
			}
		},
		"dto.PageResponse-domain.LicenseKey": {
			"type": "object",
			"properties": {
				"total": {
					"type": "integer",
					"example": 42
				},
				"page": {
					"type": "integer",
					"example": 1
				},
				"page_size": {
					"type": "integer",
					"example": 20
				},
				"items": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.LicenseKey"
					}
				}
			}
		},
		"dto.PageResponse-domain.Notification": {
			"type": "object",
			"properties": {
				"total": {
					"type": "integer",
					"example": 42
				},
				"page": {
					"type": "integer",
					"example": 1
				},
				"page_size": {
					"type": "integer",
					"example": 20
				},
				"items": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.Notification"
					}
				}
			}
		},
		"dto.PageResponse-domain.Owner": {
			"type": "object",
			"properties": {
				"total": {
					"type": "integer",
					"example": 42
				},
				"page": {
					"type": "integer",
					"example": 1
				},
				"page_size": {
					"type": "integer",
					"example": 20
				},
				"items": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.Owner"
					}
				}
			}
		},
		"dto.PageResponse-domain.Payment": {
			"type": "object",
			"properties": {
				"total": {
					"type": "integer",
					"example": 42
				},
				"page": {
					"type": "integer",
					"example": 1
				},
				"page_size": {
					"type": "integer",
					"example": 20
				},
				"items": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.Payment"
					}
				}
			}
		},
		"dto.PageResponse-domain.RentalContract": {
			"type": "object",
			"properties": {
				"total": {
					"type": "integer",
					"example": 42
				},
				"page": {
					"type": "integer",
					"example": 1
				},
				"page_size": {
					"type": "integer",
					"example": 20
				},
				"items": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.RentalContract"
					}
				}
			}
		},
		"dto.PageResponse-domain.Report": {
			"type": "object",
			"properties": {
				"total": {
					"type": "integer",
					"example": 42
				},
				"page": {
					"type": "integer",
					"example": 1
				},
				"page_size": {
					"type": "integer",
					"example": 20
				},
				"items": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.Report"
					}
				}
			}
		},
		"dto.PageResponse-domain.ReportAdmin": {
			"type": "object",
			"properties": {
				"total": {
					"type": "integer",
					"example": 42
				},
				"page": {
					"type": "integer",
					"example": 1
				},
				"page_size": {
					"type": "integer",
					"example": 20
				},
				"items": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.ReportAdmin"
					}
				}
			}
		},
		"dto.PageResponse-domain.Room": {
			"type": "object",
			"properties": {
				"total": {
					"type": "integer",
					"example": 42
				},
				"page": {
					"type": "integer",
					"example": 1
				},
				"page_size": {
					"type": "integer",
					"example": 20
				},
				"items": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.Room"
					}
				}
			}
		},
		"dto.PageResponse-domain.Service": {
			"type": "object",
			"properties": {
				"total": {
					"type": "integer",
					"example": 42
				},
				"page": {
					"type": "integer",
					"example": 1
				},
				"page_size": {
					"type": "integer",
					"example": 20
				},
				"items": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.Service"
					}
				}
			}
		},
		"dto.PageResponse-domain.Subscription": {
			"type": "object",
			"properties": {
				"total": {
					"type": "integer",
					"example": 42
				},
				"page": {
					"type": "integer",
					"example": 1
				},
				"page_size": {
					"type": "integer",
					"example": 20
				},
				"items": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.Subscription"
					}
				}
			}
		},
		"dto.PageResponse-domain.Tenant": {
			"type": "object",
			"properties": {
				"total": {
					"type": "integer",
					"example": 42
				},
				"page": {
					"type": "integer",
					"example": 1
				},
				"page_size": {
					"type": "integer",
					"example": 20
				},
				"items": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.Tenant"
					}
				}
			}
		},
		"dto.PageResponse-domain.User": {
			"type": "object",
			"properties": {
				"total": {
					"type": "integer",
					"example": 42
				},
				"page": {
					"type": "integer",
					"example": 1
				},
				"page_size": {
					"type": "integer",
					"example": 20
				},
				"items": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.User"
					}
				}
			}
		},
		"dto.PaymentIntentResponse": {
			"type": "object",
			"properties": {
				"payment_id": {
					"type": "string"
				},
				"payment_intent_id": {
					"type": "string",
					"example": "pi_3Nabc"
				},
				"client_secret": {
					"type": "string",
					"example": "pi_3Nabc_secret_xyz"
				},
				"amount": {
					"type": "string",
					"example": "3500000"
				},
				"currency": {
					"type": "string",
					"example": "vnd"
				}
			}
		},
		"dto.RedeemLicenseRequest": {
			"type": "object",
			"properties": {
				"key": {
					"type": "string",
					"example": "BHMS-ABCD-EFGH-IJKL"
				}
			},
			"required": [
				"key"
			]
		},
		"dto.RegisterRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string",
					"example": "owner@example.com"
				},
				"password": {
					"type": "string",
					"example": "s3cretpass"
				},
				"full_name": {
					"type": "string",
					"example": "Tran Van B"
				},
				"phone": {
					"type": "string",
					"example": "0901234567"
				},
				"business_name": {
					"type": "string",
					"example": "Sunrise Rooms"
				},
				"address": {
					"type": "string",
					"example": "12 Le Loi, District 1"
				}
			},
			"required": [
				"email",
				"password",
				"full_name"
			]
		},
		"dto.ResetPasswordRequest": {
			"type": "object",
			"properties": {
				"token": {
					"type": "string"
				},
				"new_password": {
					"type": "string"
				}
			},
			"required": [
				"token",
				"new_password"
			]
		},
		"dto.ServiceRequest": {
			"type": "object",
			"properties": {
				"boarding_house_id": {
					"type": "string"
				},
				"name": {
					"type": "string",
					"example": "Electricity"
				},
				"unit": {
					"type": "string",
					"example": "kWh"
				},
				"unit_price": {
					"type": "string",
					"example": "3500"
				},
				"metered": {
					"type": "boolean",
					"example": true
				}
			},
			"required": [
				"boarding_house_id",
				"name",
				"unit"
			]
		},
		"dto.SweepResponse": {
			"type": "object",
			"properties": {
				"overdue": {
					"type": "integer",
					"example": 4
				},
				"reminded": {
					"type": "integer",
					"example": 7
				},
				"expired_contracts": {
					"type": "integer",
					"example": 1
				},
				"expired_subscriptions": {
					"type": "integer",
					"example": 0
				}
			}
		},
		"dto.TokenResponse": {
			"type": "object",
			"properties": {
				"access_token": {
					"type": "string",
					"example": "eyJhbGciOiJIUzI1NiIs..."
				},
				"token_type": {
					"type": "string",
					"example": "Bearer"
				},
				"expires_at": {
					"type": "string",
					"format": "date-time",
					"example": "2025-07-18T21:20:48Z"
				},
				"user": {
					"$ref": "#/definitions/dto.UserResponse"
				}
			}
		},
		"dto.UnreadCountResponse": {
			"type": "object",
			"properties": {
				"unread": {
					"type": "integer",
					"example": 3
				}
			}
		},
		"dto.UpdateContractRequest": {
			"type": "object",
			"properties": {
				"room_id": {
					"type": "string"
				},
				"end_date": {
					"type": "string",
					"format": "date-time"
				},
				"monthly_rent": {
					"type": "string"
				},
				"deposit": {
					"type": "string"
				},
				"payment_day": {
					"type": "integer"
				},
				"note": {
					"type": "string"
				}
			}
		},
		"dto.UpdateInvoiceRequest": {
			"type": "object",
			"properties": {
				"quantities": {
					"type": "object",
					"additionalProperties": {
						"type": "string"
					}
				},
				"extra_charge": {
					"type": "string"
				},
				"discount": {
					"type": "string"
				},
				"due_date": {
					"type": "string",
					"format": "date-time"
				},
				"note": {
					"type": "string"
				}
			}
		},
		"dto.UpdateReportRequest": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string",
					"example": "in_progress"
				},
				"response": {
					"type": "string"
				}
			},
			"required": [
				"status"
			]
		},
		"dto.UpdateRoomRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"floor": {
					"type": "integer"
				},
				"area": {
					"type": "string"
				},
				"price": {
					"type": "string"
				},
				"capacity": {
					"type": "integer"
				},
				"status": {
					"type": "string"
				},
				"description": {
					"type": "string"
				}
			}
		},
		"dto.UpdateTenantRequest": {
			"type": "object",
			"properties": {
				"full_name": {
					"type": "string"
				},
				"phone": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"id_number": {
					"type": "string"
				},
				"date_of_birth": {
					"type": "string",
					"format": "date-time"
				},
				"hometown": {
					"type": "string"
				}
			}
		},
		"dto.UserResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string",
					"example": "550e8400-e29b-41d4-a716-446655440000"
				},
				"email": {
					"type": "string",
					"example": "owner@example.com"
				},
				"full_name": {
					"type": "string",
					"example": "Tran Van B"
				},
				"phone": {
					"type": "string",
					"example": "+84901234567"
				},
				"role": {
					"type": "string",
					"example": "owner"
				},
				"active": {
					"type": "boolean",
					"example": true
				},
				"owner_id": {
					"type": "string"
				},
				"owner_status": {
					"type": "string",
					"example": "active"
				},
				"tenant_id": {
					"type": "string"
				},
				"last_login_at": {
					"type": "string",
					"format": "date-time"
				},
				"created_at": {
					"type": "string",
					"format": "date-time",
					"example": "2025-07-17T21:20:48Z"
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	},
	"externalDocs": {
		"description": "OpenAPI",
		"url": "https://swagger.io/resources/open-api/"
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:		  "1.0",
	Host:			 "localhost:10000",
	BasePath:		 "/api/v1",
	Schemes:		  []string{},
	Title:			"BHMS API",
	Description:	  "Boarding house management: rooms, tenants, contracts, invoices and payments.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:		"{{",
	RightDelim:	   "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
