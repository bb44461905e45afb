package handler

import "github.com/labstack/echo/v4"

// envelope is the canonical response shape for every endpoint:
// {"success": bool, "message": string, "data": {...}}.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func respond(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, envelope{Success: true, Message: message, Data: data})
}
