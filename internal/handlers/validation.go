package handlers

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// fieldMessages maps field+tag pairs to the human messages the API
// has always returned for them.
var fieldMessages = map[string]string{
	"Name.required":     "Name is required",
	"Email.required":    "Please include a valid email",
	"Email.email":       "Please include a valid email",
	"Password.required": "Please enter a password with 5 or more characters",
	"Password.min":      "Please enter a password with 5 or more characters",
	"Text.required":     "Text is required",
}

// validationErrors converts validator failures into the wire format
// {errors:[{msg:...}]} shared by every 400 response.
func validationErrors(err error) fiber.Map {
	var msgs []fiber.Map
	for _, e := range err.(validator.ValidationErrors) {
		msg, ok := fieldMessages[e.Field()+"."+e.Tag()]
		if !ok {
			msg = fmt.Sprintf("%s is invalid", e.Field())
		}
		msgs = append(msgs, fiber.Map{"msg": msg})
	}
	return fiber.Map{"errors": msgs}
}

// errorList wraps a single message in the same {errors:[{msg}]} shape.
func errorList(msg string) fiber.Map {
	return fiber.Map{"errors": []fiber.Map{{"msg": msg}}}
}
