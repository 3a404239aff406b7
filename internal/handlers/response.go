package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"gudang/internal/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const internalErrorMessage = "Internal server error"

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// success writes a {success:true, ...} envelope.
func success(c *fiber.Ctx, status int, payload fiber.Map) error {
	body := fiber.Map{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	return c.Status(status).JSON(body)
}

// failure writes a {success:false, message} envelope.
func failure(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

// storeFailure maps a service error onto a status code. notFound is the message
// shown when no row matched. Store failures are logged and hidden from the caller.
func storeFailure(c *fiber.Ctx, err error, notFound string) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return failure(c, fiber.StatusNotFound, notFound)
	}
	slog.Error("Request failed",
		"method", c.Method(),
		"path", c.Path(),
		"error", err,
	)
	return failure(c, fiber.StatusInternalServerError, internalErrorMessage)
}

// bindBody parses and validates the JSON body into out. When it reports false the
// 400 response has already been written and its error must be returned.
func bindBody(c *fiber.Ctx, validate *validator.Validate, out interface{}) (bool, error) {
	if err := c.BodyParser(out); err != nil {
		slog.Debug("Error parsing request body", "path", c.Path(), "error", err)
		return false, failure(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(out); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return false, failure(c, fiber.StatusBadRequest, "Validation failed")
		}
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}
	return true, nil
}
