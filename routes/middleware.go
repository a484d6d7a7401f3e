package routes

import (
	"errors"
	"fmt"
	"strings"

	"comanda/auth"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

const claimsKey = "claims"

// authenticate resolves the bearer token, if any, and stashes the verified
// claims on the request. Anonymous requests pass through: the policy table
// decides later whether identity is required.
func authenticate(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return c.Next()
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Malformed Authorization header",
		})
	}

	claims, err := auth.ParseToken(parts[1])
	if err != nil || claims.TokenType != auth.TokenTypeAccess {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid or expired token",
		})
	}

	c.Locals(claimsKey, claims)
	return c.Next()
}

func currentUser(c *fiber.Ctx) *auth.Claims {
	claims, _ := c.Locals(claimsKey).(*auth.Claims)
	return claims
}

// requirePermission evaluates the static policy table once per request at
// the route boundary: 401 for anonymous callers, 403 for identified callers
// without the role.
func requirePermission(resource auth.Resource, action auth.Action) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := currentUser(c)
		if auth.Allowed(claims, resource, action) {
			return c.Next()
		}
		if claims == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authentication required",
			})
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Insufficient role for this action",
		})
	}
}

// validationDetails flattens validator errors into per-field messages for
// 400 responses.
func validationDetails(err error) fiber.Map {
	details := fiber.Map{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			details[fe.Field()] = fmt.Sprintf("failed '%s' validation", fe.Tag())
		}
	} else {
		details["non_field"] = err.Error()
	}
	return details
}

func validationFailed(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":   "Validation failed",
		"details": validationDetails(err),
	})
}
