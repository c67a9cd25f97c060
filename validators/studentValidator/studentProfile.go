package studentValidator

import (
	"certhub/middleware"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func isValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

func UpdateStudentDetails() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Parse request body
		reqData := new(struct {
			Email       string `json:"email"`
			Name        string `json:"name"`
			Phone       string `json:"phone"`
			Branch      string `json:"branch"`
			Year        string `json:"year"`
			Section     string `json:"section"`
			StudentRegd string `json:"studentRegd"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		errors := make(map[string]string)

		// Validate Email
		if strings.TrimSpace(reqData.Email) == "" {
			errors["email"] = "Email is required!"
		} else if !isValidEmail(reqData.Email) {
			errors["email"] = "Invalid email address!"
		}

		// Validate Name (optional but must not collapse to whitespace)
		if reqData.Name != "" && strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name must not be blank!"
		}

		// Respond with errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		// Pass validated student details to the next middleware
		c.Locals("validatedStudentDetails", reqData)
		return c.Next()
	}
}
