package certificateValidator

import (
	"certhub/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func UploadCertificate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		errors := make(map[string]string)

		// Validate submission metadata
		if strings.TrimSpace(c.FormValue("studentRegd")) == "" {
			errors["studentRegd"] = "Registration number is required!"
		}
		if strings.TrimSpace(c.FormValue("eventName")) == "" {
			errors["eventName"] = "Event name is required!"
		}
		if strings.TrimSpace(c.FormValue("category")) == "" {
			errors["category"] = "Category is required!"
		}

		// Respond with errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}

func DownloadCertificates() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Parse request body
		reqData := new(struct {
			Certificates []string `json:"certificates"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		// An empty list is allowed; the export yields a valid empty archive

		// Pass validated file references to the next middleware
		c.Locals("validatedDownloadList", reqData)
		return c.Next()
	}
}
