package studentRoutes

import (
	studentController "certhub/controllers/studentControllers"
	studentValidator "certhub/validators/studentValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupStudentRoutes(app *fiber.App) {
	app.Get("/details/:email", studentController.GetStudentDetails)
	app.Put("/update-details", studentValidator.UpdateStudentDetails(), studentController.UpdateStudentDetails)

	// the regd route must be registered before the email wildcard
	app.Get("/certificates/regd/:studentRegd", studentController.GetCertificatesByRegd)
	app.Get("/certificates/:email", studentController.GetCertificatesByEmail)
}
