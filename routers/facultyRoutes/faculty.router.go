package facultyRoutes

import (
	facultyController "certhub/controllers/facultyControllers"
	certificateValidator "certhub/validators/certificateValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupFacultyRoutes(app *fiber.App) {
	facultyGroup := app.Group("/faculty")

	facultyGroup.Get("/certificates/category/:category", facultyController.GetCertificatesByCategory)
	facultyGroup.Get("/certificates", facultyController.GetAllCertificates)
	facultyGroup.Put("/certificates/:id/approve", facultyController.ApproveCertificate)
	facultyGroup.Put("/certificates/:id/reject", facultyController.RejectCertificate)
	facultyGroup.Post("/download-certificates", certificateValidator.DownloadCertificates(), facultyController.DownloadCertificates)
}
