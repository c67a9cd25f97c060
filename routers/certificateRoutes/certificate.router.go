package certificateRoutes

import (
	certificateController "certhub/controllers/certificateControllers"
	certificateValidator "certhub/validators/certificateValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupCertificateRoutes(app *fiber.App) {
	app.Post("/upload-certificate", certificateValidator.UploadCertificate(), certificateController.UploadCertificate)
}
