package facultyController

import (
	"bufio"
	"certhub/config"
	"certhub/database"
	"certhub/middleware"
	"certhub/models"
	"certhub/utils"
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
	"gorm.io/gorm"
)

// GetCertificatesByCategory lists certificates for a review category,
// newest first. The match is case-insensitive equality; the stored value
// keeps its original casing.
func GetCertificatesByCategory(c *fiber.Ctx) error {
	category := c.Params("category")

	var certificates []models.Certificate
	if err := database.Database.Db.Where("LOWER(category) = LOWER(?)", category).
		Order("created_at DESC").
		Find(&certificates).Error; err != nil {
		log.Printf("Error fetching certificates for category %s: %v", category, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	if certificates == nil {
		certificates = []models.Certificate{}
	}

	return c.JSON(certificates)
}

// GetAllCertificates lists every certificate with the owning student
// joined in, newest first. Dashboards filter the result client-side.
func GetAllCertificates(c *fiber.Ctx) error {
	var certificates []models.Certificate
	if err := database.Database.Db.Order("created_at DESC").
		Find(&certificates).Error; err != nil {
		log.Printf("Error fetching certificates: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	type CertificateWithStudent struct {
		models.Certificate
		Student *models.Student `json:"student"`
	}

	result := make([]CertificateWithStudent, len(certificates))
	for i, cert := range certificates {
		result[i] = CertificateWithStudent{Certificate: cert}

		var student models.Student
		if err := database.Database.Db.Where("id = ?", cert.StudentID).First(&student).Error; err == nil {
			result[i].Student = &student
		}
	}

	return c.JSON(result)
}

// setCertificateStatus applies a moderation decision and returns the
// updated record so the caller can refresh its view without a second read.
// Concurrent decisions race at the store; last write wins.
func setCertificateStatus(c *fiber.Ctx, target models.CertificateStatus) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Certificate not found")
	}

	var certificate models.Certificate
	if err := database.Database.Db.First(&certificate, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Certificate not found")
		}
		log.Printf("Error fetching certificate %d: %v", id, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	if !certificate.Status.CanTransitionTo(target) {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Illegal status transition")
	}

	certificate.Status = target
	if err := database.Database.Db.Model(&certificate).Update("status", target).Error; err != nil {
		log.Printf("Error updating certificate %d status: %v", id, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return c.JSON(certificate)
}

// ApproveCertificate marks a certificate Approved.
func ApproveCertificate(c *fiber.Ctx) error {
	return setCertificateStatus(c, models.StatusApproved)
}

// RejectCertificate marks a certificate Rejected.
func RejectCertificate(c *fiber.Ctx) error {
	return setCertificateStatus(c, models.StatusRejected)
}

// DownloadCertificates streams a zip archive of the requested stored
// files. Entries are written as the files are read, paced by what the
// client drains; references that no longer resolve are skipped. A failure
// after streaming has begun cannot change the status line anymore, so the
// connection is truncated and the error logged.
func DownloadCertificates(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedDownloadList").(*struct {
		Certificates []string `json:"certificates"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
	}

	uploadDir := config.AppConfig.UploadDir

	c.Set(fiber.HeaderContentType, "application/zip")
	c.Set(fiber.HeaderContentDisposition, "attachment; filename=certificates.zip")

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		if err := utils.WriteZipArchive(w, uploadDir, reqData.Certificates); err != nil {
			log.Printf("Error streaming certificate archive: %v", err)
			return
		}
		if err := w.Flush(); err != nil {
			log.Printf("Error flushing certificate archive: %v", err)
		}
	}))

	return nil
}
