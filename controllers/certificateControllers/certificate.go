package certificateController

import (
	"certhub/config"
	"certhub/database"
	"certhub/middleware"
	"certhub/models"
	"certhub/utils"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UploadCertificate records a new certificate submission. The media type
// is checked before the file is persisted so rejected uploads never touch
// the store; if the record insert fails after the file write, the caller
// gets the insert error and the file is left for the cleanup sweep.
func UploadCertificate(c *fiber.Ctx) error {
	file, err := c.FormFile("certificate")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "No file uploaded")
	}

	if err := utils.ValidateMediaType(file); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Only PDF files are allowed!")
	}

	studentRegd := c.FormValue("studentRegd")

	var student models.Student
	if err := database.Database.Db.Where("student_regd = ?", studentRegd).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Student not found")
		}
		log.Printf("Error fetching student %s: %v", studentRegd, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	filePath, err := utils.SaveUploadedFile(file, config.AppConfig.UploadDir)
	if err != nil {
		log.Printf("Error saving uploaded certificate: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	newCertificate := models.Certificate{
		StudentID:    student.ID,
		Name:         c.FormValue("name"),
		StudentRegd:  studentRegd,
		Year:         c.FormValue("year"),
		EventName:    c.FormValue("eventName"),
		EventDate:    c.FormValue("eventDate"),
		Phone:        c.FormValue("phone"),
		Category:     c.FormValue("category"),
		StudentEmail: c.FormValue("studentEmail"),
		FileURL:      utils.GetFileURL(filePath),
		FilePath:     filePath,
		Status:       models.StatusPending,
	}

	if err := database.Database.Db.Create(&newCertificate).Error; err != nil {
		log.Printf("Error inserting certificate for %s: %v", studentRegd, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return c.JSON(fiber.Map{
		"message":  "Certificate uploaded successfully!",
		"filePath": filePath,
	})
}
