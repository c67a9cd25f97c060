package studentController

import (
	"certhub/database"
	"certhub/middleware"
	"certhub/models"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetStudentDetails returns the student record for an email address.
func GetStudentDetails(c *fiber.Ctx) error {
	email := c.Params("email")
	if email == "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Email is required")
	}

	var student models.Student
	if err := database.Database.Db.Where("email = ?", email).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Student not found")
		}
		log.Printf("Error fetching student details for %s: %v", email, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.JSON(student)
}

// UpdateStudentDetails updates a student profile looked up by email.
// Past certificates keep their submission-time snapshot.
func UpdateStudentDetails(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedStudentDetails").(*struct {
		Email       string `json:"email"`
		Name        string `json:"name"`
		Phone       string `json:"phone"`
		Branch      string `json:"branch"`
		Year        string `json:"year"`
		Section     string `json:"section"`
		StudentRegd string `json:"studentRegd"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
	}

	var student models.Student
	if err := database.Database.Db.Where("email = ?", reqData.Email).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Student not found")
		}
		log.Printf("Error fetching student for update: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	student.Name = reqData.Name
	student.Phone = reqData.Phone
	student.Branch = reqData.Branch
	student.Year = reqData.Year
	student.Section = reqData.Section
	if reqData.StudentRegd != "" {
		student.StudentRegd = reqData.StudentRegd
	}

	if err := database.Database.Db.Save(&student).Error; err != nil {
		log.Printf("Error updating student %s: %v", reqData.Email, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.JSON(student)
}

// GetCertificatesByRegd lists a student's certificates by registration number.
func GetCertificatesByRegd(c *fiber.Ctx) error {
	studentRegd := c.Params("studentRegd")

	var certificates []models.Certificate
	if err := database.Database.Db.Where("student_regd = ?", studentRegd).
		Order("created_at DESC").
		Find(&certificates).Error; err != nil {
		log.Printf("Error fetching certificates for %s: %v", studentRegd, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	if len(certificates) == 0 {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "No certificates found")
	}

	return c.JSON(certificates)
}

// GetCertificatesByEmail lists a student's certificates by submitter email.
func GetCertificatesByEmail(c *fiber.Ctx) error {
	email := c.Params("email")

	var certificates []models.Certificate
	if err := database.Database.Db.Where("student_email = ?", email).
		Order("created_at DESC").
		Find(&certificates).Error; err != nil {
		log.Printf("Error fetching certificates for %s: %v", email, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	if certificates == nil {
		certificates = []models.Certificate{}
	}

	return c.JSON(certificates)
}
