package certificateController_test

import (
	"bytes"
	"certhub/config"
	"certhub/database"
	"certhub/models"
	certificateRoutes "certhub/routers/certificateRoutes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{UploadDir: t.TempDir(), MaxUploadMB: 10}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Student{}, &models.Certificate{}))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	certificateRoutes.SetupCertificateRoutes(app)
	return app
}

func seedStudent(t *testing.T) models.Student {
	t.Helper()
	student := models.Student{
		StudentRegd: "20CS001",
		Name:        "Asha Rao",
		Email:       "asha@example.edu",
		Year:        "3",
	}
	require.NoError(t, database.Database.Db.Create(&student).Error)
	return student
}

func defaultFields() map[string]string {
	return map[string]string{
		"name":         "Asha Rao",
		"studentRegd":  "20CS001",
		"year":         "3",
		"eventName":    "Hackathon",
		"eventDate":    "2026-02-14",
		"phone":        "9999999999",
		"category":     "Technical",
		"studentEmail": "asha@example.edu",
	}
}

func uploadRequest(t *testing.T, mediaType string, withFile bool, fields map[string]string) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	if withFile {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="certificate"; filename="achievement.pdf"`)
		h.Set("Content-Type", mediaType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write([]byte("%PDF-1.4 test certificate"))
		require.NoError(t, err)
	}

	for key, value := range fields {
		require.NoError(t, w.WriteField(key, value))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload-certificate", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func storedFileCount(t *testing.T) int {
	t.Helper()
	entries, err := os.ReadDir(config.AppConfig.UploadDir)
	require.NoError(t, err)
	return len(entries)
}

func TestUploadCertificate(t *testing.T) {
	app := setupApp(t)
	student := seedStudent(t)

	resp, err := app.Test(uploadRequest(t, "application/pdf", true, defaultFields()))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var payload struct {
		Message  string `json:"message"`
		FilePath string `json:"filePath"`
	}
	require.NoError(t, json.Unmarshal(respBody, &payload))
	assert.Equal(t, "Certificate uploaded successfully!", payload.Message)
	assert.FileExists(t, payload.FilePath)

	var cert models.Certificate
	require.NoError(t, database.Database.Db.First(&cert).Error)
	assert.Equal(t, models.StatusPending, cert.Status)
	assert.Equal(t, student.ID, cert.StudentID)
	assert.Equal(t, "Asha Rao", cert.Name)
	assert.Equal(t, "Hackathon", cert.EventName)
	assert.Equal(t, "Technical", cert.Category)
	assert.Equal(t, payload.FilePath, cert.FilePath)
}

func TestUploadCertificateRejectsNonPDF(t *testing.T) {
	app := setupApp(t)
	seedStudent(t)

	resp, err := app.Test(uploadRequest(t, "image/png", true, defaultFields()))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// the check runs before persistence: nothing reaches the store
	assert.Zero(t, storedFileCount(t))

	var count int64
	database.Database.Db.Model(&models.Certificate{}).Count(&count)
	assert.Zero(t, count)
}

func TestUploadCertificateUnknownStudent(t *testing.T) {
	app := setupApp(t)

	fields := defaultFields()
	fields["studentRegd"] = "99XX999"
	resp, err := app.Test(uploadRequest(t, "application/pdf", true, fields))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var count int64
	database.Database.Db.Model(&models.Certificate{}).Count(&count)
	assert.Zero(t, count)
}

func TestUploadCertificateMissingFile(t *testing.T) {
	app := setupApp(t)
	seedStudent(t)

	resp, err := app.Test(uploadRequest(t, "", false, defaultFields()))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUploadCertificateMissingMetadata(t *testing.T) {
	app := setupApp(t)
	seedStudent(t)

	fields := defaultFields()
	delete(fields, "studentRegd")
	resp, err := app.Test(uploadRequest(t, "application/pdf", true, fields))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
