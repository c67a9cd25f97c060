package utils

import (
	"certhub/config"
	"certhub/database"
	"certhub/models"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
)

// logCleanup logs cleanup events with timestamp
func logCleanup(message string) {
	log.Printf("[UPLOAD-CLEANUP %s] %s", time.Now().Format(time.RFC3339), message)
}

// SweepOrphanedUploads removes files from the upload directory that no
// certificate references. A failed submission may leave its file behind
// by design; this sweep reclaims the space. Files newer than the start of
// the current day are left alone so in-flight uploads are never touched.
func SweepOrphanedUploads() {
	uploadDir := config.AppConfig.UploadDir

	entries, err := os.ReadDir(uploadDir)
	if err != nil {
		if !os.IsNotExist(err) {
			logCleanup("Error reading upload directory: " + err.Error())
		}
		return
	}

	var filePaths []string
	if err := database.Database.Db.Model(&models.Certificate{}).
		Pluck("file_path", &filePaths).Error; err != nil {
		logCleanup("Error fetching certificate file references: " + err.Error())
		return
	}

	referenced := make(map[string]bool, len(filePaths))
	for _, p := range filePaths {
		referenced[filepath.Base(p)] = true
	}

	cutoff := now.BeginningOfDay()
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || referenced[entry.Name()] {
			continue
		}
		info, err := entry.Info()
		if err != nil || !info.ModTime().Before(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(uploadDir, entry.Name())); err != nil {
			logCleanup("Error removing orphaned file " + entry.Name() + ": " + err.Error())
			continue
		}
		removed++
	}

	if removed > 0 {
		logCleanup(fmt.Sprintf("Removed %d orphaned file(s)", removed))
	}
}

// StartCleanupScheduler runs the orphaned-upload sweep once a day.
func StartCleanupScheduler() {
	c := cron.New()
	if _, err := c.AddFunc("@daily", SweepOrphanedUploads); err != nil {
		logCleanup("Error scheduling upload cleanup: " + err.Error())
		return
	}
	c.Start()
	logCleanup("Upload cleanup scheduler started")
}
