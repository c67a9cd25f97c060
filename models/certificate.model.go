package models

import (
	"gorm.io/gorm"
)

// CertificateStatus enumerates the moderation states of a certificate.
type CertificateStatus string

const (
	StatusPending  CertificateStatus = "Pending"
	StatusApproved CertificateStatus = "Approved"
	StatusRejected CertificateStatus = "Rejected"
)

// ParseStatus maps a request value onto a known status.
func ParseStatus(value string) (CertificateStatus, bool) {
	switch CertificateStatus(value) {
	case StatusPending, StatusApproved, StatusRejected:
		return CertificateStatus(value), true
	}
	return "", false
}

// CanTransitionTo reports whether a moderation action may move a
// certificate from s to target. A decision may be reversed between
// Approved and Rejected, but nothing returns to Pending.
func (s CertificateStatus) CanTransitionTo(target CertificateStatus) bool {
	if target != StatusApproved && target != StatusRejected {
		return false
	}
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// Certificate is one submitted achievement certificate. Submitter fields
// are a snapshot taken at submission time; later Student profile edits do
// not rewrite past certificates.
type Certificate struct {
	gorm.Model
	StudentID    uint              `json:"studentId" gorm:"index;not null"`
	Name         string            `json:"name"`
	StudentRegd  string            `json:"studentRegd" gorm:"index"`
	Year         string            `json:"year"`
	EventName    string            `json:"eventName"`
	EventDate    string            `json:"eventDate"`
	Phone        string            `json:"phone"`
	Category     string            `json:"category" gorm:"index"`
	StudentEmail string            `json:"studentEmail" gorm:"index"`
	FileURL      string            `json:"fileUrl"`
	FilePath     string            `json:"filePath"`
	Status       CertificateStatus `json:"status" gorm:"default:'Pending'"`
}
