package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrAlertNotFound is returned when the alert id does not exist
	ErrAlertNotFound = errors.New("alert not found")

	// ErrAlertAlreadyAcknowledged is returned when acknowledging twice
	ErrAlertAlreadyAcknowledged = errors.New("alert already acknowledged")
)

// AlertType classifies what an alert is about.
type AlertType string

const (
	TypeExpiry                AlertType = "EXPIRY"
	TypeLowStock              AlertType = "LOW_STOCK"
	TypeRestockRecommendation AlertType = "RESTOCK_RECOMMENDATION"
)

// Severity ranks how urgent an alert is.
type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityWarning  Severity = "WARNING"
	SeverityInfo     Severity = "INFO"
)

// Alert is a persisted warning tied to a batch. Acknowledging records who
// dismissed it and when; acknowledged alerts drop out of every listing.
type Alert struct {
	ID             uuid.UUID  `json:"id" db:"id"`
	BatchID        uuid.UUID  `json:"batch_id" db:"batch_id"`
	AlertType      AlertType  `json:"alert_type" db:"alert_type"`
	Severity       Severity   `json:"severity" db:"severity"`
	Message        string     `json:"message" db:"message"`
	IsAcknowledged bool       `json:"is_acknowledged" db:"is_acknowledged"`
	AcknowledgedBy *uuid.UUID `json:"acknowledged_by" db:"acknowledged_by"`
	AcknowledgedAt *time.Time `json:"acknowledged_at" db:"acknowledged_at"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`

	// Joined from the batch for read paths
	BatchNumber string `json:"batch_number" db:"batch_number"`
	ProductName string `json:"product_name" db:"product_name"`
}

// GenerateResult summarizes one expiry sweep.
type GenerateResult struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}
