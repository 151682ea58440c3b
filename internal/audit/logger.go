package audit

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/barberlane/booking-engine/internal/models"
)

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(
	appointmentID *uint,
	actorID *uint,
	action string,
	oldStatus string,
	newStatus string,
	metadata any,
) error {

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.StatusAudit{
		AppointmentID: appointmentID,
		ActorID:       actorID,
		Action:        action,
		OldStatus:     oldStatus,
		NewStatus:     newStatus,
		Metadata:      metaJSON,
	}

	return l.db.Create(&entry).Error
}
