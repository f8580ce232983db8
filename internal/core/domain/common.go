package domain

import "time"

// AuditTimes holds standard audit timestamps for domain entities.
type AuditTimes struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}
