package models

// AuditLog records one successful ledger mutation.
type AuditLog struct {
	Base
	Action       string `gorm:"not null" json:"action"`
	ResourceType string `gorm:"not null" json:"resource_type"`
	ResourceID   string `json:"resource_id"`
	Source       string `json:"source"`
	Changes      string `json:"changes,omitempty"`
}
