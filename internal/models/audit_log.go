package models

// AuditLog records sensitive operations: logins, new records and published snapshots.
type AuditLog struct {
	Base
	Username     string `gorm:"not null;index" json:"username"`
	Role         Role   `gorm:"size:16" json:"role"`
	Action       string `gorm:"not null" json:"action"`
	ResourceType string `gorm:"not null" json:"resource_type"`
	ResourceID   int64  `json:"resource_id"`
	IPAddress    string `json:"ip_address"`
	Changes      string `json:"changes,omitempty"`
}
