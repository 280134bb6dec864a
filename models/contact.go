package models

import "time"

// ValidContactStatuses is the ENUM value set for contacts.status.
var ValidContactStatuses = []string{"New", "Read", "Replied", "Archived"}

// Contact represents the contacts table. Rows are append-heavy; after
// creation only the status normally changes.
type Contact struct {
	ID        int       `gorm:"primaryKey;column:id" json:"id"`
	Name      string    `gorm:"column:name" json:"name"`
	Email     string    `gorm:"column:email" json:"email"`
	Subject   *string   `gorm:"column:subject" json:"subject"`
	Message   string    `gorm:"column:message" json:"message"`
	Status    string    `gorm:"column:status" json:"status"`
	IPAddress *string   `gorm:"column:ip_address" json:"ip_address"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName overrides the table name for Contact
func (Contact) TableName() string {
	return "contacts"
}

// ContactRequest is the writable field set accepted by POST and PUT.
type ContactRequest struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Subject   *string `json:"subject"`
	Message   string  `json:"message"`
	Status    string  `json:"status"`
	IPAddress *string `json:"ip_address"`
}

// ContactStatusRequest is the body for the update_status partial update.
type ContactStatusRequest struct {
	ID     int    `json:"id"`
	Status string `json:"status"`
}
