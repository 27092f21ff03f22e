package lead

import "time"

// Lead is a contact captured locally when no CRM is configured.
type Lead struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Key          string    `gorm:"column:lead_key;uniqueIndex;size:36" json:"key"`
	ContactID    string    `gorm:"column:contact_id;index;size:64" json:"contact_id"`
	FirstName    string    `gorm:"column:first_name" json:"first_name,omitempty"`
	LastName     string    `gorm:"column:last_name" json:"last_name,omitempty"`
	Email        string    `gorm:"column:email;index" json:"email"`
	Phone        string    `gorm:"column:phone" json:"phone,omitempty"`
	Company      string    `gorm:"column:company" json:"company,omitempty"`
	Notes        string    `gorm:"column:notes" json:"notes,omitempty"`
	LeadCategory string    `gorm:"column:lead_category" json:"lead_category,omitempty"`
	ICPScore     *int      `gorm:"column:icp_score" json:"icp_score,omitempty"`
	Selections   string    `gorm:"column:selections" json:"selections,omitempty"`   // JSON
	Attachments  string    `gorm:"column:attachments" json:"attachments,omitempty"` // JSON
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Lead) TableName() string { return "leads" }

// FullName joins first and last name.
func (l *Lead) FullName() string {
	switch {
	case l.FirstName != "" && l.LastName != "":
		return l.FirstName + " " + l.LastName
	case l.FirstName != "":
		return l.FirstName
	default:
		return l.LastName
	}
}
