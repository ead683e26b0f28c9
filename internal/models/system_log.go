package models

import "time"

type SystemLog struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	UserID   string `gorm:"size:36;index;not null" json:"user_id"`
	UserName string `gorm:"size:100" json:"user_name"`
	UserCPF  string `gorm:"size:14" json:"user_cpf"`

	Action  string `gorm:"size:50;not null;index" json:"action"`
	Details string `gorm:"type:text" json:"details"`

	TargetID   *string `gorm:"size:36" json:"target_id"`
	TargetName string  `gorm:"size:100" json:"target_name"`

	IPAddress string `gorm:"size:64" json:"ip_address"`
	UserAgent string `gorm:"size:255" json:"user_agent"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
