package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile is a row of the profiles table. Only the columns the matcher reads
// are mapped; everything else is owned by the main application.
type Profile struct {
	ID                    uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Username              string    `gorm:"type:text" json:"username"`
	FullName              string    `gorm:"type:text" json:"full_name"`
	ProfessionalRoles     []string  `gorm:"type:jsonb;serializer:json" json:"professional_roles"`
	Skills                []string  `gorm:"type:jsonb;serializer:json" json:"skills"`
	SoftwareProficiencies []string  `gorm:"type:jsonb;serializer:json" json:"software_proficiencies"`
	CollaborationStyles   []string  `gorm:"type:jsonb;serializer:json" json:"collaboration_styles"`
	Location              string    `gorm:"type:text" json:"location"`
	CreatedAt             time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt             time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}

// Snapshot returns the scoring view of the profile.
func (p *Profile) Snapshot() ProfileSnapshot {
	return ProfileSnapshot{
		ProfessionalRoles:     p.ProfessionalRoles,
		Skills:                p.Skills,
		SoftwareProficiencies: p.SoftwareProficiencies,
		CollaborationStyles:   p.CollaborationStyles,
		Location:              p.Location,
	}
}

// ProfileSnapshot is the set of professional tags two users are compared on.
// Every field is optional.
type ProfileSnapshot struct {
	ProfessionalRoles     []string `json:"professional_roles"`
	Skills                []string `json:"skills"`
	SoftwareProficiencies []string `json:"software_proficiencies"`
	CollaborationStyles   []string `json:"collaboration_styles"`
	Location              string   `json:"location"`
}
