package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SchoolModel maps the schools table (partner schools). Soft-deleted via
// is_active so historic enrollments keep their reference.
type SchoolModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:160;not null" json:"name"`
	SIECode   string    `gorm:"column:sie_code;size:30;uniqueIndex;not null" json:"sie_code"`
	Slug      string    `gorm:"size:160;uniqueIndex;not null" json:"slug"`
	Address   string    `gorm:"size:255" json:"address"`
	Phone     string    `gorm:"size:30" json:"phone"`
	Email     string    `gorm:"size:255" json:"email"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Agreements []AgreementModel `gorm:"many2many:school_agreements;foreignKey:ID;joinForeignKey:SchoolID;References:ID;joinReferences:AgreementID" json:"agreements,omitempty"`
}

func (SchoolModel) TableName() string {
	return "schools"
}

func (s *SchoolModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// AgreementModel maps the agreements table (partner discount agreements).
type AgreementModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name            string     `gorm:"size:160;not null" json:"name"`
	DiscountPercent float64    `gorm:"type:numeric(5,2);not null;default:0" json:"discount_percent"`
	ValidFrom       *time.Time `gorm:"type:date" json:"valid_from,omitempty"`
	ValidUntil      *time.Time `gorm:"type:date" json:"valid_until,omitempty"`
	IsActive        bool       `gorm:"not null;default:true" json:"is_active"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AgreementModel) TableName() string {
	return "agreements"
}

func (a *AgreementModel) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// SchoolAgreementModel is the explicit join row.
type SchoolAgreementModel struct {
	SchoolID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"school_id"`
	AgreementID uuid.UUID `gorm:"type:uuid;primaryKey" json:"agreement_id"`
}

func (SchoolAgreementModel) TableName() string {
	return "school_agreements"
}

// ClassroomModel maps the classrooms table.
type ClassroomModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:80;not null" json:"name"`
	Capacity  int       `gorm:"not null;default:0" json:"capacity"`
	Location  string    `gorm:"size:160" json:"location"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ClassroomModel) TableName() string {
	return "classrooms"
}

func (cl *ClassroomModel) BeforeCreate(tx *gorm.DB) error {
	if cl.ID == uuid.Nil {
		cl.ID = uuid.New()
	}
	return nil
}
