package dto

import "github.com/google/uuid"

type CreateSchoolRequest struct {
	Name    string `json:"name" validate:"required,max=160"`
	SIECode string `json:"sie_code" validate:"required,max=30"`
	Address string `json:"address" validate:"omitempty,max=255"`
	Phone   string `json:"phone" validate:"omitempty,max=30"`
	Email   string `json:"email" validate:"omitempty,email,max=255"`
}

type UpdateSchoolRequest struct {
	Name    *string `json:"name" validate:"omitempty,max=160"`
	SIECode *string `json:"sie_code" validate:"omitempty,max=30"`
	Address *string `json:"address" validate:"omitempty,max=255"`
	Phone   *string `json:"phone" validate:"omitempty,max=30"`
	Email   *string `json:"email" validate:"omitempty,email,max=255"`
}

type CreateAgreementRequest struct {
	Name            string  `json:"name" validate:"required,max=160"`
	DiscountPercent float64 `json:"discount_percent" validate:"gte=0,lte=100"`
	ValidFrom       *string `json:"valid_from" validate:"omitempty,datetime=2006-01-02"`
	ValidUntil      *string `json:"valid_until" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateAgreementRequest struct {
	Name            *string  `json:"name" validate:"omitempty,max=160"`
	DiscountPercent *float64 `json:"discount_percent" validate:"omitempty,gte=0,lte=100"`
	ValidFrom       *string  `json:"valid_from" validate:"omitempty,datetime=2006-01-02"`
	ValidUntil      *string  `json:"valid_until" validate:"omitempty,datetime=2006-01-02"`
	IsActive        *bool    `json:"is_active"`
}

type LinkAgreementRequest struct {
	AgreementID uuid.UUID `json:"agreement_id" validate:"required"`
}

type CreateClassroomRequest struct {
	Name     string `json:"name" validate:"required,max=80"`
	Capacity int    `json:"capacity" validate:"gte=0"`
	Location string `json:"location" validate:"omitempty,max=160"`
}

type UpdateClassroomRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=80"`
	Capacity *int    `json:"capacity" validate:"omitempty,gte=0"`
	Location *string `json:"location" validate:"omitempty,max=160"`
}
