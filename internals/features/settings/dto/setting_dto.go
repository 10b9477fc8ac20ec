package dto

import "gorm.io/datatypes"

type UpdateSettingRequest struct {
	Value datatypes.JSON `json:"value" validate:"required"`
}
