package dto

import (
	"github.com/google/uuid"

	"tourism/internal/domains/amenity/model"
	"tourism/shared"
	gDto "tourism/shared/dto"
	gModel "tourism/shared/model"
	"tourism/shared/timezone"
)

type CreateAmenityRequest struct {
	Name        string  `json:"name"        validate:"required,max=100"`
	Description *string `json:"description"`
	IconURL     *string `json:"icon_url"    validate:"omitempty,max=2048"`
}

func (c *CreateAmenityRequest) ToModel(user string) model.Amenity {
	return model.Amenity{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Description: c.Description,
		IconURL:     c.IconURL,
		Metadata:    gModel.NewMetadata(user, timezone.Now()),
	}
}

// UpdateAmenityRequest patches the descriptive fields; the name is the amenity's identity and stays fixed.
type UpdateAmenityRequest struct {
	Description *string `db:"description" json:"description"`
	IconURL     *string `db:"icon_url"    json:"icon_url"    validate:"omitempty,max=2048"`
}

func (u *UpdateAmenityRequest) IsEmpty() bool {
	return u.Description == nil && u.IconURL == nil
}

type AmenityResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	IconURL     *string `json:"icon_url"`
	gDto.Metadata
}

func (r *AmenityResponse) FromModel(m model.Amenity) {
	r.ID = m.ID
	r.Name = m.Name
	r.Description = m.Description
	r.IconURL = m.IconURL
	r.Metadata.FromModel(m.Metadata)
}

type GetAmenitiesResponse struct {
	Amenities []AmenityResponse `json:"amenities"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetAmenitiesResponse) FromModels(models []model.Amenity, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Amenities = make([]AmenityResponse, len(models))
	for i, mod := range models {
		r.Amenities[i].FromModel(mod)
	}
}
