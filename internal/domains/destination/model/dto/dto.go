package dto

import (
	"github.com/google/uuid"

	"tourism/internal/domains/destination/model"
	"tourism/shared"
	gDto "tourism/shared/dto"
	gModel "tourism/shared/model"
	"tourism/shared/search"
	"tourism/shared/slug"
	"tourism/shared/timezone"
)

type ImageRequest struct {
	ImageURL  string  `json:"image_url"  validate:"required,max=2048"`
	Caption   *string `json:"caption"    validate:"omitempty,max=200"`
	SortOrder *int    `json:"sort_order" validate:"omitempty,gte=0"`
}

type CreateDestinationRequest struct {
	Name            string         `json:"name"               validate:"required,max=150"`
	Slug            *string        `json:"slug"               validate:"omitempty,max=160,slug"`
	Description     *string        `json:"description"`
	CoverImageURL   *string        `json:"cover_image_url"    validate:"omitempty,max=2048"`
	District        *string        `json:"district"           validate:"omitempty,max=100"`
	Latitude        *float64       `json:"latitude"           validate:"omitempty,latitude"`
	Longitude       *float64       `json:"longitude"          validate:"omitempty,longitude"`
	BestTimeToVisit *string        `json:"best_time_to_visit" validate:"omitempty,max=100"`
	HowToReach      *string        `json:"how_to_reach"`
	IsFeatured      bool           `json:"is_featured"`
	IsActive        *bool          `json:"is_active"`
	Images          []ImageRequest `json:"images"             validate:"omitempty,dive"`
}

// ToModel builds the destination and its gallery. Images without a sort_order keep their request position.
func (c *CreateDestinationRequest) ToModel(user string) model.Aggregate {
	destination := model.Destination{
		ID:              uuid.NewString(),
		Name:            c.Name,
		Slug:            slug.Make(c.Name),
		Description:     c.Description,
		CoverImageURL:   c.CoverImageURL,
		District:        c.District,
		Latitude:        c.Latitude,
		Longitude:       c.Longitude,
		BestTimeToVisit: c.BestTimeToVisit,
		HowToReach:      c.HowToReach,
		IsFeatured:      c.IsFeatured,
		IsActive:        true,
		Metadata:        gModel.NewMetadata(user, timezone.Now()),
	}

	if c.Slug != nil && *c.Slug != "" {
		destination.Slug = *c.Slug
	}

	if c.IsActive != nil {
		destination.IsActive = *c.IsActive
	}

	images := make([]model.Image, len(c.Images))
	for i, img := range c.Images {
		images[i] = model.Image{
			ID:            uuid.NewString(),
			DestinationID: destination.ID,
			ImageURL:      img.ImageURL,
			Caption:       img.Caption,
			SortOrder:     i,
		}

		if img.SortOrder != nil {
			images[i].SortOrder = *img.SortOrder
		}
	}

	return model.Aggregate{Destination: destination, Images: images}
}

type UpdateDestinationRequest struct {
	Name            *string  `db:"name"               json:"name"               validate:"omitempty,max=150"`
	Slug            *string  `db:"slug"               json:"slug"               validate:"omitempty,max=160,slug"`
	Description     *string  `db:"description"        json:"description"`
	CoverImageURL   *string  `db:"cover_image_url"    json:"cover_image_url"    validate:"omitempty,max=2048"`
	District        *string  `db:"district"           json:"district"           validate:"omitempty,max=100"`
	Latitude        *float64 `db:"latitude"           json:"latitude"           validate:"omitempty,latitude"`
	Longitude       *float64 `db:"longitude"          json:"longitude"          validate:"omitempty,longitude"`
	BestTimeToVisit *string  `db:"best_time_to_visit" json:"best_time_to_visit" validate:"omitempty,max=100"`
	HowToReach      *string  `db:"how_to_reach"       json:"how_to_reach"`
	IsFeatured      *bool    `db:"is_featured"        json:"is_featured"`
	IsActive        *bool    `db:"is_active"          json:"is_active"`
}

type ImageResponse struct {
	ID        string  `json:"id"`
	ImageURL  string  `json:"image_url"`
	Caption   *string `json:"caption"`
	SortOrder int     `json:"sort_order"`
}

type DestinationResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Slug            string          `json:"slug"`
	Description     *string         `json:"description"`
	CoverImageURL   *string         `json:"cover_image_url"`
	District        *string         `json:"district"`
	Latitude        *float64        `json:"latitude"`
	Longitude       *float64        `json:"longitude"`
	BestTimeToVisit *string         `json:"best_time_to_visit"`
	HowToReach      *string         `json:"how_to_reach"`
	IsFeatured      bool            `json:"is_featured"`
	IsActive        bool            `json:"is_active"`
	Images          []ImageResponse `json:"images"`
	gDto.Metadata
}

func (r *DestinationResponse) FromModel(m model.Destination, images []model.Image) {
	r.ID = m.ID
	r.Name = m.Name
	r.Slug = m.Slug
	r.Description = m.Description
	r.CoverImageURL = m.CoverImageURL
	r.District = m.District
	r.Latitude = m.Latitude
	r.Longitude = m.Longitude
	r.BestTimeToVisit = m.BestTimeToVisit
	r.HowToReach = m.HowToReach
	r.IsFeatured = m.IsFeatured
	r.IsActive = m.IsActive
	r.Metadata.FromModel(m.Metadata)

	r.Images = make([]ImageResponse, len(images))
	for i, img := range images {
		r.Images[i] = ImageResponse{ID: img.ID, ImageURL: img.ImageURL, Caption: img.Caption, SortOrder: img.SortOrder}
	}
}

type GetDestinationsResponse struct {
	Destinations []DestinationResponse `json:"destinations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

// FromModels renders models with the images grouped by destination id.
func (r *GetDestinationsResponse) FromModels(models []model.Destination, images []model.Image, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	byDestination := map[string][]model.Image{}
	for _, img := range images {
		byDestination[img.DestinationID] = append(byDestination[img.DestinationID], img)
	}

	r.Destinations = make([]DestinationResponse, len(models))
	for i, mod := range models {
		r.Destinations[i].FromModel(mod, byDestination[mod.ID])
	}
}

type SuggestRequest struct {
	Query string `json:"q"     validate:"required,max=100"`
	Limit int    `json:"limit" validate:"omitempty,gte=1,lte=20"`
}

type SuggestResponse struct {
	Query       string         `json:"query"`
	Suggestions []search.Match `json:"suggestions"`
}
