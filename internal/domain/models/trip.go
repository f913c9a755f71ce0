package models

import "time"

const (
	TripStatusUpcoming  = "upcoming"
	TripStatusCompleted = "completed"
	TripStatusArchived  = "archived"
)

type Trip struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"user_id" db:"user_id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description" db:"description"`
	StartDate   time.Time `json:"start_date" db:"start_date"`
	EndDate     time.Time `json:"end_date" db:"end_date"`
	Status      string    `json:"status" db:"status"`
	CoverImage  *string   `json:"cover_image" db:"cover_image"`
	IsPublic    bool      `json:"is_public" db:"is_public"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

type TripCreate struct {
	Name        string    `json:"name" binding:"required,max=255"`
	Description *string   `json:"description"`
	StartDate   time.Time `json:"start_date" binding:"required"`
	EndDate     time.Time `json:"end_date" binding:"required"`
	Status      string    `json:"status" binding:"omitempty,oneof=upcoming completed archived"`
	CoverImage  *string   `json:"cover_image"`
	IsPublic    *bool     `json:"is_public"`
}

// ToTrip applies the create defaults (status upcoming, private).
func (in TripCreate) ToTrip(userID int64) Trip {
	t := Trip{
		UserID:      userID,
		Name:        in.Name,
		Description: in.Description,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Status:      in.Status,
		CoverImage:  in.CoverImage,
	}
	if t.Status == "" {
		t.Status = TripStatusUpcoming
	}
	if in.IsPublic != nil {
		t.IsPublic = *in.IsPublic
	}
	return t
}

type TripUpdate struct {
	Name        *string    `json:"name" binding:"omitempty,min=1,max=255"`
	Description *string    `json:"description"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Status      *string    `json:"status" binding:"omitempty,oneof=upcoming completed archived"`
	CoverImage  *string    `json:"cover_image"`
	IsPublic    *bool      `json:"is_public"`
}

func (u TripUpdate) ApplyTo(dst *Trip) {
	if u.Name != nil {
		dst.Name = *u.Name
	}
	if u.Description != nil {
		dst.Description = u.Description
	}
	if u.StartDate != nil {
		dst.StartDate = *u.StartDate
	}
	if u.EndDate != nil {
		dst.EndDate = *u.EndDate
	}
	if u.Status != nil {
		dst.Status = *u.Status
	}
	if u.CoverImage != nil {
		dst.CoverImage = u.CoverImage
	}
	if u.IsPublic != nil {
		dst.IsPublic = *u.IsPublic
	}
}

type TripStatusUpdate struct {
	Status string `json:"status" binding:"required,oneof=upcoming completed archived"`
}

// TripFilter scopes a trip listing to one owner.
type TripFilter struct {
	UserID int64
	Status string
}
