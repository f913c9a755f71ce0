package models

import "time"

type Activity struct {
	ID            int64      `json:"id" db:"id"`
	StopID        int64      `json:"stop_id" db:"stop_id"`
	Name          string     `json:"name" db:"name"`
	Category      *string    `json:"category" db:"category"`
	Description   *string    `json:"description" db:"description"`
	Duration      *string    `json:"duration" db:"duration"`
	Cost          *string    `json:"cost" db:"cost"`
	Rating        *float64   `json:"rating" db:"rating"`
	ScheduledTime *time.Time `json:"scheduled_time" db:"scheduled_time"`
	Notes         *string    `json:"notes" db:"notes"`
	ImageURL      *string    `json:"image_url" db:"image_url"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

type ActivityCreate struct {
	StopID        int64      `json:"stop_id" binding:"required,gt=0"`
	Name          string     `json:"name" binding:"required,max=255"`
	Category      *string    `json:"category"`
	Description   *string    `json:"description"`
	Duration      *string    `json:"duration"`
	Cost          *string    `json:"cost" binding:"omitempty,oneof=$ $$ $$$ $$$$"`
	Rating        *float64   `json:"rating" binding:"omitempty,gte=0,lte=5"`
	ScheduledTime *time.Time `json:"scheduled_time"`
	Notes         *string    `json:"notes"`
	ImageURL      *string    `json:"image_url"`
}

func (in ActivityCreate) ToActivity() Activity {
	return Activity{
		StopID:        in.StopID,
		Name:          in.Name,
		Category:      in.Category,
		Description:   in.Description,
		Duration:      in.Duration,
		Cost:          in.Cost,
		Rating:        in.Rating,
		ScheduledTime: in.ScheduledTime,
		Notes:         in.Notes,
		ImageURL:      in.ImageURL,
	}
}

type ActivityUpdate struct {
	Name          *string    `json:"name" binding:"omitempty,min=1,max=255"`
	Category      *string    `json:"category"`
	Description   *string    `json:"description"`
	Duration      *string    `json:"duration"`
	Cost          *string    `json:"cost" binding:"omitempty,oneof=$ $$ $$$ $$$$"`
	Rating        *float64   `json:"rating" binding:"omitempty,gte=0,lte=5"`
	ScheduledTime *time.Time `json:"scheduled_time"`
	Notes         *string    `json:"notes"`
	ImageURL      *string    `json:"image_url"`
}

func (u ActivityUpdate) ApplyTo(dst *Activity) {
	if u.Name != nil {
		dst.Name = *u.Name
	}
	if u.Category != nil {
		dst.Category = u.Category
	}
	if u.Description != nil {
		dst.Description = u.Description
	}
	if u.Duration != nil {
		dst.Duration = u.Duration
	}
	if u.Cost != nil {
		dst.Cost = u.Cost
	}
	if u.Rating != nil {
		dst.Rating = u.Rating
	}
	if u.ScheduledTime != nil {
		dst.ScheduledTime = u.ScheduledTime
	}
	if u.Notes != nil {
		dst.Notes = u.Notes
	}
	if u.ImageURL != nil {
		dst.ImageURL = u.ImageURL
	}
}
