package models

import "time"

type Stop struct {
	ID         int64     `json:"id" db:"id"`
	TripID     int64     `json:"trip_id" db:"trip_id"`
	CityID     int64     `json:"city_id" db:"city_id"`
	OrderIndex int       `json:"order_index" db:"order_index"`
	StartDate  time.Time `json:"start_date" db:"start_date"`
	EndDate    time.Time `json:"end_date" db:"end_date"`
	Notes      *string   `json:"notes" db:"notes"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

type StopCreate struct {
	TripID     int64     `json:"trip_id" binding:"required,gt=0"`
	CityID     int64     `json:"city_id" binding:"required,gt=0"`
	OrderIndex *int      `json:"order_index" binding:"required,gte=0"`
	StartDate  time.Time `json:"start_date" binding:"required"`
	EndDate    time.Time `json:"end_date" binding:"required"`
	Notes      *string   `json:"notes"`
}

func (in StopCreate) ToStop() Stop {
	s := Stop{
		TripID:    in.TripID,
		CityID:    in.CityID,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Notes:     in.Notes,
	}
	if in.OrderIndex != nil {
		s.OrderIndex = *in.OrderIndex
	}
	return s
}

type StopUpdate struct {
	CityID     *int64     `json:"city_id" binding:"omitempty,gt=0"`
	OrderIndex *int       `json:"order_index" binding:"omitempty,gte=0"`
	StartDate  *time.Time `json:"start_date"`
	EndDate    *time.Time `json:"end_date"`
	Notes      *string    `json:"notes"`
}

func (u StopUpdate) ApplyTo(dst *Stop) {
	if u.CityID != nil {
		dst.CityID = *u.CityID
	}
	if u.OrderIndex != nil {
		dst.OrderIndex = *u.OrderIndex
	}
	if u.StartDate != nil {
		dst.StartDate = *u.StartDate
	}
	if u.EndDate != nil {
		dst.EndDate = *u.EndDate
	}
	if u.Notes != nil {
		dst.Notes = u.Notes
	}
}
