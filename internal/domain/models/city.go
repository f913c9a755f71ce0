package models

import "time"

// City is shared reference data; stops point at it but never own it.
type City struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Country     string    `json:"country" db:"country"`
	Region      *string   `json:"region" db:"region"`
	CostIndex   *string   `json:"cost_index" db:"cost_index"`
	Popularity  *string   `json:"popularity" db:"popularity"`
	Description *string   `json:"description" db:"description"`
	ImageURL    *string   `json:"image_url" db:"image_url"`
	Latitude    *float64  `json:"latitude" db:"latitude"`
	Longitude   *float64  `json:"longitude" db:"longitude"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

type CityCreate struct {
	Name        string   `json:"name" binding:"required,max=255"`
	Country     string   `json:"country" binding:"required,max=255"`
	Region      *string  `json:"region"`
	CostIndex   *string  `json:"cost_index" binding:"omitempty,oneof=$ $$ $$$ $$$$"`
	Popularity  *string  `json:"popularity" binding:"omitempty,oneof='Low' 'Medium' 'High' 'Very High'"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"image_url"`
	Latitude    *float64 `json:"latitude" binding:"omitempty,gte=-90,lte=90"`
	Longitude   *float64 `json:"longitude" binding:"omitempty,gte=-180,lte=180"`
}

func (in CityCreate) ToCity() City {
	return City{
		Name:        in.Name,
		Country:     in.Country,
		Region:      in.Region,
		CostIndex:   in.CostIndex,
		Popularity:  in.Popularity,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
	}
}

type CityUpdate struct {
	Name        *string  `json:"name" binding:"omitempty,min=1,max=255"`
	Country     *string  `json:"country" binding:"omitempty,min=1,max=255"`
	Region      *string  `json:"region"`
	CostIndex   *string  `json:"cost_index" binding:"omitempty,oneof=$ $$ $$$ $$$$"`
	Popularity  *string  `json:"popularity" binding:"omitempty,oneof='Low' 'Medium' 'High' 'Very High'"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"image_url"`
	Latitude    *float64 `json:"latitude" binding:"omitempty,gte=-90,lte=90"`
	Longitude   *float64 `json:"longitude" binding:"omitempty,gte=-180,lte=180"`
}

func (u CityUpdate) ApplyTo(dst *City) {
	if u.Name != nil {
		dst.Name = *u.Name
	}
	if u.Country != nil {
		dst.Country = *u.Country
	}
	if u.Region != nil {
		dst.Region = u.Region
	}
	if u.CostIndex != nil {
		dst.CostIndex = u.CostIndex
	}
	if u.Popularity != nil {
		dst.Popularity = u.Popularity
	}
	if u.Description != nil {
		dst.Description = u.Description
	}
	if u.ImageURL != nil {
		dst.ImageURL = u.ImageURL
	}
	if u.Latitude != nil {
		dst.Latitude = u.Latitude
	}
	if u.Longitude != nil {
		dst.Longitude = u.Longitude
	}
}

// CityFilter: Region is an exact match, Search a case-insensitive substring of name or country.
type CityFilter struct {
	Region string `form:"region"`
	Search string `form:"search"`
}
