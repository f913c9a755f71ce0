package models

import "time"

// User is the stored account. PasswordHash never leaves the server.
type User struct {
	ID             int64     `json:"id" db:"id"`
	Email          string    `json:"email" db:"email"`
	Username       string    `json:"username" db:"username"`
	PasswordHash   string    `json:"-" db:"hashed_password"`
	FirstName      *string   `json:"first_name" db:"first_name"`
	LastName       *string   `json:"last_name" db:"last_name"`
	Phone          *string   `json:"phone" db:"phone"`
	City           *string   `json:"city" db:"city"`
	Country        *string   `json:"country" db:"country"`
	AdditionalInfo *string   `json:"additional_info" db:"additional_info"`
	IsActive       bool      `json:"is_active" db:"is_active"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

type UserCreate struct {
	Email          string  `json:"email" binding:"required,email"`
	Username       string  `json:"username" binding:"required,min=3,max=64"`
	Password       string  `json:"password" binding:"required,min=8"`
	FirstName      *string `json:"first_name"`
	LastName       *string `json:"last_name"`
	Phone          *string `json:"phone"`
	City           *string `json:"city"`
	Country        *string `json:"country"`
	AdditionalInfo *string `json:"additional_info"`
}

// ToUser builds an active user; the caller supplies the bcrypt hash.
func (in UserCreate) ToUser(passwordHash string) User {
	return User{
		Email:          in.Email,
		Username:       in.Username,
		PasswordHash:   passwordHash,
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Phone:          in.Phone,
		City:           in.City,
		Country:        in.Country,
		AdditionalInfo: in.AdditionalInfo,
		IsActive:       true,
	}
}

type UserUpdate struct {
	Email          *string `json:"email" binding:"omitempty,email"`
	Username       *string `json:"username" binding:"omitempty,min=3,max=64"`
	IsActive       *bool   `json:"is_active"`
	FirstName      *string `json:"first_name"`
	LastName       *string `json:"last_name"`
	Phone          *string `json:"phone"`
	City           *string `json:"city"`
	Country        *string `json:"country"`
	AdditionalInfo *string `json:"additional_info"`
}

func (u UserUpdate) ApplyTo(dst *User) {
	if u.Email != nil {
		dst.Email = *u.Email
	}
	if u.Username != nil {
		dst.Username = *u.Username
	}
	if u.IsActive != nil {
		dst.IsActive = *u.IsActive
	}
	if u.FirstName != nil {
		dst.FirstName = u.FirstName
	}
	if u.LastName != nil {
		dst.LastName = u.LastName
	}
	if u.Phone != nil {
		dst.Phone = u.Phone
	}
	if u.City != nil {
		dst.City = u.City
	}
	if u.Country != nil {
		dst.Country = u.Country
	}
	if u.AdditionalInfo != nil {
		dst.AdditionalInfo = u.AdditionalInfo
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}
