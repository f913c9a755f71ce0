package services

import (
	"context"
	"fmt"
	"strings"

	"globetrotter/internal/domain"
	"globetrotter/internal/domain/models"
	"globetrotter/internal/repositories"
	"globetrotter/internal/utils"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	Base
	// HashCost outside bcrypt's accepted range falls back to bcrypt.DefaultCost.
	HashCost int
}

func (s UserService) hashCost() int {
	if s.HashCost >= bcrypt.MinCost && s.HashCost <= bcrypt.MaxCost {
		return s.HashCost
	}
	return bcrypt.DefaultCost
}

func (s UserService) Create(ctx context.Context, in models.UserCreate) (models.User, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Username = strings.TrimSpace(in.Username)
	if in.Username == "" {
		return models.User{}, domain.ValidationError{Field: "username", Msg: "must not be blank"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.hashCost())
	if err != nil {
		return models.User{}, domain.InternalError{Msg: "failed to hash password", Err: err}
	}

	user := in.ToUser(string(hash))
	now := s.now()
	user.CreatedAt, user.UpdatedAt = now, now

	err = s.inTx(ctx, func(tx *sqlx.Tx) error {
		return repositories.UserRepository{DB: tx}.Create(ctx, &user)
	})
	if err != nil {
		return models.User{}, err
	}

	utils.LogEvent(s.RequestID, "user", "create", fmt.Sprintf("id=%d", user.ID))
	return user, nil
}

func (s UserService) List(ctx context.Context, page domain.Page) ([]models.User, error) {
	page, err := page.Normalize()
	if err != nil {
		return nil, err
	}
	return repositories.UserRepository{DB: s.db()}.List(ctx, page)
}

func (s UserService) Get(ctx context.Context, id int64) (models.User, error) {
	return repositories.UserRepository{DB: s.db()}.GetByID(ctx, id)
}

func (s UserService) Update(ctx context.Context, id int64, in models.UserUpdate) (models.User, error) {
	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		in.Email = &email
	}
	if in.Username != nil {
		username := strings.TrimSpace(*in.Username)
		if username == "" {
			return models.User{}, domain.ValidationError{Field: "username", Msg: "must not be blank"}
		}
		in.Username = &username
	}

	var user models.User
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		repo := repositories.UserRepository{DB: tx}
		current, err := repo.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		in.ApplyTo(&current)
		current.UpdatedAt = utils.NextUpdatedAt(s.now(), current.UpdatedAt)
		if err := repo.Update(ctx, current); err != nil {
			return err
		}
		user = current
		return nil
	})
	if err != nil {
		return models.User{}, err
	}

	utils.LogEvent(s.RequestID, "user", "update", fmt.Sprintf("id=%d", id))
	return user, nil
}

// Delete removes the user together with every trip they own.
func (s UserService) Delete(ctx context.Context, id int64) error {
	var total cascadeResult
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		users := repositories.UserRepository{DB: tx}
		if _, err := users.GetByIDForUpdate(ctx, id); err != nil {
			return err
		}
		tripIDs, err := repositories.TripRepository{DB: tx}.ListIDsByUser(ctx, id)
		if err != nil {
			return err
		}
		for _, tripID := range tripIDs {
			res, err := deleteTripCascade(ctx, tx, tripID)
			if err != nil {
				return err
			}
			total.add(res)
		}
		return users.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	utils.LogEvent(s.RequestID, "user", "delete", fmt.Sprintf("id=%d %s", id, total))
	return nil
}
