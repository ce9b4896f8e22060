package repository

import (
	"context"
	"fmt"

	"github.com/bartracker/bar-price-tracker/internal/docstore"
	"github.com/bartracker/bar-price-tracker/internal/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, passwordHash string) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetPasswordHash(ctx context.Context, userID string) (string, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
}

type userRepository struct {
	store docstore.Store
}

func NewUserRepo(store docstore.Store) UserRepository {
	return &userRepository{store: store}
}

// CreateUser writes the profile and the password hash as two documents sharing one id.
func (r *userRepository) CreateUser(ctx context.Context, user *models.User, passwordHash string) error {
	id, err := r.store.Add(ctx, CollectionUsers, userDoc{
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		CreatedAt: user.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("creating user: %w", err)
	}

	if err := r.store.Set(ctx, CollectionUserPasswords, id, passwordDoc{UserID: id, PasswordHash: passwordHash}); err != nil {
		return fmt.Errorf("storing password for user %s: %w", id, err)
	}

	user.ID = id

	return nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	snaps, err := r.store.Query(ctx, CollectionUsers, docstore.Eq(fieldEmail, email))
	if err != nil {
		return nil, fmt.Errorf("querying user by email: %w", err)
	}

	if len(snaps) == 0 {
		return nil, ErrNotFound
	}

	var doc userDoc
	if err := snaps[0].DataTo(&doc); err != nil {
		return nil, err
	}

	return doc.toModel(snaps[0].ID()), nil
}

func (r *userRepository) GetPasswordHash(ctx context.Context, userID string) (string, error) {
	var doc passwordDoc
	if err := r.store.Get(ctx, CollectionUserPasswords, userID, &doc); err != nil {
		return "", fmt.Errorf("getting password for user %s: %w", userID, err)
	}

	return doc.PasswordHash, nil
}

func (r *userRepository) ListUsers(ctx context.Context) ([]*models.User, error) {
	snaps, err := r.store.Query(ctx, CollectionUsers)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	users := make([]*models.User, 0, len(snaps))
	for _, snap := range snaps {
		var doc userDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, err
		}

		users = append(users, doc.toModel(snap.ID()))
	}

	return users, nil
}

func (d userDoc) toModel(id string) *models.User {
	return &models.User{
		ID:        id,
		Email:     d.Email,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		CreatedAt: d.CreatedAt,
	}
}
