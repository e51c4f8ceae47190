package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"konkanbliss/internal/models/db_models"
	"konkanbliss/internal/models/request_models"
	"konkanbliss/internal/repositories"
	"konkanbliss/internal/services"
	"konkanbliss/pkg/utils"
)

type accountRepoMock struct {
	findByEmailFn func(ctx context.Context, email string) (*db_models.Account, error)
	insertFn      func(ctx context.Context, account *db_models.Account) error
}

var _ repositories.AccountRepository = (*accountRepoMock)(nil)

func (m *accountRepoMock) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	return m.findByEmailFn(ctx, email)
}

func (m *accountRepoMock) Insert(ctx context.Context, account *db_models.Account) error {
	return m.insertFn(ctx, account)
}

func TestLoginSucceedsWithCorrectPassword(t *testing.T) {
	hash, err := utils.HashPassword("open-sesame")
	require.NoError(t, err)

	repo := &accountRepoMock{
		findByEmailFn: func(ctx context.Context, email string) (*db_models.Account, error) {
			return &db_models.Account{
				BaseModel:    db_models.BaseModel{ID: uuid.New()},
				Email:        email,
				PasswordHash: hash,
				Role:         "user",
			}, nil
		},
	}
	svc := services.NewAccountService(repo)

	token, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "traveler@example.com",
		Password: "open-sesame",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	hash, err := utils.HashPassword("open-sesame")
	require.NoError(t, err)

	repo := &accountRepoMock{
		findByEmailFn: func(ctx context.Context, email string) (*db_models.Account, error) {
			return &db_models.Account{PasswordHash: hash}, nil
		},
	}
	svc := services.NewAccountService(repo)

	_, err = svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "traveler@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLoginUnknownEmailLooksLikeBadCredentials(t *testing.T) {
	repo := &accountRepoMock{
		findByEmailFn: func(ctx context.Context, email string) (*db_models.Account, error) {
			return nil, nil
		},
	}
	svc := services.NewAccountService(repo)

	_, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "anything",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestCreateAccountHashesThePassword(t *testing.T) {
	var inserted *db_models.Account
	repo := &accountRepoMock{
		findByEmailFn: func(ctx context.Context, email string) (*db_models.Account, error) {
			return nil, nil
		},
		insertFn: func(ctx context.Context, account *db_models.Account) error {
			inserted = account
			return nil
		},
	}
	svc := services.NewAccountService(repo)

	err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Asha",
		Email:       "asha@example.com",
		Password:    "open-sesame",
	})
	require.NoError(t, err)
	require.NotNil(t, inserted)
	assert.Equal(t, "user", inserted.Role)
	assert.NotEqual(t, "open-sesame", inserted.PasswordHash)
	assert.NoError(t, utils.ComparePasswords(inserted.PasswordHash, "open-sesame"))
}

func TestCreateAccountRejectsDuplicateEmail(t *testing.T) {
	repo := &accountRepoMock{
		findByEmailFn: func(ctx context.Context, email string) (*db_models.Account, error) {
			return &db_models.Account{Email: email}, nil
		},
	}
	svc := services.NewAccountService(repo)

	err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Asha",
		Email:       "asha@example.com",
		Password:    "open-sesame",
	})
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestCreateAccountRepoFailure(t *testing.T) {
	repo := &accountRepoMock{
		findByEmailFn: func(ctx context.Context, email string) (*db_models.Account, error) {
			return nil, errors.New("connection refused")
		},
	}
	svc := services.NewAccountService(repo)

	err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Asha",
		Email:       "asha@example.com",
		Password:    "open-sesame",
	})
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}
