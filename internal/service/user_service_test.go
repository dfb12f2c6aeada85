package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	errorvalues "github.com/MisterFoxxSA/liftingdiarycourse/internal/error_values"
	"github.com/MisterFoxxSA/liftingdiarycourse/internal/service"
	"github.com/MisterFoxxSA/liftingdiarycourse/pkg/entity"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

type userMockState int

const (
	userStateSuccess = iota
	userStateDBError
	userStateExistsError
	userStateNotFoundError
)

var (
	testUserID   = uuid.New()
	testUserName = "test_lifter"
	testPassword = "super_secret_1"
)

type userRepoMock struct {
	state userMockState
}

func (urmock *userRepoMock) Create(ctx context.Context, user *entity.User) error {
	switch urmock.state {
	case userStateExistsError:
		return errorvalues.ErrUserExists
	case userStateDBError:
		return errors.New("db error")
	default:
		return nil
	}
}

func (urmock *userRepoMock) FindByName(ctx context.Context, name string) (*entity.User, error) {
	switch urmock.state {
	case userStateNotFoundError:
		return nil, errorvalues.ErrUserNotFound
	case userStateDBError:
		return nil, errors.New("db error")
	default:
		hash, _ := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
		return &entity.User{
			ID:           testUserID,
			Name:         testUserName,
			PasswordHash: string(hash),
		}, nil
	}
}

func (urmock *userRepoMock) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	switch urmock.state {
	case userStateNotFoundError:
		return nil, errorvalues.ErrUserNotFound
	case userStateDBError:
		return nil, errors.New("db error")
	default:
		return &entity.User{
			ID:   testUserID,
			Name: testUserName,
		}, nil
	}
}

func (urmock *userRepoMock) Delete(ctx context.Context, uid uuid.UUID) error {
	switch urmock.state {
	case userStateNotFoundError:
		return errorvalues.ErrUserNotFound
	case userStateDBError:
		return errors.New("db error")
	default:
		return nil
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		serv := service.NewUserService(&userRepoMock{state: userStateSuccess})
		user, err := serv.Register(ctx, &service.RegisterRequest{
			Name:     testUserName,
			Password: testPassword,
		})
		assert.NoError(t, err)
		assert.Equal(t, testUserID, user.ID)
	})
	t.Run("existing name", func(t *testing.T) {
		serv := service.NewUserService(&userRepoMock{state: userStateExistsError})
		_, err := serv.Register(ctx, &service.RegisterRequest{
			Name:     testUserName,
			Password: testPassword,
		})
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})
	t.Run("invalid name", func(t *testing.T) {
		serv := service.NewUserService(&userRepoMock{state: userStateSuccess})
		_, err := serv.Register(ctx, &service.RegisterRequest{
			Name:     "1bad name!",
			Password: testPassword,
		})
		assert.Error(t, err)
	})
	t.Run("short password", func(t *testing.T) {
		serv := service.NewUserService(&userRepoMock{state: userStateSuccess})
		_, err := serv.Register(ctx, &service.RegisterRequest{
			Name:     testUserName,
			Password: "short",
		})
		assert.Error(t, err)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		serv := service.NewUserService(&userRepoMock{state: userStateSuccess})
		user, err := serv.Login(ctx, testUserName, testPassword)
		assert.NoError(t, err)
		assert.Equal(t, testUserID, user.ID)
	})
	t.Run("unknown user", func(t *testing.T) {
		serv := service.NewUserService(&userRepoMock{state: userStateNotFoundError})
		_, err := serv.Login(ctx, testUserName, testPassword)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("wrong password", func(t *testing.T) {
		serv := service.NewUserService(&userRepoMock{state: userStateSuccess})
		_, err := serv.Login(ctx, testUserName, "not_the_password")
		assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
	t.Run("db error", func(t *testing.T) {
		serv := service.NewUserService(&userRepoMock{state: userStateDBError})
		_, err := serv.Login(ctx, testUserName, testPassword)
		assert.Error(t, err)
	})
}

func TestGetUserByID(t *testing.T) {
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		serv := service.NewUserService(&userRepoMock{state: userStateSuccess})
		user, err := serv.GetByID(ctx, testUserID)
		assert.NoError(t, err)
		assert.Equal(t, testUserName, user.Name)
	})
	t.Run("not found", func(t *testing.T) {
		serv := service.NewUserService(&userRepoMock{state: userStateNotFoundError})
		_, err := serv.GetByID(ctx, testUserID)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}
