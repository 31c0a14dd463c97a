package impl

import (
	"context"
	"testing"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service  usecase.AuthUsecase
	userRepo *MockUserRepository
	hasher   *MockPasswordHasher
	tokens   *MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	t.Helper()

	userRepo := new(MockUserRepository)
	hasher := new(MockPasswordHasher)
	tokens := new(MockTokenService)

	service := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokens,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:  service,
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

func TestAuthService_SignUp_Success(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	userID := uuid.New()
	fixtures.hasher.On("Hash", "pw1").Return("$2a$10$hash", nil)
	fixtures.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			assert.Equal(t, "alice", user.Username)
			assert.Equal(t, "$2a$10$hash", user.PasswordHash)
			user.ID = userID
		}).
		Return(nil)
	fixtures.tokens.On("Generate", userID, "alice").Return("signed.token.value", nil)

	output, err := fixtures.service.SignUp(ctx, &usecase.SignUpInput{Username: "alice", Password: "pw1"})

	require.NoError(t, err)
	assert.Equal(t, "signed.token.value", output.Token)
	fixtures.userRepo.AssertExpectations(t)
	fixtures.tokens.AssertExpectations(t)
}

func TestAuthService_SignUp_DuplicateUsername(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	fixtures.hasher.On("Hash", "pw1").Return("$2a$10$hash", nil)
	fixtures.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrUsernameTaken.WrapMessage("username already exists"))

	output, err := fixtures.service.SignUp(ctx, &usecase.SignUpInput{Username: "alice", Password: "pw1"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))
}

func TestAuthService_SignUp_HashFailure(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	fixtures.hasher.On("Hash", "pw1").Return("", errors.New("bcrypt exploded"))

	output, err := fixtures.service.SignUp(ctx, &usecase.SignUpInput{Username: "alice", Password: "pw1"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
	fixtures.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Login_Success(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	userID := uuid.New()
	storedUser := &entity.User{ID: userID, Username: "alice", PasswordHash: "$2a$10$hash"}

	fixtures.userRepo.On("FindByUsername", ctx, "alice").Return(storedUser, nil)
	fixtures.hasher.On("Check", "pw1", "$2a$10$hash").Return(true)
	fixtures.tokens.On("Generate", userID, "alice").Return("signed.token.value", nil)

	output, err := fixtures.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "pw1"})

	require.NoError(t, err)
	assert.Equal(t, "signed.token.value", output.Token)
}

func TestAuthService_Login_UnknownUserAndWrongPasswordAreIndistinguishable(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	storedUser := &entity.User{ID: uuid.New(), Username: "alice", PasswordHash: "$2a$10$hash"}

	fixtures.userRepo.On("FindByUsername", ctx, "bob").Return(nil, repository.ErrUserNotFound)
	fixtures.userRepo.On("FindByUsername", ctx, "alice").Return(storedUser, nil)
	fixtures.hasher.On("Check", "wrong", "$2a$10$hash").Return(false)

	_, unknownErr := fixtures.service.Login(ctx, &usecase.LoginInput{Username: "bob", Password: "anything"})
	_, wrongPwErr := fixtures.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "wrong"})

	require.Error(t, unknownErr)
	require.Error(t, wrongPwErr)
	assert.True(t, errors.Is(unknownErr, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(wrongPwErr, domainerrors.ErrInvalidCredentials))

	// Both failure paths surface the same user-facing error.
	assert.Equal(t, errors.Cause(unknownErr), errors.Cause(wrongPwErr))
	fixtures.tokens.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}
