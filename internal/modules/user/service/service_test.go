package user

import (
	"context"
	"testing"

	"anoa.com/wisatapedia/internal/entity"
	"anoa.com/wisatapedia/internal/modules/user/dto"
	"anoa.com/wisatapedia/internal/modules/user/repository"
	"anoa.com/wisatapedia/pkg/apperror"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setup(t *testing.T) AuthService {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&entity.Role{}, &entity.User{}, &entity.Profile{}))
	require.NoError(t, db.Create(&entity.Role{Name: entity.RoleMember, Description: "Community member"}).Error)

	return NewAuthService(repository.NewUserRepository(db))
}

func register(t *testing.T, svc AuthService, username, email string) *dto.AuthResponse {
	t.Helper()
	resp, err := svc.Register(context.Background(), dto.RegisterInput{
		Username: username,
		Email:    email,
		Password: "s3cret-pass",
		FullName: "Test User",
	})
	require.NoError(t, err)
	return resp
}

func TestRegister(t *testing.T) {
	svc := setup(t)

	resp := register(t, svc, "Wanderer", "Wanderer@Example.com")
	require.NotNil(t, resp.User)
	assert.Equal(t, "wanderer", resp.User.Username, "username is normalized to lowercase")
	assert.Equal(t, "wanderer@example.com", resp.User.Email)
	assert.Empty(t, resp.User.PasswordHash)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.NotEmpty(t, resp.AccessToken)
	require.NotNil(t, resp.User.Profile)
	assert.Equal(t, "Test User", resp.User.Profile.FullName)
}

func TestRegister_DuplicateEmailOrUsername(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	register(t, svc, "wanderer", "wanderer@example.com")

	_, err := svc.Register(ctx, dto.RegisterInput{
		Username: "someoneelse",
		Email:    "WANDERER@example.com",
		Password: "s3cret-pass",
	})
	assert.ErrorIs(t, err, apperror.ErrDuplicate)

	_, err = svc.Register(ctx, dto.RegisterInput{
		Username: "Wanderer",
		Email:    "other@example.com",
		Password: "s3cret-pass",
	})
	assert.ErrorIs(t, err, apperror.ErrDuplicate)
}

func TestLogin(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	register(t, svc, "wanderer", "wanderer@example.com")

	resp, err := svc.Login(ctx, dto.LoginInput{Email: "wanderer@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	_, err = svc.Login(ctx, dto.LoginInput{Email: "wanderer@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, apperror.ErrForbidden)

	_, err = svc.Login(ctx, dto.LoginInput{Email: "nobody@example.com", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, apperror.ErrForbidden)
}

func TestToken_CarriesUserID(t *testing.T) {
	svc := setup(t)

	resp := register(t, svc, "wanderer", "wanderer@example.com")

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(resp.AccessToken, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	assert.Equal(t, resp.User.ID.String(), claims.Subject)
	require.NotNil(t, claims.ExpiresAt)
	assert.Greater(t, resp.ExpiresIn, int64(0))
}

func TestGetPublicProfile_HidesContactDetails(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	register(t, svc, "wanderer", "wanderer@example.com")

	public, err := svc.GetPublicProfile(ctx, "Wanderer")
	require.NoError(t, err)
	assert.Equal(t, "wanderer", public.Username)
	assert.Empty(t, public.Email)
	assert.Empty(t, public.PasswordHash)

	_, err = svc.GetPublicProfile(ctx, "ghost")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestUpdateProfile(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	resp := register(t, svc, "wanderer", "wanderer@example.com")

	bio := "always on the road"
	home := "Indonesia"
	updated, err := svc.UpdateProfile(ctx, resp.User.ID, dto.UpdateProfileInput{
		FullName:    "New Name",
		Bio:         &bio,
		HomeCountry: &home,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Profile)
	assert.Equal(t, "New Name", updated.Profile.FullName)
	require.NotNil(t, updated.Profile.Bio)
	assert.Equal(t, bio, *updated.Profile.Bio)
}
