package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk/internal/shared/config"
	"frontdesk/internal/users"
)

type fakeUserRepo struct {
	byID    map[string]*users.User
	byEmail map[string]*users.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[string]*users.User),
		byEmail: make(map[string]*users.User),
	}
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, user *users.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.byID[user.ID.String()] = user
	r.byEmail[user.Email] = user
	return nil
}

func (r *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*users.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetUserByID(ctx context.Context, id string) (*users.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) UpdateUserPassword(ctx context.Context, id, hashedPassword string) error {
	user, ok := r.byID[id]
	if !ok {
		return ErrUserNotFound
	}
	user.Password = hashedPassword
	return nil
}

func (r *fakeUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	_, ok := r.byEmail[email]
	return ok, nil
}

func testAuthConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:           "test-secret-do-not-use",
			JWTExpiresIn:     15 * time.Minute,
			RefreshExpiresIn: 24 * time.Hour,
		},
	}
}

func registerRequest() *RegisterRequest {
	return &RegisterRequest{
		FirstName: "Dana",
		LastName:  "Reeves",
		Email:     "dana@frontdesk.local",
		Password:  "hunter22",
	}
}

func TestRegisterLoginRoundTrip(t *testing.T) {
	svc := NewService(newFakeUserRepo(), testAuthConfig())
	ctx := context.Background()

	registered, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)
	assert.Equal(t, string(users.RoleStaff), registered.User.Role)
	assert.NotEmpty(t, registered.AccessToken)
	assert.Equal(t, int64((15 * time.Minute).Seconds()), registered.ExpiresIn)

	loggedIn, err := svc.Login(ctx, &LoginRequest{
		Email:    "dana@frontdesk.local",
		Password: "hunter22",
	})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(loggedIn.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, claims.UserID)
	assert.Equal(t, "dana@frontdesk.local", claims.Email)
	assert.Equal(t, "access", claims.Type)
	assert.Equal(t, "frontdesk", claims.Issuer)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewService(newFakeUserRepo(), testAuthConfig())
	ctx := context.Background()

	_, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	_, err = svc.Register(ctx, registerRequest())
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestRegisterNormalizesRole(t *testing.T) {
	svc := NewService(newFakeUserRepo(), testAuthConfig())

	req := registerRequest()
	req.Role = "admin"

	resp, err := svc.Register(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, string(users.RoleAdmin), resp.User.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := NewService(newFakeUserRepo(), testAuthConfig())
	ctx := context.Background()

	_, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	_, err = svc.Login(ctx, &LoginRequest{
		Email:    "dana@frontdesk.local",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewService(newFakeUserRepo(), testAuthConfig())

	_, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "nobody@frontdesk.local",
		Password: "hunter22",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshTokenIssuesNewPair(t *testing.T) {
	svc := NewService(newFakeUserRepo(), testAuthConfig())
	ctx := context.Background()

	registered, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	pair, err := svc.RefreshToken(ctx, registered.RefreshToken)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, claims.UserID)
	assert.Equal(t, "access", claims.Type)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc := NewService(newFakeUserRepo(), testAuthConfig())
	ctx := context.Background()

	registered, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	_, err = svc.RefreshToken(ctx, registered.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := NewService(newFakeUserRepo(), testAuthConfig())

	_, err := svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestChangePassword(t *testing.T) {
	svc := NewService(newFakeUserRepo(), testAuthConfig())
	ctx := context.Background()

	registered, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, registered.User.ID, &ChangePasswordRequest{
		CurrentPassword: "hunter22",
		NewPassword:     "hunter23",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &LoginRequest{Email: "dana@frontdesk.local", Password: "hunter22"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, &LoginRequest{Email: "dana@frontdesk.local", Password: "hunter23"})
	assert.NoError(t, err)
}
