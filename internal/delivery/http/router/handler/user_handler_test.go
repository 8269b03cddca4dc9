package handler

import (
	"net/http"
	"testing"

	"quill/internal/domain/entity"
	mockusecase "quill/internal/mocks/usecase"
	"quill/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserHandler_Register_Success(t *testing.T) {
	e := newTestEcho()
	userUC := mockusecase.NewMockUserUsecase(t)
	h := NewUserHandler(UserHandlerParams{UserUC: userUC, Logger: newDiscardLogger()})

	userID := uuid.New()
	userUC.EXPECT().
		Register(mock.Anything, mock.MatchedBy(func(input *usecase.RegisterInput) bool {
			return input.Email == "writer@example.com" && input.Password == "password123"
		})).
		Return(&usecase.RegisterOutput{User: &entity.User{ID: userID, Email: "writer@example.com"}}, nil)

	c, rec := newJSONContext(e, http.MethodPost, "/auth/register",
		`{"email":"writer@example.com","password":"password123"}`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "writer@example.com")
	assert.Contains(t, rec.Body.String(), userID.String())
	// The stored password hash never leaves the server.
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestUserHandler_Register_InvalidEmail(t *testing.T) {
	e := newTestEcho()
	userUC := mockusecase.NewMockUserUsecase(t)
	h := NewUserHandler(UserHandlerParams{UserUC: userUC, Logger: newDiscardLogger()})

	c, rec := newJSONContext(e, http.MethodPost, "/auth/register",
		`{"email":"not-an-email","password":"password123"}`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
	userUC.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestUserHandler_Login_JSONBody(t *testing.T) {
	e := newTestEcho()
	userUC := mockusecase.NewMockUserUsecase(t)
	h := NewUserHandler(UserHandlerParams{UserUC: userUC, Logger: newDiscardLogger()})

	userUC.EXPECT().
		Login(mock.Anything, mock.MatchedBy(func(input *usecase.LoginInput) bool {
			return input.Email == "writer@example.com" && input.Password == "password123"
		})).
		Return(&usecase.LoginOutput{AccessToken: "signed-token", TokenType: "bearer"}, nil)

	c, rec := newJSONContext(e, http.MethodPost, "/auth/login",
		`{"email":"writer@example.com","password":"password123"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed-token")
	assert.Contains(t, rec.Body.String(), "bearer")
}

// OAuth2 password-form clients submit username/password fields. The login
// input binds the username field onto the email.
func TestUserHandler_Login_PasswordFormBody(t *testing.T) {
	e := newTestEcho()
	userUC := mockusecase.NewMockUserUsecase(t)
	h := NewUserHandler(UserHandlerParams{UserUC: userUC, Logger: newDiscardLogger()})

	userUC.EXPECT().
		Login(mock.Anything, mock.MatchedBy(func(input *usecase.LoginInput) bool {
			return input.Email == "writer@example.com" && input.Password == "password123"
		})).
		Return(&usecase.LoginOutput{AccessToken: "signed-token", TokenType: "bearer"}, nil)

	c, rec := newFormContext(e, http.MethodPost, "/auth/login",
		"username=writer%40example.com&password=password123")

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed-token")
}
