package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"catalog/internal/delivery/http/validator"
	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAuthUsecase struct {
	mock.Mock
}

func (m *mockAuthUsecase) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.AuthOutput), args.Error(1)
}

func (m *mockAuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.AuthOutput), args.Error(1)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func postJSON(e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthHandler_SignUp(t *testing.T) {
	e := newTestEcho()
	uc := new(mockAuthUsecase)
	h := NewAuthHandler(uc, newDiscardLogger())

	uc.On("SignUp", mock.Anything, &usecase.SignUpInput{Username: "alice", Password: "secret1"}).
		Return(&usecase.AuthOutput{Token: "signed.jwt"}, nil)

	c, rec := postJSON(e, "/signup", `{"username":"alice","password":"secret1"}`)
	require.NoError(t, h.SignUp(c))

	assert.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "signed.jwt", body["data"].(map[string]any)["token"])
}

func TestAuthHandler_SignUp_ValidationFailure(t *testing.T) {
	e := newTestEcho()
	uc := new(mockAuthUsecase)
	h := NewAuthHandler(uc, newDiscardLogger())

	// Password below the minimum length never reaches the usecase.
	c, _ := postJSON(e, "/signup", `{"username":"alice","password":"pw"}`)
	err := h.SignUp(c)

	require.Error(t, err)
	uc.AssertNotCalled(t, "SignUp", mock.Anything, mock.Anything)
}

func TestAuthHandler_SignUp_MalformedBody(t *testing.T) {
	e := newTestEcho()
	uc := new(mockAuthUsecase)
	h := NewAuthHandler(uc, newDiscardLogger())

	c, rec := postJSON(e, "/signup", `{"username":`)
	require.NoError(t, h.SignUp(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "SignUp", mock.Anything, mock.Anything)
}

func TestAuthHandler_Login(t *testing.T) {
	e := newTestEcho()
	uc := new(mockAuthUsecase)
	h := NewAuthHandler(uc, newDiscardLogger())

	uc.On("Login", mock.Anything, &usecase.LoginInput{Username: "alice", Password: "secret1"}).
		Return(&usecase.AuthOutput{Token: "signed.jwt"}, nil)

	c, rec := postJSON(e, "/login", `{"username":"alice","password":"secret1"}`)
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "signed.jwt", body["data"].(map[string]any)["token"])
}
