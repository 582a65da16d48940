package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"warbler/internal/middleware"
	"warbler/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHome(t *testing.T) {
	t.Run("Anonymous gets landing payload", func(t *testing.T) {
		_, app := newTestServer(new(MockUserRepository), new(MockMessageRepository), new(MockFollowRepository))

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/", nil))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, true, body["landing"])
		assert.NotContains(t, body, "messages")
	})

	t.Run("Authenticated gets feed", func(t *testing.T) {
		mockMessageRepo := new(MockMessageRepository)
		mockMessageRepo.On("Feed", mock.Anything, uint(1), 100).
			Return([]*models.Message{
				{ID: 2, Text: "newest", UserID: 5},
				{ID: 1, Text: "older", UserID: 1},
			}, nil)

		s, app := newTestServer(new(MockUserRepository), mockMessageRepo, new(MockFollowRepository))

		req := httptest.NewRequest(http.MethodGet, "/api/", nil)
		loginAs(s, req, 1)

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Landing  bool              `json:"landing"`
			Messages []*models.Message `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.False(t, body.Landing)
		require.Len(t, body.Messages, 2)
		assert.Equal(t, "newest", body.Messages[0].Text)
		mockMessageRepo.AssertExpectations(t)
	})
}

func TestCreateMessage(t *testing.T) {
	t.Run("Anonymous is rejected", func(t *testing.T) {
		_, app := newTestServer(new(MockUserRepository), new(MockMessageRepository), new(MockFollowRepository))

		resp, err := app.Test(postJSON(t, "/api/messages/new", map[string]string{"text": "hello"}))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, middleware.AccessUnauthorized, body["error"])
	})

	t.Run("Success", func(t *testing.T) {
		mockMessageRepo := new(MockMessageRepository)
		mockMessageRepo.On("Create", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				args.Get(1).(*models.Message).ID = 42
			}).Return(nil)
		mockMessageRepo.On("GetByID", mock.Anything, uint(42), uint(1)).
			Return(&models.Message{ID: 42, Text: "hello", UserID: 1}, nil)

		s, app := newTestServer(new(MockUserRepository), mockMessageRepo, new(MockFollowRepository))

		req := postJSON(t, "/api/messages/new", map[string]string{"text": "hello"})
		loginAs(s, req, 1)

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var message models.Message
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&message))
		assert.Equal(t, uint(42), message.ID)
		assert.Equal(t, uint(1), message.UserID, "ownership comes from the session, not the body")
		mockMessageRepo.AssertExpectations(t)
	})

	t.Run("Over Length Limit", func(t *testing.T) {
		s, app := newTestServer(new(MockUserRepository), new(MockMessageRepository), new(MockFollowRepository))

		req := postJSON(t, "/api/messages/new", map[string]string{
			"text": strings.Repeat("a", models.MaxMessageLength+1),
		})
		loginAs(s, req, 1)

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestGetMessage(t *testing.T) {
	mockMessageRepo := new(MockMessageRepository)
	mockMessageRepo.On("GetByID", mock.Anything, uint(42), uint(1)).
		Return(&models.Message{ID: 42, Text: "a warble", UserID: 7, LikesCount: 3}, nil)
	mockMessageRepo.On("GetByID", mock.Anything, uint(99), uint(1)).
		Return(nil, models.NewNotFoundError("Message", uint(99)))

	s, app := newTestServer(new(MockUserRepository), mockMessageRepo, new(MockFollowRepository))

	t.Run("Success", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/messages/42", nil)
		loginAs(s, req, 1)

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var message models.Message
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&message))
		assert.Equal(t, 3, message.LikesCount)
	})

	t.Run("Not Found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/messages/99", nil)
		loginAs(s, req, 1)

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Invalid ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/messages/abc", nil)
		loginAs(s, req, 1)

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestDeleteMessage(t *testing.T) {
	t.Run("Owner deletes", func(t *testing.T) {
		mockMessageRepo := new(MockMessageRepository)
		mockMessageRepo.On("GetByID", mock.Anything, uint(42), uint(0)).
			Return(&models.Message{ID: 42, UserID: 1}, nil)
		mockMessageRepo.On("Delete", mock.Anything, uint(42)).Return(nil)

		s, app := newTestServer(new(MockUserRepository), mockMessageRepo, new(MockFollowRepository))

		req := postJSON(t, "/api/messages/42/delete", map[string]string{})
		loginAs(s, req, 1)

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockMessageRepo.AssertExpectations(t)
	})

	t.Run("Non-owner is forbidden", func(t *testing.T) {
		mockMessageRepo := new(MockMessageRepository)
		mockMessageRepo.On("GetByID", mock.Anything, uint(42), uint(0)).
			Return(&models.Message{ID: 42, UserID: 7}, nil)

		s, app := newTestServer(new(MockUserRepository), mockMessageRepo, new(MockFollowRepository))

		req := postJSON(t, "/api/messages/42/delete", map[string]string{})
		loginAs(s, req, 1)

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		mockMessageRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Anonymous is rejected", func(t *testing.T) {
		_, app := newTestServer(new(MockUserRepository), new(MockMessageRepository), new(MockFollowRepository))

		resp, err := app.Test(postJSON(t, "/api/messages/42/delete", map[string]string{}))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
