package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jimothydawson/phoebe-fund/internal/service"
)

func TestSubscribe_Success(t *testing.T) {
	svc := &mockSubscriberService{}
	h := NewSubscribeHandler(svc)

	rec := postJSON(t, h.Subscribe, `{"email":"jane@example.org","source":"footer"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"Successfully subscribed!"}`, rec.Body.String())
	assert.Equal(t, "jane@example.org", svc.email)
	assert.Equal(t, "footer", svc.source)
}

func TestSubscribe_ValidationErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantBody string
	}{
		{"required", service.ErrEmailRequired, "Email is required"},
		{"invalid", service.ErrInvalidEmail, "Invalid email format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewSubscribeHandler(&mockSubscriberService{err: tt.err})

			rec := postJSON(t, h.Subscribe, `{"email":"whatever"}`)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestSubscribe_StoreFailureIs500(t *testing.T) {
	h := NewSubscribeHandler(&mockSubscriberService{err: errors.New("airtable down")})

	rec := postJSON(t, h.Subscribe, `{"email":"jane@example.org"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to subscribe")
}
