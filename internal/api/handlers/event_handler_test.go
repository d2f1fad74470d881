package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/isdelr/social-media-be/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestGetRecentEventsLimit(t *testing.T) {
	svc := &fakeEventService{
		recent: func(int) ([]models.Event, error) { return nil, nil },
	}
	h := NewEventHandler(svc)

	tests := map[string]int{
		"/events":            defaultEventLimit,
		"/events?limit=5":    5,
		"/events?limit=-1":   defaultEventLimit,
		"/events?limit=abc":  defaultEventLimit,
		"/events?limit=9999": maxEventLimit,
	}
	for target, want := range tests {
		rec := httptest.NewRecorder()
		h.GetRecent(rec, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusOK, rec.Code, target)
		assert.JSONEq(t, `[]`, rec.Body.String(), target)
		assert.Equal(t, want, svc.lastLimit, target)
	}
}
