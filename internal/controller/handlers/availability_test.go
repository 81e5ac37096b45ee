package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tutorhive/tutor_marketplace/internal/model"
	"github.com/tutorhive/tutor_marketplace/internal/service"
	"go.uber.org/zap"
)

type fakeRangeLister struct {
	from, to time.Time
}

func (f *fakeRangeLister) ListInRange(ctx context.Context, from, to time.Time) ([]*model.SlotWithTutor, error) {
	f.from, f.to = from, to
	return nil, nil
}

type fakeRefLister struct{}

func (f *fakeRefLister) ListRefs(ctx context.Context) ([]model.PersonRef, error) {
	return nil, nil
}

func newAvailabilityRouter(slots *fakeRangeLister) *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := service.NewAvailabilityService(slots, &fakeRefLister{}, zap.NewNop())
	h := NewAvailabilityHandler(svc)

	r := gin.New()
	r.GET("/v1/availability", h.Overview)
	return r
}

func TestAvailability_SingleDate(t *testing.T) {
	slots := &fakeRangeLister{}
	r := newAvailabilityRouter(slots)

	w := doRequest(t, r, http.MethodGet, "/v1/availability?date=2023-12-01", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	// Один день разворачивается в диапазон [date, date+1)
	wantFrom := time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)
	if !slots.from.Equal(wantFrom) || !slots.to.Equal(wantFrom.AddDate(0, 0, 1)) {
		t.Errorf("unexpected range: %v .. %v", slots.from, slots.to)
	}

	body := decodeBody(t, w)
	query, ok := body["query"].(map[string]any)
	if !ok {
		t.Fatalf("expected query echo, got %v", body)
	}
	if query["start_date"] != "2023-12-01" || query["end_date"] != "2023-12-01" {
		t.Errorf("unexpected query echo: %v", query)
	}
}

func TestAvailability_DateRange(t *testing.T) {
	slots := &fakeRangeLister{}
	r := newAvailabilityRouter(slots)

	w := doRequest(t, r, http.MethodGet, "/v1/availability?start_date=2023-12-01&end_date=2023-12-03", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	// Конечная дата включается в диапазон
	wantTo := time.Date(2023, 12, 4, 0, 0, 0, 0, time.UTC)
	if !slots.to.Equal(wantTo) {
		t.Errorf("expected inclusive end %v, got %v", wantTo, slots.to)
	}
}

func TestAvailability_MissingParams(t *testing.T) {
	r := newAvailabilityRouter(&fakeRangeLister{})

	w := doRequest(t, r, http.MethodGet, "/v1/availability", "")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["error"] != `Either "date" or both "start_date" and "end_date" parameters are required` {
		t.Errorf("unexpected error message: %v", body["error"])
	}
}

func TestAvailability_BadDateFormat(t *testing.T) {
	r := newAvailabilityRouter(&fakeRangeLister{})

	w := doRequest(t, r, http.MethodGet, "/v1/availability?date=01-12-2023", "")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["error"] != "Invalid date format. Use YYYY-MM-DD" {
		t.Errorf("unexpected error message: %v", body["error"])
	}
}
