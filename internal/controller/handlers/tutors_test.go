package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tutorhive/tutor_marketplace/internal/model"
	"github.com/tutorhive/tutor_marketplace/internal/repository"
	"github.com/tutorhive/tutor_marketplace/internal/service"
	"go.uber.org/zap"
)

type fakeTutorStore struct {
	tutors    map[int64]*model.Tutor
	createErr error
	nextID    int64
}

func newFakeTutorStore() *fakeTutorStore {
	return &fakeTutorStore{tutors: map[int64]*model.Tutor{}}
}

func (f *fakeTutorStore) Create(ctx context.Context, tutor *model.Tutor) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	tutor.ID = f.nextID
	tutor.CreatedAt = time.Now()
	f.tutors[tutor.ID] = tutor
	return nil
}

func (f *fakeTutorStore) List(ctx context.Context) ([]*model.Tutor, error) {
	var tutors []*model.Tutor
	for _, tutor := range f.tutors {
		tutors = append(tutors, tutor)
	}
	return tutors, nil
}

func (f *fakeTutorStore) Exists(ctx context.Context, id int64) (bool, error) {
	_, ok := f.tutors[id]
	return ok, nil
}

type fakeSlotStore struct {
	slots     []*model.AvailabilitySlot
	createErr error
	nextID    int64
}

func (f *fakeSlotStore) Create(ctx context.Context, slot *model.AvailabilitySlot) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	slot.ID = f.nextID
	slot.CreatedAt = time.Now()
	f.slots = append(f.slots, slot)
	return nil
}

func (f *fakeSlotStore) ListUpcomingByTutor(ctx context.Context, tutorID int64) ([]*model.AvailabilitySlot, error) {
	var slots []*model.AvailabilitySlot
	for _, slot := range f.slots {
		if slot.TutorID == tutorID {
			slots = append(slots, slot)
		}
	}
	return slots, nil
}

func newTutorRouter(tutors *fakeTutorStore, slots *fakeSlotStore) *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := service.NewTutorService(tutors, slots, zap.NewNop())
	h := NewTutorHandler(svc)

	r := gin.New()
	r.GET("/v1/tutors", h.List)
	r.POST("/v1/tutors", h.Create)
	r.POST("/v1/tutors/:tutor_id/availability", h.AddSlot)
	r.GET("/v1/tutors/:tutor_id/availability", h.ListSlots)
	return r
}

func TestCreateTutor_Created(t *testing.T) {
	tutors := newFakeTutorStore()
	r := newTutorRouter(tutors, &fakeSlotStore{})

	w := doRequest(t, r, http.MethodPost, "/v1/tutors",
		`{"name": "Alice Smith", "email": "alice@example.com", "subjects": ["Math"]}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	if body["name"] != "Alice Smith" {
		t.Errorf("unexpected name: %v", body["name"])
	}
	// Профиль получает значения по умолчанию
	if body["hourly_rate"].(float64) != 45.00 {
		t.Errorf("expected default hourly_rate, got %v", body["hourly_rate"])
	}
}

func TestCreateTutor_MissingFields(t *testing.T) {
	r := newTutorRouter(newFakeTutorStore(), &fakeSlotStore{})

	w := doRequest(t, r, http.MethodPost, "/v1/tutors", `{"name": "Alice Smith"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["error"] != "Name and email are required" {
		t.Errorf("unexpected error message: %v", body["error"])
	}
}

func TestCreateTutor_DuplicateEmail(t *testing.T) {
	tutors := newFakeTutorStore()
	tutors.createErr = repository.ErrDuplicateEmail
	r := newTutorRouter(tutors, &fakeSlotStore{})

	w := doRequest(t, r, http.MethodPost, "/v1/tutors",
		`{"name": "Alice Smith", "email": "alice@example.com"}`)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["error"] != "Email already exists" {
		t.Errorf("unexpected error message: %v", body["error"])
	}
}

func TestAddSlot_UnknownTutor(t *testing.T) {
	r := newTutorRouter(newFakeTutorStore(), &fakeSlotStore{})

	w := doRequest(t, r, http.MethodPost, "/v1/tutors/42/availability",
		`{"start_time": "2023-12-01T10:00:00Z", "end_time": "2023-12-01T11:00:00Z"}`)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["error"] != "Tutor not found" {
		t.Errorf("unexpected error message: %v", body["error"])
	}
}

func TestAddSlot_InvalidTimeRange(t *testing.T) {
	tutors := newFakeTutorStore()
	tutors.tutors[1] = &model.Tutor{ID: 1, Name: "Alice"}
	slots := &fakeSlotStore{createErr: repository.ErrInvalidTimeRange}
	r := newTutorRouter(tutors, slots)

	w := doRequest(t, r, http.MethodPost, "/v1/tutors/1/availability",
		`{"start_time": "2023-12-01T11:00:00Z", "end_time": "2023-12-01T10:00:00Z"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["error"] != "End time must be after start time" {
		t.Errorf("unexpected error message: %v", body["error"])
	}
}

func TestAddSlot_Overlap(t *testing.T) {
	tutors := newFakeTutorStore()
	tutors.tutors[1] = &model.Tutor{ID: 1, Name: "Alice"}
	slots := &fakeSlotStore{createErr: repository.ErrSlotOverlap}
	r := newTutorRouter(tutors, slots)

	w := doRequest(t, r, http.MethodPost, "/v1/tutors/1/availability",
		`{"start_time": "2023-12-01T10:00:00Z", "end_time": "2023-12-01T11:00:00Z"}`)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["error"] != "Time slot overlaps with existing availability" {
		t.Errorf("unexpected error message: %v", body["error"])
	}
}

func TestListSlots_UnknownTutor(t *testing.T) {
	r := newTutorRouter(newFakeTutorStore(), &fakeSlotStore{})

	w := doRequest(t, r, http.MethodGet, "/v1/tutors/42/availability", "")

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestListSlots_EmptyIsValid(t *testing.T) {
	tutors := newFakeTutorStore()
	tutors.tutors[1] = &model.Tutor{ID: 1, Name: "Alice"}
	r := newTutorRouter(tutors, &fakeSlotStore{})

	w := doRequest(t, r, http.MethodGet, "/v1/tutors/1/availability", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	slots, ok := body["slots"].([]any)
	if !ok {
		t.Fatalf("expected slots array, got %v", body)
	}
	if len(slots) != 0 {
		t.Errorf("expected empty list, got %d entries", len(slots))
	}
}
