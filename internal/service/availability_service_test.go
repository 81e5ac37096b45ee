package service

import (
	"context"
	"testing"
	"time"

	"github.com/tutorhive/tutor_marketplace/internal/model"
	"go.uber.org/zap"
)

type fakeSlotRangeLister struct {
	slots []*model.SlotWithTutor
}

func (f *fakeSlotRangeLister) ListInRange(ctx context.Context, from, to time.Time) ([]*model.SlotWithTutor, error) {
	return f.slots, nil
}

type fakeTutorLister struct {
	refs []model.PersonRef
}

func (f *fakeTutorLister) ListRefs(ctx context.Context) ([]model.PersonRef, error) {
	return f.refs, nil
}

func ts(hour int) time.Time {
	return time.Date(2023, 12, 1, hour, 0, 0, 0, time.UTC)
}

func TestOverview_GroupsByTutorAndDate(t *testing.T) {
	slots := &fakeSlotRangeLister{slots: []*model.SlotWithTutor{
		{ID: 1, TutorID: 1, TutorName: "Alice", StartTime: ts(10), EndTime: ts(11), IsBooked: false},
		{ID: 2, TutorID: 1, TutorName: "Alice", StartTime: ts(11), EndTime: ts(12), IsBooked: true},
		{ID: 3, TutorID: 2, TutorName: "Bob", StartTime: ts(9), EndTime: ts(10), IsBooked: false},
	}}
	tutors := &fakeTutorLister{refs: []model.PersonRef{
		{ID: 1, Name: "Alice"},
		{ID: 2, Name: "Bob"},
	}}

	svc := NewAvailabilityService(slots, tutors, zap.NewNop())

	result, err := svc.Overview(context.Background(), ts(0), ts(0).AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result) != 2 {
		t.Fatalf("expected 2 tutors, got %d", len(result))
	}

	alice := result[0]
	if alice.TutorName != "Alice" {
		t.Fatalf("expected Alice first, got %s", alice.TutorName)
	}

	day, ok := alice.Dates["2023-12-01"]
	if !ok {
		t.Fatal("expected date entry for 2023-12-01")
	}
	// Забронированный слот входит в total, но не в открытые
	if day.TotalSlots != 2 {
		t.Errorf("expected 2 total slots, got %d", day.TotalSlots)
	}
	if day.AvailableSlots != 1 {
		t.Errorf("expected 1 available slot, got %d", day.AvailableSlots)
	}
	if !day.HasAvailability {
		t.Error("expected has_availability true")
	}
	if len(day.Slots) != 1 || day.Slots[0].ID != 1 {
		t.Errorf("unexpected open slots: %+v", day.Slots)
	}
}

func TestOverview_IncludesTutorsWithoutSlots(t *testing.T) {
	slots := &fakeSlotRangeLister{}
	tutors := &fakeTutorLister{refs: []model.PersonRef{
		{ID: 5, Name: "Carol"},
	}}

	svc := NewAvailabilityService(slots, tutors, zap.NewNop())

	result, err := svc.Overview(context.Background(), ts(0), ts(0).AddDate(0, 0, 7))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result) != 1 {
		t.Fatalf("expected 1 tutor, got %d", len(result))
	}
	if result[0].TutorID != 5 {
		t.Errorf("expected tutor 5, got %d", result[0].TutorID)
	}
	if len(result[0].Dates) != 0 {
		t.Errorf("expected no dates, got %d", len(result[0].Dates))
	}
}

func TestOverview_FullyBookedDay(t *testing.T) {
	slots := &fakeSlotRangeLister{slots: []*model.SlotWithTutor{
		{ID: 1, TutorID: 1, TutorName: "Alice", StartTime: ts(10), EndTime: ts(11), IsBooked: true},
	}}
	tutors := &fakeTutorLister{refs: []model.PersonRef{{ID: 1, Name: "Alice"}}}

	svc := NewAvailabilityService(slots, tutors, zap.NewNop())

	result, err := svc.Overview(context.Background(), ts(0), ts(0).AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	day := result[0].Dates["2023-12-01"]
	if day == nil {
		t.Fatal("expected date entry")
	}
	if day.HasAvailability {
		t.Error("expected has_availability false for fully booked day")
	}
	if len(day.Slots) != 0 {
		t.Errorf("expected no open slots, got %d", len(day.Slots))
	}
}
