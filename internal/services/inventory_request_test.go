package services_test

import (
	"errors"
	"testing"

	"lifelink/internal/domain"
	"lifelink/internal/repos"
	"lifelink/internal/services"
)

func TestInventoryUpdate_RecomputesStatus(t *testing.T) {
	store := seededStore(t)
	hospital := mustUser(t, store, "stmarys@lifelink.test")
	svc := services.NewInventoryService(store)

	item, err := svc.Update(hospital, "O-", 1)
	if err != nil {
		t.Fatal(err)
	}
	if item.Percent != 5 || item.Status != domain.StockCritical {
		t.Fatalf("want 5%% Critical, got %+v", item)
	}

	item, err = svc.Update(hospital, "O-", 10)
	if err != nil {
		t.Fatal(err)
	}
	if item.Percent != 50 || item.Status != domain.StockStable {
		t.Fatalf("want 50%% Stable, got %+v", item)
	}

	latest, _ := store.Activity.Latest(1)
	if len(latest) != 1 || latest[0].Action != "Updated O- inventory to 10 units" || latest[0].Type != domain.ActivitySystem {
		t.Fatalf("unexpected activity: %+v", latest)
	}
}

func TestInventoryUpdate_UnknownTypeAndBadInput(t *testing.T) {
	store := seededStore(t)
	hospital := mustUser(t, store, "stmarys@lifelink.test")
	svc := services.NewInventoryService(store)
	before := activityCount(t, store)

	if _, err := svc.Update(hospital, "O+", 3); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("O+ has no row, want ErrNotFound, got %v", err)
	}
	if _, err := svc.Update(hospital, "ZZ", 3); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if _, err := svc.Update(hospital, "A+", -1); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("want ErrValidation, got %v", err)
	}
	if n := activityCount(t, store); n != before {
		t.Fatalf("failed updates must not append activity")
	}
}

func TestCreateRequest(t *testing.T) {
	store := seededStore(t)
	hospital := mustUser(t, store, "stmarys@lifelink.test")
	svc := services.NewRequestService(store)

	r, err := svc.Create(hospital, services.CreateRequestInput{BloodType: "b+", Units: 3, Reason: "Dialysis"})
	if err != nil {
		t.Fatal(err)
	}
	if r.ID != 3 {
		t.Fatalf("want next sequential id 3, got %d", r.ID)
	}
	if r.Hospital != "St. Mary's Hospital" || r.BloodType != "B+" || r.Urgency != domain.UrgencyNormal {
		t.Fatalf("unexpected request: %+v", r)
	}
	if r.Collected != 0 || r.Distance != domain.DefaultDistance {
		t.Fatalf("new request should start empty: %+v", r)
	}

	// no deduplication
	r2, err := svc.Create(hospital, services.CreateRequestInput{BloodType: "B+", Units: 3, Reason: "Dialysis"})
	if err != nil || r2.ID == r.ID {
		t.Fatalf("duplicate broadcast should create a new row: %+v %v", r2, err)
	}

	list, err := svc.List(repos.RequestFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 4 || list[0].ID != r2.ID {
		t.Fatalf("want 4 requests newest first, got %+v", list)
	}

	latest, _ := store.Activity.Latest(1)
	if latest[0].Action != "Broadcasted B+ Request" || latest[0].Type != domain.ActivityRequest {
		t.Fatalf("unexpected activity: %+v", latest[0])
	}
}

func TestCreateRequest_Validation(t *testing.T) {
	store := seededStore(t)
	hospital := mustUser(t, store, "stmarys@lifelink.test")
	donor := mustUser(t, store, "rohit@lifelink.test")
	svc := services.NewRequestService(store)

	bad := []services.CreateRequestInput{
		{BloodType: "C+", Units: 1},
		{BloodType: "A+", Units: 0},
		{BloodType: "A+", Units: 1, Urgency: "Whenever"},
	}
	for _, in := range bad {
		if _, err := svc.Create(hospital, in); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("%+v: want ErrValidation, got %v", in, err)
		}
	}
	if _, err := svc.Create(donor, services.CreateRequestInput{BloodType: "A+", Units: 1}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("donors cannot broadcast, got %v", err)
	}
}

func TestRequestFilters(t *testing.T) {
	store := seededStore(t)
	svc := services.NewRequestService(store)

	open, err := svc.List(repos.RequestFilter{OpenOnly: true, Urgency: "Critical"})
	if err != nil {
		t.Fatal(err)
	}
	if len(open) != 1 || open[0].BloodType != "O-" {
		t.Fatalf("want the O- critical request, got %+v", open)
	}
	ab, _ := svc.List(repos.RequestFilter{BloodType: "AB-"})
	if len(ab) != 0 {
		t.Fatalf("want no AB- requests, got %+v", ab)
	}
}
