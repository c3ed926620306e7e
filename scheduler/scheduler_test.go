package scheduler

import (
	"context"
	"testing"

	"github.com/medfinder/medfinder-api/alerts"
	"github.com/medfinder/medfinder-api/data"
	"github.com/medfinder/medfinder-api/entities"
	"github.com/medfinder/medfinder-api/pricing"
	"github.com/medfinder/medfinder-api/safety"
)

type stubSafetyClient struct{}

func (stubSafetyClient) Lookup(_ context.Context, genericName string) entities.SafetyInfo {
	return safety.DefaultSafetyInfo(genericName)
}

func (stubSafetyClient) CacheStats() (uint64, int) { return 0, 0 }

func newTestScheduler() (*Scheduler, *alerts.Store) {
	store := data.NewDrugStore()
	alertStore := alerts.NewStore()
	return NewScheduler(store, pricing.NewEngine(store), alertStore, stubSafetyClient{}, "Delhi", 15), alertStore
}

func TestBestPriceFor(t *testing.T) {
	s, _ := newTestScheduler()

	// Cheapest Delhi quote comes from pharmacy 1: 80 + 15
	price, ok := s.bestPriceFor("lisinopril")
	if !ok {
		t.Fatal("expected a price")
	}
	if price != 95.0 {
		t.Errorf("price = %v, want 95.0", price)
	}

	// Unknown mentions resolve to the default record, so a price still comes back
	if _, ok := s.bestPriceFor("no such drug"); !ok {
		t.Error("expected a price for an unmatched mention")
	}
}

func TestEvaluateAlertsTriggers(t *testing.T) {
	s, alertStore := newTestScheduler()

	alertStore.Create("lisinopril", 100.0, "demo@medfinder.com")
	alertStore.Create("lisinopril", 10.0, "demo@medfinder.com")

	s.evaluateAlerts()

	listed := alertStore.List("demo@medfinder.com")
	var triggered, active int
	for _, alert := range listed {
		switch alert.Status {
		case entities.AlertTriggered:
			triggered++
		case entities.AlertActive:
			active++
		}
	}

	if triggered != 1 {
		t.Errorf("triggered = %d, want 1 (target 100 is above the 95.0 minimum)", triggered)
	}
	if active != 1 {
		t.Errorf("active = %d, want 1 (target 10 is below any quote)", active)
	}
}
