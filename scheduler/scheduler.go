// Package scheduler runs the background jobs: periodic price alert
// evaluation and hourly health monitoring.
package scheduler

import (
	"fmt"
	"runtime"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/medfinder/medfinder-api/interfaces"
	"github.com/medfinder/medfinder-api/logging"
	"github.com/medfinder/medfinder-api/metrics"
)

// Scheduler manages the background jobs
type Scheduler struct {
	cron            *gocron.Scheduler
	store           interfaces.DrugStore
	pricer          interfaces.PriceComparer
	alerts          interfaces.AlertStore
	safety          interfaces.SafetyClient
	defaultLocation string
	alertInterval   time.Duration
}

// NewScheduler creates a scheduler for alert evaluation and health monitoring
func NewScheduler(store interfaces.DrugStore, pricer interfaces.PriceComparer, alerts interfaces.AlertStore, safety interfaces.SafetyClient, defaultLocation string, alertIntervalMinutes int) *Scheduler {
	return &Scheduler{
		cron:            gocron.NewScheduler(time.UTC),
		store:           store,
		pricer:          pricer,
		alerts:          alerts,
		safety:          safety,
		defaultLocation: defaultLocation,
		alertInterval:   time.Duration(alertIntervalMinutes) * time.Minute,
	}
}

// Start registers and launches the background jobs
func (s *Scheduler) Start() error {
	if _, err := s.cron.Every(s.alertInterval).Do(s.evaluateAlerts); err != nil {
		return fmt.Errorf("scheduling alert evaluation: %w", err)
	}

	if _, err := s.cron.Every(1).Hour().Do(s.logHealth); err != nil {
		return fmt.Errorf("scheduling health monitoring: %w", err)
	}

	s.cron.StartAsync()
	logging.Info("Scheduler started",
		"alert_interval", s.alertInterval.String())
	return nil
}

// Stop halts all background jobs
func (s *Scheduler) Stop() {
	s.cron.Stop()
	logging.Info("Scheduler stopped")
}

// evaluateAlerts recomputes current prices for every active alert and
// triggers the ones whose target has been reached
func (s *Scheduler) evaluateAlerts() {
	triggered := s.alerts.Evaluate(s.bestPriceFor)
	if triggered > 0 {
		metrics.AlertsTriggered.Add(float64(triggered))
		logging.Info("Price alerts triggered", "count", triggered)
	}
}

// bestPriceFor returns the cheapest generic price for the drug in the
// default location
func (s *Scheduler) bestPriceFor(drugName string) (float64, bool) {
	record, _ := s.store.Resolve(drugName)
	quotes := s.pricer.Compare(record, s.defaultLocation, true)
	if len(quotes) == 0 {
		return 0, false
	}
	return quotes[0].GenericPrice, true
}

// logHealth emits a periodic snapshot of runtime and cache health
func (s *Scheduler) logHealth() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	hits, size := s.safety.CacheStats()

	logging.Info("Health monitor",
		"drug_count", len(s.store.Drugs()),
		"pharmacy_count", len(s.store.Pharmacies()),
		"safety_cache_hits", hits,
		"safety_cache_size", size,
		"goroutines", runtime.NumGoroutine(),
		"heap_alloc_mb", m.HeapAlloc/1024/1024)
}
