// Package alerts keeps user price alerts in memory and re-evaluates them
// against current minimum generic prices.
package alerts

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/medfinder/medfinder-api/entities"
	"github.com/medfinder/medfinder-api/interfaces"
	"github.com/medfinder/medfinder-api/logging"
)

// Compile-time check to ensure Store implements interfaces.AlertStore
var _ interfaces.AlertStore = (*Store)(nil)

// Store holds price alerts, guarded by a single lock. Volumes are small;
// contention is not a concern here.
type Store struct {
	mu     sync.RWMutex
	alerts []entities.PriceAlert
	now    func() time.Time
}

// NewStore creates an empty alert store
func NewStore() *Store {
	return &Store{now: time.Now}
}

// Create registers a new active alert and returns it
func (s *Store) Create(drugName string, targetPrice float64, userEmail string) entities.PriceAlert {
	alert := entities.PriceAlert{
		ID:          uuid.NewString(),
		DrugName:    drugName,
		TargetPrice: targetPrice,
		UserEmail:   userEmail,
		Status:      entities.AlertActive,
		CreatedAt:   s.now(),
	}

	s.mu.Lock()
	s.alerts = append(s.alerts, alert)
	s.mu.Unlock()

	return alert
}

// List returns the alerts belonging to a user, oldest first
func (s *Store) List(userEmail string) []entities.PriceAlert {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]entities.PriceAlert, 0)
	for _, alert := range s.alerts {
		if alert.UserEmail == userEmail {
			results = append(results, alert)
		}
	}
	return results
}

// Evaluate refreshes the current price of every active alert and flips it to
// triggered once the price reaches the target. priceFor returns the minimum
// generic price for a drug name, or false when no price is available.
// Returns the number of alerts triggered by this pass.
func (s *Store) Evaluate(priceFor func(drugName string) (float64, bool)) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	triggered := 0
	for i := range s.alerts {
		if s.alerts[i].Status != entities.AlertActive {
			continue
		}

		price, ok := priceFor(s.alerts[i].DrugName)
		if !ok {
			continue
		}

		s.alerts[i].CurrentPrice = price
		if price <= s.alerts[i].TargetPrice {
			s.alerts[i].Status = entities.AlertTriggered
			triggered++
			logging.Info("Price alert triggered",
				"alert_id", s.alerts[i].ID,
				"drug_name", s.alerts[i].DrugName,
				"target_price", s.alerts[i].TargetPrice,
				"current_price", price,
			)
		}
	}

	return triggered
}
