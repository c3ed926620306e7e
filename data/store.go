// Package data provides thread-safe, in-memory storage for the drug catalog
// and the pharmacy reference list. Readers observe immutable copy-on-write
// snapshots through an atomic pointer; mutations are serialized by a single
// writer lock, so a resolve in flight never sees a partially-applied edit.
package data

import (
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/medfinder/medfinder-api/entities"
	"github.com/medfinder/medfinder-api/interfaces"
	"github.com/medfinder/medfinder-api/logging"
)

// Compile-time check to ensure DrugStore implements interfaces.DrugStore
var _ interfaces.DrugStore = (*DrugStore)(nil)

// ErrNotFound is returned by Edit and Delete when the key is absent.
var ErrNotFound = errors.New("drug not found")

// catalogEntry pairs a catalog key with its record. The key is assigned when
// the entry is created and does not move on edit, even if the edited record
// carries a different generic name.
type catalogEntry struct {
	Key    string
	Record entities.DrugRecord
}

// snapshot is an immutable view of the catalog. Entries keep insertion
// order, which resolution and alternatives depend on.
type snapshot struct {
	entries []catalogEntry
	index   map[string]int
}

// DrugStore holds the drug catalog and pharmacy list
type DrugStore struct {
	snap         atomic.Value // *snapshot
	writeMu      sync.Mutex
	lastModified atomic.Value // time.Time
	pharmacies   []entities.Pharmacy
}

// NewDrugStore creates a store seeded with the reference catalog and
// pharmacy list.
func NewDrugStore() *DrugStore {
	ds := &DrugStore{
		pharmacies: seedPharmacies(),
	}

	entries := make([]catalogEntry, 0, len(seedDrugs))
	index := make(map[string]int, len(seedDrugs))
	for _, record := range seedDrugs {
		key := strings.ToLower(record.GenericName)
		index[key] = len(entries)
		entries = append(entries, catalogEntry{Key: key, Record: record})
	}

	ds.snap.Store(&snapshot{entries: entries, index: index})
	ds.lastModified.Store(time.Now())
	return ds
}

// current returns the live snapshot
func (ds *DrugStore) current() *snapshot {
	if v := ds.snap.Load(); v != nil {
		if snap, ok := v.(*snapshot); ok {
			return snap
		}
	}

	logging.Warn("Drug catalog snapshot is empty or invalid")
	return &snapshot{index: make(map[string]int)}
}

// Resolve maps a free-text drug mention to a canonical record. A record
// matches when its generic or brand name is a substring of the lowercased,
// trimmed mention; entries are scanned in insertion order and the first
// match wins. When nothing matches, the designated default record is
// returned with matched=false; resolution never fails.
func (ds *DrugStore) Resolve(mention string) (entities.DrugRecord, bool) {
	needle := strings.ToLower(strings.TrimSpace(mention))
	snap := ds.current()

	for _, entry := range snap.entries {
		if strings.Contains(needle, strings.ToLower(entry.Record.GenericName)) {
			return entry.Record, true
		}
		if brand := strings.ToLower(entry.Record.BrandName); brand != "" && strings.Contains(needle, brand) {
			return entry.Record, true
		}
	}

	if idx, ok := snap.index[defaultDrugKey]; ok {
		return snap.entries[idx].Record, false
	}

	// The default entry itself was deleted; fall back to the built-in copy.
	return defaultDrugRecord, false
}

// Alternatives returns up to limit other generic names from the catalog,
// in catalog iteration order. The matched record's own generic is excluded.
func (ds *DrugStore) Alternatives(record entities.DrugRecord, limit int) []string {
	snap := ds.current()

	alternatives := make([]string, 0, limit)
	for _, entry := range snap.entries {
		if entry.Record.GenericName == record.GenericName {
			continue
		}
		alternatives = append(alternatives, entry.Record.GenericName)
		if len(alternatives) == limit {
			break
		}
	}

	return alternatives
}

// Drugs returns the catalog records in insertion order. The returned slice
// belongs to the current snapshot and must not be mutated.
func (ds *DrugStore) Drugs() []entities.DrugRecord {
	snap := ds.current()

	records := make([]entities.DrugRecord, 0, len(snap.entries))
	for _, entry := range snap.entries {
		records = append(records, entry.Record)
	}
	return records
}

// Pharmacies returns the static pharmacy reference list.
func (ds *DrugStore) Pharmacies() []entities.Pharmacy {
	return ds.pharmacies
}

// LastModified returns the time of the last catalog mutation.
func (ds *DrugStore) LastModified() time.Time {
	if v := ds.lastModified.Load(); v != nil {
		if t, ok := v.(time.Time); ok {
			return t
		}
	}

	logging.Warn("Could not get the last modified value")
	return time.Time{}
}

// Add inserts a record keyed by its lowercased generic name. Adding an
// existing key replaces the record in place, keeping its catalog position.
func (ds *DrugStore) Add(record entities.DrugRecord) {
	ds.writeMu.Lock()
	defer ds.writeMu.Unlock()

	old := ds.current()
	key := strings.ToLower(record.GenericName)

	if idx, ok := old.index[key]; ok {
		entries := copyEntries(old.entries)
		entries[idx].Record = record
		ds.snap.Store(&snapshot{entries: entries, index: old.index})
	} else {
		entries := copyEntries(old.entries)
		entries = append(entries, catalogEntry{Key: key, Record: record})
		index := copyIndex(old.index)
		index[key] = len(entries) - 1
		ds.snap.Store(&snapshot{entries: entries, index: index})
	}

	ds.lastModified.Store(time.Now())
}

// Edit replaces the record stored under key. The key itself does not move,
// even when the new record carries a different generic name.
func (ds *DrugStore) Edit(key string, record entities.DrugRecord) error {
	ds.writeMu.Lock()
	defer ds.writeMu.Unlock()

	old := ds.current()
	key = strings.ToLower(strings.TrimSpace(key))

	idx, ok := old.index[key]
	if !ok {
		return ErrNotFound
	}

	entries := copyEntries(old.entries)
	entries[idx].Record = record
	ds.snap.Store(&snapshot{entries: entries, index: old.index})
	ds.lastModified.Store(time.Now())
	return nil
}

// Delete removes the record stored under key.
func (ds *DrugStore) Delete(key string) error {
	ds.writeMu.Lock()
	defer ds.writeMu.Unlock()

	old := ds.current()
	key = strings.ToLower(strings.TrimSpace(key))

	idx, ok := old.index[key]
	if !ok {
		return ErrNotFound
	}

	entries := make([]catalogEntry, 0, len(old.entries)-1)
	entries = append(entries, old.entries[:idx]...)
	entries = append(entries, old.entries[idx+1:]...)

	index := make(map[string]int, len(entries))
	for i, entry := range entries {
		index[entry.Key] = i
	}

	ds.snap.Store(&snapshot{entries: entries, index: index})
	ds.lastModified.Store(time.Now())
	return nil
}

func copyEntries(entries []catalogEntry) []catalogEntry {
	out := make([]catalogEntry, len(entries))
	copy(out, entries)
	return out
}

func copyIndex(index map[string]int) map[string]int {
	out := make(map[string]int, len(index))
	for k, v := range index {
		out[k] = v
	}
	return out
}
