package merge

import (
	"sync"
	"time"

	"github.com/muambr/fashionscrape/internal/normalize"
	"github.com/muambr/fashionscrape/models"
)

// Attribution maps a ProductRecord field name to the source that last set
// it.
type Attribution map[string]string

// MergeState is the single piece of shared state every concurrent
// approach writes into. A single mutex covers both the product record and
// its attribution so a merge is atomic across both.
type MergeState struct {
	mu          sync.Mutex
	product     models.ProductRecord
	attribution Attribution
	start       time.Time
}

func New() *MergeState {
	return &MergeState{attribution: Attribution{}, start: time.Now()}
}

// Elapsed returns the wall-clock time since the MergeState was created.
func (m *MergeState) Elapsed() time.Duration {
	return time.Since(m.start)
}

// Snapshot returns a copy of the current product record, safe to read
// without holding the caller's own lock.
func (m *MergeState) Snapshot() models.ProductRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.product
}

// IsComplete reports whether the current record satisfies the
// completeness threshold.
func (m *MergeState) IsComplete() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.product.IsComplete()
}

// HasStrongSource reports whether any attributed field came from a
// tier-0 source.
func (m *MergeState) HasStrongSource() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, source := range m.attribution {
		if IsTierZero(source) {
			return true
		}
	}
	return false
}

// Merge applies an incoming payload tagged with source to the shared
// record, field by field, under the priority-override policy. Reads of
// MergeState (e.g. the image-by-title approach waiting on product_name)
// must take the same lock, so ProductName below is exposed for that one
// case.
func (m *MergeState) Merge(source string, payload map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if v, ok := firstStringField(payload, "product_name", "name", "title"); ok {
		m.mergeStringField(&m.product.ProductName, "product_name", source, v)
	}
	if v, ok := stringField(payload, "brand"); ok {
		m.mergeStringField(&m.product.Brand, "brand", source, v)
	}
	if v, ok := stringField(payload, "garment_type"); ok {
		gt := models.GarmentType(v)
		m.mergeGarmentType(source, gt)
	}
	if v, ok := stringField(payload, "availability"); ok {
		av := models.Availability(v)
		m.mergeAvailability(source, av)
	}
	if raw, ok := payload["price"]; ok {
		m.mergePrice(source, raw)
	}

	if v, ok := listField(payload, "image_urls", "images"); ok {
		m.mergeImages(source, v)
	}
}

// ProductName reads the current product_name under the shared lock, for
// the one approach that must poll for it before proceeding.
func (m *MergeState) ProductName() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.product.ProductName == nil {
		return "", false
	}
	return *m.product.ProductName, true
}

func (m *MergeState) overrides(field, source string) bool {
	existing, attributed := m.attribution[field]
	return !attributed || Priority(source) < Priority(existing)
}

func (m *MergeState) mergeStringField(dest **string, field, source, value string) {
	if dest == nil {
		return
	}
	if *dest == nil || m.overrides(field, source) {
		v := value
		*dest = &v
		m.attribution[field] = source
	}
}

func (m *MergeState) mergeGarmentType(source string, value models.GarmentType) {
	if m.product.GarmentType == nil || m.overrides("garment_type", source) {
		v := value
		m.product.GarmentType = &v
		m.attribution["garment_type"] = source
	}
}

func (m *MergeState) mergeAvailability(source string, value models.Availability) {
	if m.product.Availability == nil || m.overrides("availability", source) {
		v := value
		m.product.Availability = &v
		m.attribution["availability"] = source
	}
}

func (m *MergeState) mergePrice(source string, raw interface{}) {
	price := normalize.ParsePrice(raw)
	if price.Amount == nil {
		return
	}
	if m.product.Price == nil || m.product.Price.Amount == nil || m.overrides("price", source) {
		p := price
		m.product.Price = &p
		m.attribution["price"] = source
	}
}

func (m *MergeState) mergeImages(source string, incoming []string) {
	deduped := dedupImages(incoming)
	current := m.product.ImageURLs

	if len(deduped) > len(current) {
		m.product.ImageURLs = deduped
		m.attribution["image_urls"] = source
		return
	}
	if len(deduped) == len(current) && m.overrides("image_urls", source) {
		m.product.ImageURLs = deduped
		m.attribution["image_urls"] = source
	}
}

func dedupImages(urls []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, u := range urls {
		if u == "" || seen[u] {
			continue
		}
		seen[u] = true
		out = append(out, u)
	}
	return out
}

func firstStringField(payload map[string]interface{}, keys ...string) (string, bool) {
	for _, key := range keys {
		if v, ok := stringField(payload, key); ok {
			return v, true
		}
	}
	return "", false
}

func stringField(payload map[string]interface{}, key string) (string, bool) {
	raw, exists := payload[key]
	if !exists {
		return "", false
	}
	s, ok := raw.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

func listField(payload map[string]interface{}, keys ...string) ([]string, bool) {
	for _, key := range keys {
		raw, exists := payload[key]
		if !exists {
			continue
		}
		switch v := raw.(type) {
		case []string:
			return v, true
		case []interface{}:
			out := make([]string, 0, len(v))
			for _, item := range v {
				if s, ok := item.(string); ok {
					out = append(out, s)
				}
			}
			return out, true
		}
	}
	return nil, false
}
