package htmlextract

import (
	"encoding/json"
	"math"
)

// trimToTokenBudget serializes extract to JSON and, if the estimated token
// count (ceil(byte length / 4)) exceeds maxTokens, trims descriptions and
// specifications to 2 entries each and images to 8, mutating extract in
// place. The caller's HTMLExtract is the one trimmed and returned; there is
// no discarded copy.
func trimToTokenBudget(extract *HTMLExtract, maxTokens int) {
	if !exceedsTokenBudget(extract, maxTokens) {
		return
	}

	if len(extract.Content.Descriptions) > 2 {
		extract.Content.Descriptions = extract.Content.Descriptions[:2]
	}
	if len(extract.Content.Specifications) > 2 {
		extract.Content.Specifications = extract.Content.Specifications[:2]
	}
	if len(extract.Images) > 8 {
		extract.Images = extract.Images[:8]
	}
}

func exceedsTokenBudget(extract *HTMLExtract, maxTokens int) bool {
	encoded, err := json.Marshal(extract)
	if err != nil {
		return false
	}
	tokens := int(math.Ceil(float64(len(encoded)) / 4))
	return tokens > maxTokens
}
