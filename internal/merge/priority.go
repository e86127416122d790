// Package merge implements the single shared MergeState every approach
// writes into: a priority-tiered, mutex-guarded product record plus the
// per-field attribution that records which source last set each value.
package merge

var priorityTiers = []map[string]bool{
	{"curlcffi_gemini": true, "curlcffi_gemini_proxy": true, "requests_gemini": true, "cloudflare_gemini": true},
	{"gemini_classification": true},
	{"serpapi_google": true},
	{"gemini_fast": true},
	{"serpapi_images_url": true, "serpapi_images_title": true},
}

const unknownSourceTier = 5

// Priority returns the tier of source, lower meaning stronger. Any source
// not named in the known tiers falls into the weakest tier.
func Priority(source string) int {
	for tier, sources := range priorityTiers {
		if sources[source] {
			return tier
		}
	}
	return unknownSourceTier
}

// IsTierZero reports whether source belongs to the strongest tier.
func IsTierZero(source string) bool {
	return Priority(source) == 0
}
