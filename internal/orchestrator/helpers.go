package orchestrator

import (
	"encoding/json"

	"github.com/muambr/fashionscrape/internal/normalize"
)

func jsonUnmarshalBestEffort(raw []byte, v interface{}) error {
	return json.Unmarshal(raw, v)
}

func domainOf(pageURL string) (string, error) {
	return normalize.NormalizeDomain(pageURL)
}
