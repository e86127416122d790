package llm

import (
	"encoding/json"
	"regexp"
	"strings"
)

var fencedJSON = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")
var trailingComma = regexp.MustCompile(`,(\s*[}\]])`)

// stripFence removes a surrounding triple-backtick fence, with or without
// a "json" tag, if present.
func stripFence(text string) string {
	if m := fencedJSON.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return strings.TrimSpace(text)
}

// unmarshalWithRepair parses text as JSON into v. On the first failure, it
// removes trailing commas before a closing brace or bracket and retries
// once. A second failure is reported to the caller as absence, not an
// error.
func unmarshalWithRepair(text string, v interface{}) bool {
	cleaned := stripFence(text)
	if err := json.Unmarshal([]byte(cleaned), v); err == nil {
		return true
	}

	repaired := trailingComma.ReplaceAllString(cleaned, "$1")
	if err := json.Unmarshal([]byte(repaired), v); err == nil {
		return true
	}
	return false
}
