package common

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"strings"
)

// FilterResultFields projects a result struct down to the requested
// top-level fields. fieldsStr is a comma-separated list of JSON field
// names; an empty string returns every field.
func FilterResultFields(result interface{}, fieldsStr string) map[string]interface{} {
	fullMap := structToMap(result)
	if fieldsStr == "" {
		return fullMap
	}

	includeFields := make(map[string]bool)
	for _, field := range strings.Split(fieldsStr, ",") {
		includeFields[strings.TrimSpace(field)] = true
	}

	filtered := make(map[string]interface{})
	for key, value := range fullMap {
		if includeFields[key] {
			filtered[key] = value
		}
	}
	return filtered
}

// structToMap converts a struct to map[string]interface{} using JSON marshaling.
func structToMap(obj interface{}) map[string]interface{} {
	data, _ := json.Marshal(obj)
	var result map[string]interface{}
	_ = json.Unmarshal(data, &result)
	return result
}

// ContentHash computes SHA256 hash of content and returns hex string.
func ContentHash(data []byte) string {
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash)
}
