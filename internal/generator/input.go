package generator

import (
	"encoding/json"
	"os"

	"github.com/mitchellh/mapstructure"
)

// CatalogFromJson loads a course catalog from a JSON array of offering
// records. Keys are matched loosely, so catalogs exported with differing
// field casing decode into the same Course values.
func CatalogFromJson(file string) ([]Course, error) {
	bytes, _ := os.ReadFile(file)
	var recordsJson []map[string]any
	err := json.Unmarshal(bytes, &recordsJson)
	if err != nil {
		return nil, err
	}

	var courses []Course
	if err := mapstructure.Decode(recordsJson, &courses); err != nil {
		return nil, err
	}

	return courses, nil
}

// PreferencesFromJson loads a preference record from a JSON object,
// falling back to defaults for absent fields.
func PreferencesFromJson(file string) (Preferences, error) {
	bytes, _ := os.ReadFile(file)
	var prefsJson map[string]any
	err := json.Unmarshal(bytes, &prefsJson)
	if err != nil {
		return Preferences{}, err
	}

	prefs := DefaultPreferences()
	if err := mapstructure.Decode(prefsJson, &prefs); err != nil {
		return Preferences{}, err
	}

	return prefs, nil
}
