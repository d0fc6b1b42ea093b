package model

// UserPrefs holds preferences that live alongside the records
type UserPrefs struct {
	// DataPath is where the file-backed stores keep their data
	DataPath string
}

// DefaultUserPrefs returns the preferences used when none are configured
func DefaultUserPrefs() UserPrefs {
	return UserPrefs{DataPath: "data/volunteers.json"}
}
