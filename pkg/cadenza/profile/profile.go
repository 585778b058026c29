package profile

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Profile holds the user-facing identity values skills address the user
// with. It is passed explicitly into the service; there is no process-wide
// profile state.
type Profile struct {
	Name      string `yaml:"name"`
	Title     string `yaml:"title"`
	Birthdate string `yaml:"birthdate"`
}

// Default is the profile used when none is configured.
func Default() Profile {
	return Profile{Title: "sir"}
}

// Load reads a YAML profile file.
func Load(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("reading profile %s: %w", path, err)
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("parsing profile %s: %w", path, err)
	}
	if p.Title == "" {
		p.Title = Default().Title
	}
	return p, nil
}

// daysPerYear is the mean Gregorian year length.
const daysPerYear = 365.2425

// Age computes whole years between an ISO 8601 birthdate and now.
func Age(birthdate string, now time.Time) (int, error) {
	born, err := time.Parse("2006-01-02", birthdate)
	if err != nil {
		return 0, fmt.Errorf("parsing birthdate %q: %w", birthdate, err)
	}
	if born.After(now) {
		return 0, fmt.Errorf("birthdate %q is in the future", birthdate)
	}
	days := now.Sub(born).Hours() / 24
	return int(days / daysPerYear), nil
}
