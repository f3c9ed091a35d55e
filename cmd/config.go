package cmd

import (
	"errors"
	"fmt"

	"daogen/internal/dialect"

	"github.com/spf13/viper"
)

var (
	ErrNoActiveProfile        = errors.New("no active profile found in config (set active: true)")
	ErrMultipleActiveProfiles = errors.New("multiple active profiles found (only one can be active)")
)

// Profile names a source database and the generator options for it.
type Profile struct {
	Name      string `mapstructure:"name"`
	Driver    string `mapstructure:"driver"`
	DSN       string `mapstructure:"dsn"`
	Schema    string `mapstructure:"schema"`
	Namespace string `mapstructure:"namespace"`
	Package   string `mapstructure:"package"`
	Active    bool   `mapstructure:"active"`
}

// GetActiveProfile returns the currently active profile.
func GetActiveProfile() (*Profile, error) {
	var profiles []Profile

	if err := viper.UnmarshalKey("profiles", &profiles); err != nil {
		return nil, fmt.Errorf("failed to parse profiles config: %w", err)
	}

	var active *Profile
	count := 0

	for i := range profiles {
		if profiles[i].Active {
			active = &profiles[i]
			count++
		}
	}

	if count == 0 {
		return nil, ErrNoActiveProfile
	}
	if count > 1 {
		return nil, ErrMultipleActiveProfiles
	}

	return active, nil
}

// SchemaName resolves the schema label of the profile: the explicit
// schema wins, then the database named in the DSN.
func (p *Profile) SchemaName() (string, error) {
	if p.Schema != "" {
		return p.Schema, nil
	}
	if p.DSN == "" {
		return "", nil
	}
	d, err := dialect.GetDialect(p.Driver)
	if err != nil {
		return "", err
	}
	name, err := d.SchemaFromDSN(p.DSN)
	if err != nil {
		return "", fmt.Errorf("profile %q: %w", p.Name, err)
	}
	return name, nil
}

// activeProfile is GetActiveProfile that treats "no profile" as empty.
// A config with several active profiles is still an error.
func activeProfile() (*Profile, error) {
	p, err := GetActiveProfile()
	if errors.Is(err, ErrNoActiveProfile) {
		return &Profile{}, nil
	}
	return p, err
}
