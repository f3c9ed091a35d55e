package cmd

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setProfiles(t *testing.T, profiles ...map[string]any) {
	t.Helper()
	viper.Set("profiles", profiles)
	t.Cleanup(func() { viper.Set("profiles", nil) })
}

func TestGetActiveProfile(t *testing.T) {
	setProfiles(t,
		map[string]any{"name": "local", "driver": "mysql", "dsn": "root:secret@tcp(localhost:3306)/shop"},
		map[string]any{"name": "legacy", "driver": "sqlserver", "schema": "Billing", "namespace": `App\Models`, "active": true},
	)

	p, err := GetActiveProfile()
	require.NoError(t, err)
	assert.Equal(t, "legacy", p.Name)
	assert.Equal(t, `App\Models`, p.Namespace)
}

func TestGetActiveProfile_Errors(t *testing.T) {
	t.Run("none active", func(t *testing.T) {
		setProfiles(t, map[string]any{"name": "local"})
		_, err := GetActiveProfile()
		assert.ErrorIs(t, err, ErrNoActiveProfile)

		p, err := activeProfile()
		require.NoError(t, err)
		assert.Equal(t, &Profile{}, p)
	})

	t.Run("several active", func(t *testing.T) {
		setProfiles(t,
			map[string]any{"name": "a", "active": true},
			map[string]any{"name": "b", "active": true},
		)
		_, err := GetActiveProfile()
		assert.ErrorIs(t, err, ErrMultipleActiveProfiles)

		_, err = activeProfile()
		assert.ErrorIs(t, err, ErrMultipleActiveProfiles)
	})
}

func TestProfile_SchemaName(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		want    string
		wantErr bool
	}{
		{"explicit schema wins", Profile{Driver: "mysql", DSN: "u:p@tcp(h:3306)/shop", Schema: "Sales"}, "Sales", false},
		{"mysql dsn", Profile{Driver: "mysql", DSN: "u:p@tcp(h:3306)/shop"}, "shop", false},
		{"postgres url", Profile{Driver: "postgres", DSN: "postgres://u:p@localhost:5432/inventory?sslmode=disable"}, "inventory", false},
		{"no dsn", Profile{Driver: "mysql"}, "", false},
		{"unknown driver", Profile{Driver: "db2", DSN: "x"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.profile.SchemaName()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
