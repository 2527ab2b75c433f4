package types_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/polylambda/bidipoly/internal/driver"
	"github.com/polylambda/bidipoly/internal/types"
)

type seedScenario struct {
	Name    string `yaml:"name"`
	Src     string `yaml:"src"`
	Want    string `yaml:"want"`
	WantErr bool   `yaml:"wantErr"`
}

type seedFixture struct {
	Scenarios []seedScenario `yaml:"scenarios"`
}

// TestSeedScenarios re-runs spec.md §8's seven seed end-to-end scenarios from
// a checked-in YAML fixture that data readers can diff; the same table is
// also written as Go literals in internal/driver/driver_test.go.
func TestSeedScenarios(t *testing.T) {
	data, err := os.ReadFile("testdata/seed_scenarios.yaml")
	require.NoError(t, err)

	var fixture seedFixture
	require.NoError(t, yaml.Unmarshal(data, &fixture))
	require.Len(t, fixture.Scenarios, 7)

	for _, sc := range fixture.Scenarios {
		t.Run(sc.Name, func(t *testing.T) {
			ctx := types.NewCtx()
			res, err := driver.InferSource(ctx, sc.Src)
			if sc.WantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, sc.Want, res.Type)
		})
	}
}
