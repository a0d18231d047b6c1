package presets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RaffleRate_Go/internal/raffle"
	"github.com/osse101/RaffleRate_Go/internal/validation"
)

const (
	configPath = "../../configs/presets.yaml"
	schemaPath = "../../configs/schemas/presets.schema.json"
)

func writePresets(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "presets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const validDoc = `version: 1
instructions:
  - "first"
presets:
  - name: small
    tickets_bought: 1
    total_tickets: 2
    num_draws: 5
`

func TestLoader_ShippedConfig(t *testing.T) {
	loader := NewLoader(configPath, schemaPath, nil)
	require.NoError(t, loader.Load())

	instructions := loader.Instructions()
	require.Len(t, instructions, 2)
	assert.Contains(t, instructions[0], "x/n")

	all := loader.All()
	require.NotEmpty(t, all)
	for _, p := range all {
		assert.NoError(t, raffle.Validate(p.Input()), p.Name)
	}

	p, err := loader.Get("ten-draws")
	require.NoError(t, err)
	assert.Equal(t, raffle.Input{TicketsBought: 3, TotalTickets: 10, NumDraws: 10}, p.Input())
}

func TestLoader_LazyLoadOnGet(t *testing.T) {
	loader := NewLoader(writePresets(t, validDoc), schemaPath, nil)

	p, err := loader.Get("small")
	require.NoError(t, err)
	assert.Equal(t, 5, p.NumDraws)

	_, err = loader.Get("missing")
	assert.ErrorIs(t, err, ErrPresetNotFound)
}

func TestLoader_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name: "draws below minimum",
			content: `version: 1
instructions: ["a"]
presets:
  - {name: bad, tickets_bought: 1, total_tickets: 2, num_draws: 0}
`,
			wantErr: validation.ErrSchemaValidation,
		},
		{
			name: "unknown field",
			content: `version: 1
instructions: ["a"]
presets:
  - {name: bad, tickets_bought: 1, total_tickets: 2, num_draws: 3, colour: red}
`,
			wantErr: validation.ErrSchemaValidation,
		},
		{
			name: "more tickets bought than exist",
			content: `version: 1
instructions: ["a"]
presets:
  - {name: bad, tickets_bought: 5, total_tickets: 2, num_draws: 3}
`,
			wantErr: raffle.ErrTicketsExceedTotal,
		},
		{
			name: "duplicate names",
			content: `version: 1
instructions: ["a"]
presets:
  - {name: twin, tickets_bought: 1, total_tickets: 2, num_draws: 3}
  - {name: twin, tickets_bought: 1, total_tickets: 2, num_draws: 4}
`,
			wantErr: ErrDuplicatePreset,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := NewLoader(writePresets(t, tt.content), schemaPath, nil)
			err := loader.Load()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoader_ReloadKeepsCatalogOnError(t *testing.T) {
	path := writePresets(t, validDoc)
	loader := NewLoader(path, schemaPath, nil)
	require.NoError(t, loader.Load())

	require.NoError(t, os.WriteFile(path, []byte("version: [unclosed"), 0644))
	assert.Error(t, loader.Reload())

	p, err := loader.Get("small")
	require.NoError(t, err)
	assert.Equal(t, "small", p.Name)

	updated := validDoc + `  - name: large
    tickets_bought: 10
    total_tickets: 100
    num_draws: 100
`
	require.NoError(t, os.WriteFile(path, []byte(updated), 0644))
	require.NoError(t, loader.Reload())
	assert.Len(t, loader.All(), 2)
}

func TestLoader_MissingFile(t *testing.T) {
	loader := NewLoader(filepath.Join(t.TempDir(), "nope.yaml"), "", nil)

	assert.Error(t, loader.Load())
	assert.Empty(t, loader.All())
	assert.Empty(t, loader.Instructions())
}

func TestLoader_AllReturnsCopy(t *testing.T) {
	loader := NewLoader(writePresets(t, validDoc), "", nil)
	require.NoError(t, loader.Load())

	all := loader.All()
	all[0].Name = "changed"

	p, err := loader.Get("small")
	require.NoError(t, err)
	assert.Equal(t, "small", p.Name)
}
