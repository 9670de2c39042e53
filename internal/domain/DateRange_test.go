package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateRange(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		end       string
		expectErr bool
	}{
		{name: "Intervalo válido", start: "2025-01-01", end: "2025-01-31"},
		{name: "Mesmo dia", start: "2025-03-10", end: "2025-03-10"},
		{name: "Início vazio", start: "", end: "2025-01-31", expectErr: true},
		{name: "Valor MISSING da planilha", start: "MISSING", end: "2025-01-31", expectErr: true},
		{name: "Formato inválido", start: "01/01/2025", end: "2025-01-31", expectErr: true},
		{name: "Data inexistente", start: "2025-02-30", end: "2025-03-01", expectErr: true},
		{name: "Início depois do fim", start: "2025-02-01", end: "2025-01-01", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dr, err := NewDateRange(tt.start, tt.end)
			if tt.expectErr {
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.start, dr.StartString())
			assert.Equal(t, tt.end, dr.EndString())
			assert.False(t, dr.Start.After(dr.End))
			assert.Equal(t, time.UTC, dr.Start.Location())
		})
	}
}
