package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoffin/caseconv/caseerrors"
)

func TestValidateSingleChoice(t *testing.T) {
	tests := []struct {
		name    string
		choices []bool
		wantMsg string
	}{
		{name: "exactly one", choices: []bool{false, true, false}},
		{name: "none", choices: []bool{false, false}, wantMsg: "pick one"},
		{name: "no choices at all", choices: nil, wantMsg: "pick one"},
		{name: "several", choices: []bool{true, false, true}, wantMsg: "only one"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSingleChoice("source", "pick one", "only one", tt.choices...)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, caseerrors.ErrConfig)
			var cfgErr *caseerrors.ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, "source", cfgErr.Option)
			assert.Equal(t, tt.wantMsg, cfgErr.Message)
		})
	}
}
