package converter

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoffin/caseconv/caseerrors"
	"github.com/mcoffin/caseconv/casing"
)

func TestConvertWithOptions(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want ConversionResult
	}{
		{
			name: "fixed source",
			opts: []Option{
				WithInput("simpleCamelCase"),
				WithSourceCase(casing.TypeCamel),
				WithTargetCase(casing.TypeKebab),
			},
			want: ConversionResult{
				Input:      "simpleCamelCase",
				Output:     "simple-camel-case",
				SourceCase: "camel",
				TargetCase: "kebab",
				Components: []string{"simple", "Camel", "Case"},
			},
		},
		{
			name: "case names",
			opts: []Option{
				WithInput("simple_snake_case"),
				WithSourceCaseName("Snake"),
				WithTargetCaseName("camel"),
			},
			want: ConversionResult{
				Input:      "simple_snake_case",
				Output:     "simpleSnakeCase",
				SourceCase: "snake",
				TargetCase: "camel",
				Components: []string{"simple", "snake", "case"},
			},
		},
		{
			name: "guess",
			opts: []Option{
				WithInput("simple-kebab-case"),
				WithGuess(true),
				WithTargetCase(casing.TypeSnake),
			},
			want: ConversionResult{
				Input:      "simple-kebab-case",
				Output:     "simple_kebab_case",
				SourceCase: "kebab",
				TargetCase: "snake",
				Components: []string{"simple", "kebab", "case"},
				Guessed:    true,
			},
		},
		{
			name: "unjumble",
			opts: []Option{
				WithInput("simple_jumbledCase"),
				WithUnjumble(true),
				WithTargetCase(casing.TypeKebab),
			},
			want: ConversionResult{
				Input:      "simple_jumbledCase",
				Output:     "simple-jumbled-case",
				SourceCase: "camel+snake+kebab",
				TargetCase: "kebab",
				Components: []string{"simple", "jumbled", "Case"},
				Unjumbled:  true,
			},
		},
		{
			name: "restricted candidates",
			opts: []Option{
				WithInput("foo_barBaz"),
				WithCandidates(casing.Candidates{casing.TypeSnake}),
				WithTargetCase(casing.TypeKebab),
			},
			want: ConversionResult{
				Input:      "foo_barBaz",
				Output:     "foo-barbaz",
				SourceCase: "snake",
				TargetCase: "kebab",
				Components: []string{"foo", "barBaz"},
				Unjumbled:  true,
			},
		},
		{
			name: "empty input",
			opts: []Option{
				WithInput(""),
				WithGuess(true),
				WithTargetCase(casing.TypeSnake),
			},
			want: ConversionResult{
				SourceCase: "camel",
				TargetCase: "snake",
				Components: []string{},
				Guessed:    true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvertWithOptions(tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestConvertWithOptionsErrors(t *testing.T) {
	tests := []struct {
		name       string
		opts       []Option
		wantIs     error
		wantOption string
	}{
		{
			name:       "no source mode",
			opts:       []Option{WithInput("x"), WithTargetCase(casing.TypeSnake)},
			wantIs:     caseerrors.ErrConfig,
			wantOption: "source",
		},
		{
			name: "two source modes",
			opts: []Option{
				WithInput("x"),
				WithSourceCase(casing.TypeCamel),
				WithGuess(true),
				WithTargetCase(casing.TypeSnake),
			},
			wantIs:     caseerrors.ErrConfig,
			wantOption: "source",
		},
		{
			name:       "no target",
			opts:       []Option{WithInput("x"), WithGuess(true)},
			wantIs:     caseerrors.ErrConfig,
			wantOption: "target",
		},
		{
			name:       "no input",
			opts:       []Option{WithGuess(true), WithTargetCase(casing.TypeSnake)},
			wantIs:     caseerrors.ErrConfig,
			wantOption: "input",
		},
		{
			name:   "unknown source name",
			opts:   []Option{WithInput("x"), WithSourceCaseName("pascal"), WithTargetCase(casing.TypeSnake)},
			wantIs: caseerrors.ErrInvalidCaseType,
		},
		{
			name:   "unknown target name",
			opts:   []Option{WithInput("x"), WithGuess(true), WithTargetCaseName("title")},
			wantIs: caseerrors.ErrInvalidCaseType,
		},
		{
			name:       "invalid target type",
			opts:       []Option{WithInput("x"), WithGuess(true), WithTargetCase(casing.Type(9))},
			wantIs:     caseerrors.ErrInvalidCaseType,
			wantOption: "target",
		},
		{
			name:       "empty candidates",
			opts:       []Option{WithInput("x"), WithCandidates(nil), WithTargetCase(casing.TypeSnake)},
			wantIs:     caseerrors.ErrConfig,
			wantOption: "candidates",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ConvertWithOptions(tt.opts...)
			require.Error(t, err)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.wantIs)
			if tt.wantOption != "" {
				var cfgErr *caseerrors.ConfigError
				require.ErrorAs(t, err, &cfgErr)
				assert.Equal(t, tt.wantOption, cfgErr.Option)
			}
		})
	}
}

func TestUnjumbleCanBeDisabled(t *testing.T) {
	_, err := ConvertWithOptions(
		WithInput("x"),
		WithUnjumble(true),
		WithUnjumble(false),
		WithTargetCase(casing.TypeSnake),
	)
	assert.ErrorIs(t, err, caseerrors.ErrConfig)
}

func TestNew(t *testing.T) {
	t.Run("reusable", func(t *testing.T) {
		c, err := New(WithGuess(true), WithTargetCase(casing.TypeSnake))
		require.NoError(t, err)
		assert.Equal(t, casing.TypeSnake, c.TargetCase())

		for input, want := range map[string]string{
			"simpleCamelCase":   "simple_camel_case",
			"simple-kebab-case": "simple_kebab_case",
			"simple_snake_case": "simple_snake_case",
		} {
			r, err := c.Convert(input)
			require.NoError(t, err)
			assert.Equal(t, want, r.Output, input)
		}
	})

	t.Run("rejects input", func(t *testing.T) {
		_, err := New(WithInput("x"), WithGuess(true), WithTargetCase(casing.TypeSnake))
		var cfgErr *caseerrors.ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "input", cfgErr.Option)
	})
}

func TestConversionResultChanged(t *testing.T) {
	assert.True(t, (&ConversionResult{Input: "fooBar", Output: "foo_bar"}).Changed())
	assert.False(t, (&ConversionResult{Input: "foo", Output: "foo"}).Changed())
}

func TestMaxInputSize(t *testing.T) {
	c, err := New(WithGuess(true), WithTargetCase(casing.TypeKebab), WithMaxInputSize(8))
	require.NoError(t, err)

	_, err = c.Convert("fourWord")
	require.NoError(t, err)

	_, err = c.Convert("fiveWords")
	require.Error(t, err)
	assert.ErrorIs(t, err, caseerrors.ErrInputLimit)
	var limitErr *caseerrors.InputLimitError
	require.ErrorAs(t, err, &limitErr)
	assert.Equal(t, "bytes", limitErr.Unit)
	assert.Equal(t, int64(8), limitErr.Limit)
	assert.Equal(t, int64(9), limitErr.Actual)

	unlimited, err := New(WithGuess(true), WithTargetCase(casing.TypeKebab), WithMaxInputSize(0))
	require.NoError(t, err)
	long := make([]byte, DefaultMaxInputSize+1)
	for i := range long {
		long[i] = 'a'
	}
	_, err = unlimited.Convert(string(long))
	assert.NoError(t, err)
}

func TestConvertBatch(t *testing.T) {
	inputs := make([]string, 50)
	for i := range inputs {
		inputs[i] = fmt.Sprintf("item%dValue", i)
	}

	results, err := ConvertBatch(context.Background(), inputs, 3,
		WithSourceCase(casing.TypeCamel),
		WithTargetCase(casing.TypeSnake),
	)
	require.NoError(t, err)
	require.Len(t, results, len(inputs))
	for i, r := range results {
		assert.Equal(t, inputs[i], r.Input)
		assert.Equal(t, fmt.Sprintf("item%d_value", i), r.Output)
	}
}

func TestConvertBatchEmpty(t *testing.T) {
	results, err := ConvertBatch(context.Background(), nil, 1, WithGuess(true), WithTargetCase(casing.TypeKebab))
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestConvertBatchErrors(t *testing.T) {
	t.Run("batch too large", func(t *testing.T) {
		c, err := New(WithGuess(true), WithTargetCase(casing.TypeKebab), WithMaxBatch(2))
		require.NoError(t, err)

		_, err = c.ConvertBatch(context.Background(), []string{"a", "b", "c"})
		var limitErr *caseerrors.InputLimitError
		require.ErrorAs(t, err, &limitErr)
		assert.Equal(t, "inputs", limitErr.Unit)
		assert.Equal(t, int64(3), limitErr.Actual)
	})

	t.Run("failing input", func(t *testing.T) {
		c, err := New(WithGuess(true), WithTargetCase(casing.TypeKebab), WithMaxInputSize(4))
		require.NoError(t, err)

		_, err = c.ConvertBatch(context.Background(), []string{"ok", "tooLong"})
		require.Error(t, err)
		assert.ErrorIs(t, err, caseerrors.ErrInputLimit)
		assert.Contains(t, err.Error(), "input 1")
	})

	t.Run("canceled context", func(t *testing.T) {
		c, err := New(WithGuess(true), WithTargetCase(casing.TypeKebab))
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err = c.ConvertBatch(ctx, []string{"a", "b"})
		assert.True(t, errors.Is(err, context.Canceled))
	})

	t.Run("invalid workers", func(t *testing.T) {
		_, err := ConvertBatch(context.Background(), []string{"a"}, 0, WithGuess(true), WithTargetCase(casing.TypeKebab))
		assert.ErrorIs(t, err, caseerrors.ErrConfig)
	})
}

func TestOptionLimitsRejectNegative(t *testing.T) {
	for name, opt := range map[string]Option{
		"max_input_size": WithMaxInputSize(-1),
		"max_batch":      WithMaxBatch(-1),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := New(opt, WithGuess(true), WithTargetCase(casing.TypeKebab))
			var cfgErr *caseerrors.ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, name, cfgErr.Option)
		})
	}
}
