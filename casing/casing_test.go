package casing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcoffin/caseconv/internal/testutil"
)

const (
	camelCaseTestVal = "simpleCamelCase"
	snakeCaseTestVal = "simple_snake_case"
	kebabCaseTestVal = "simple-kebab-case"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name  string
		input string
		from  Parser
		to    Builder
		want  string
	}{
		{name: "camel to camel", input: camelCaseTestVal, from: Camel, to: Camel, want: "simpleCamelCase"},
		{name: "camel to snake", input: camelCaseTestVal, from: Camel, to: Snake, want: "simple_camel_case"},
		{name: "camel to kebab", input: camelCaseTestVal, from: Camel, to: Kebab, want: "simple-camel-case"},
		{name: "snake to camel", input: snakeCaseTestVal, from: Snake, to: Camel, want: "simpleSnakeCase"},
		{name: "snake to kebab", input: snakeCaseTestVal, from: Snake, to: Kebab, want: "simple-snake-case"},
		{name: "kebab to camel", input: kebabCaseTestVal, from: Kebab, to: Camel, want: "simpleKebabCase"},
		{name: "kebab to snake", input: kebabCaseTestVal, from: Kebab, to: Snake, want: "simple_kebab_case"},

		{name: "dynamic camel to kebab", input: camelCaseTestVal, from: TypeCamel, to: TypeKebab, want: "simple-camel-case"},
		{name: "dynamic jumbled to kebab", input: "simple_jumbledCase", from: Jumbled, to: TypeKebab, want: "simple-jumbled-case"},
		{name: "static source dynamic target", input: snakeCaseTestVal, from: Snake, to: TypeCamel, want: "simpleSnakeCase"},

		{name: "empty camel", input: "", from: Camel, to: Kebab, want: ""},
		{name: "empty snake", input: "", from: Snake, to: Camel, want: ""},
		{name: "empty jumbled", input: "", from: Jumbled, to: Snake, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Convert(tt.input, tt.from, tt.to)
			assert.Equal(t, tt.want, got, "Convert(%q)", tt.input)
		})
	}
}

func TestConvertIdentity(t *testing.T) {
	// Camel only normalizes the join boundaries, so a camel source that
	// already starts lowercase converts to itself.
	for _, s := range []string{"simpleCamelCase", "getHTTPResponse", "x", "überÄrger", "with_underscore"} {
		assert.Equal(t, s, Convert(s, Camel, Camel), "camel identity for %q", s)
	}

	// Delimited sources that are already lowercase convert to themselves.
	for _, s := range []string{"simple_snake_case", "a__b", "_leading", "x"} {
		assert.Equal(t, s, Convert(s, Snake, Snake), "snake identity for %q", s)
	}
	for _, s := range []string{"simple-kebab-case", "a--b", "-leading"} {
		assert.Equal(t, s, Convert(s, Kebab, Kebab), "kebab identity for %q", s)
	}

	// Uppercase letters inside delimited components are not preserved.
	assert.NotEqual(t, "HTTP_server", Convert("HTTP_server", Snake, Snake))
	// A leading capital is lowercased by the camel builder.
	assert.NotEqual(t, "CamelCase", Convert("CamelCase", Camel, Camel))
}

func TestGuessAndConvert(t *testing.T) {
	assert.Equal(t, "simple-camel-case", GuessAndConvert(camelCaseTestVal, Kebab))
	assert.Equal(t, "simpleSnakeCase", GuessAndConvert(snakeCaseTestVal, Camel))
	assert.Equal(t, "simple_kebab_case", GuessAndConvert(kebabCaseTestVal, TypeSnake))
	assert.Equal(t, "", GuessAndConvert("", Kebab))
}

func TestUnjumble(t *testing.T) {
	assert.Equal(t, "simple-jumbled-case", Unjumble("simple_jumbledCase", Kebab))
	assert.Equal(t, "simpleJumbledCase", Unjumble("simple_jumbledCase", Camel))
	assert.Equal(t, "simple_jumbled_case", Unjumble("simple_jumbledCase", Snake))
	assert.Equal(t, "", Unjumble("", Kebab))
}

func TestNonEmptyInputHasComponents(t *testing.T) {
	inputs := []string{"a", "A", "_", "-", "__", "aB", "a_b-c", "日本語", "ß"}
	for _, s := range inputs {
		for _, p := range []Parser{Camel, Snake, Kebab, TypeCamel, TypeSnake, TypeKebab, Jumbled} {
			assert.GreaterOrEqual(t, Count(p.Components(s)), 1, "%T parsing %q", p, s)
		}
	}
}

func TestEmptyInputHasNoComponents(t *testing.T) {
	for _, p := range []Parser{Camel, Snake, Kebab, TypeCamel, TypeSnake, TypeKebab, Jumbled, Candidates{TypeSnake}} {
		assert.Zero(t, Count(p.Components("")), "%T", p)
		assert.Nil(t, Split("", p), "%T", p)
	}
}

func TestSplit(t *testing.T) {
	assert.Equal(t, []string{"simple", "Camel", "Case"}, Split(camelCaseTestVal, Camel))
	assert.Equal(t, []string{"simple", "snake", "case"}, Split(snakeCaseTestVal, Snake))
	assert.Equal(t, []string{"simple", "kebab", "case"}, Split(kebabCaseTestVal, Kebab))
	assert.Equal(t, []string{"simple", "jumbled", "Case"}, Split("simple_jumbledCase", Jumbled))
}

func TestAll(t *testing.T) {
	var got []string
	for c := range All(Snake.Components("a_b_c_d")) {
		got = append(got, c)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestIteratorStaysExhausted(t *testing.T) {
	for _, p := range []Parser{Camel, Snake, Jumbled} {
		it := p.Components("ab")
		Count(it)
		for range 3 {
			c, ok := it.Next()
			assert.False(t, ok, "%T", p)
			assert.Empty(t, c, "%T", p)
		}
	}
}

func TestFromSlice(t *testing.T) {
	assert.Equal(t, "user-profile", Kebab.Build(FromSlice([]string{"User", "Profile"})))
	assert.Equal(t, "userProfile", Camel.Build(FromSlice([]string{"USER", "profile"})))
	assert.Equal(t, "", Snake.Build(FromSlice(nil)))
	assert.Equal(t, []string{"a", "b"}, Collect(FromSlice([]string{"a", "b"})))
}

func TestErr(t *testing.T) {
	assert.NoError(t, Err(Camel.Components("aB")))
	it := Jumbled.Components("a_bC")
	Count(it)
	assert.NoError(t, Err(it))
}

func TestGoldenConversions(t *testing.T) {
	for _, c := range testutil.LoadCases(t, "testdata") {
		t.Run(c.Name, func(t *testing.T) {
			c.Run(t, func(source, target, input string) (string, error) {
				to, err := ParseType(target)
				if err != nil {
					return "", err
				}
				switch source {
				case "guess":
					return GuessAndConvert(input, to), nil
				case "jumbled":
					return Unjumble(input, to), nil
				}
				from, err := ParseType(source)
				if err != nil {
					return "", err
				}
				return Convert(input, from, to), nil
			})
		})
	}
}
