package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Parse_Defaults(t *testing.T) {
	opts, err := Parse([]string{})

	require.NoError(t, err)
	assert.Equal(t, CommandView, opts.Type)
	assert.Empty(t, opts.Language)
	assert.False(t, opts.NoUI)
	assert.False(t, opts.Stats)
}

func Test_Parse_VersionFlag(t *testing.T) {
	for _, args := range [][]string{{"-v"}, {"--version"}, {"version"}} {
		opts, err := Parse(args)

		require.NoError(t, err)
		assert.Equal(t, CommandVersion, opts.Type)
	}
}

func Test_Parse_Render(t *testing.T) {
	opts, err := Parse([]string{"render"})

	require.NoError(t, err)
	assert.Equal(t, CommandRender, opts.Type)
}

func Test_Parse_Theme(t *testing.T) {
	opts, err := Parse([]string{"theme"})

	require.NoError(t, err)
	assert.Equal(t, CommandTheme, opts.Type)
}

func Test_Parse_ThemeReset(t *testing.T) {
	opts, err := Parse([]string{"theme", "reset"})

	require.NoError(t, err)
	assert.Equal(t, CommandThemeReset, opts.Type)
}

func Test_Parse_Flags(t *testing.T) {
	opts, err := Parse([]string{"--lang", "es", "--no-ui", "--stats"})

	require.NoError(t, err)
	assert.Equal(t, CommandView, opts.Type)
	assert.Equal(t, "es", opts.Language)
	assert.True(t, opts.NoUI)
	assert.True(t, opts.Stats)
}

func Test_Parse_LangOnSubcommand(t *testing.T) {
	opts, err := Parse([]string{"render", "--lang", "es"})

	require.NoError(t, err)
	assert.Equal(t, CommandRender, opts.Type)
	assert.Equal(t, "es", opts.Language)
}

func Test_Parse_UnknownFlag(t *testing.T) {
	_, err := Parse([]string{"--bogus"})

	assert.Error(t, err)
}
