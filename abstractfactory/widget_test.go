package abstractfactory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/designlab/patterns/abstractfactory"
)

func TestForTheme_FamilyConsistency(t *testing.T) {
	t.Parallel()

	for _, theme := range abstractfactory.Themes() {
		t.Run(string(theme), func(t *testing.T) {
			t.Parallel()

			f, err := abstractfactory.ForTheme(theme)
			require.NoError(t, err)

			assert.Equal(t, theme, f.Theme())
			assert.Equal(t, theme, f.NewButton("OK").Theme())
			assert.Equal(t, theme, f.NewCheckbox("opt").Theme())
		})
	}
}

func TestForTheme_Unknown(t *testing.T) {
	t.Parallel()

	f, err := abstractfactory.ForTheme(abstractfactory.Theme("sepia"))
	require.Error(t, err)
	assert.Nil(t, f)

	var unknown abstractfactory.UnknownThemeError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, abstractfactory.Theme("sepia"), unknown.Theme)
}

func TestRendering(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name         string
		theme        abstractfactory.Theme
		wantButton   string
		wantChecked  string
		wantUnticked string
	}{
		{
			name:         "light",
			theme:        abstractfactory.ThemeLight,
			wantButton:   "( OK )",
			wantChecked:  "(x) opt",
			wantUnticked: "( ) opt",
		},
		{
			name:         "dark",
			theme:        abstractfactory.ThemeDark,
			wantButton:   "[ OK ]",
			wantChecked:  "[x] opt",
			wantUnticked: "[ ] opt",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f, err := abstractfactory.ForTheme(tc.theme)
			require.NoError(t, err)

			assert.Equal(t, tc.wantButton, f.NewButton("OK").Render())
			assert.Equal(t, tc.wantChecked, f.NewCheckbox("opt").Render(true))
			assert.Equal(t, tc.wantUnticked, f.NewCheckbox("opt").Render(false))
		})
	}
}

func TestRenderWindow_FamilyBlind(t *testing.T) {
	t.Parallel()

	light, err := abstractfactory.ForTheme(abstractfactory.ThemeLight)
	require.NoError(t, err)
	dark, err := abstractfactory.ForTheme(abstractfactory.ThemeDark)
	require.NoError(t, err)

	lw := abstractfactory.RenderWindow(light, "Settings")
	dw := abstractfactory.RenderWindow(dark, "Settings")

	assert.Contains(t, lw, "== Settings (light) ==")
	assert.Contains(t, lw, "( OK ) ( Cancel )")
	assert.Contains(t, lw, "(x) remember me")

	assert.Contains(t, dw, "== Settings (dark) ==")
	assert.Contains(t, dw, "[ OK ] [ Cancel ]")
	assert.Contains(t, dw, "[x] remember me")

	// Same composition routine, different family, no cross-family leakage.
	assert.NotContains(t, dw, "( OK )")
	assert.NotContains(t, lw, "[ OK ]")
}

func TestDemo(t *testing.T) {
	t.Parallel()

	d := abstractfactory.Demo()
	require.Equal(t, "abstract-factory", d.Name)
	require.NoError(t, d.Run(context.Background(), zaptest.NewLogger(t).Sugar()))
}
