package abstractfactory

import (
	"strconv"
	"strings"
)

// Theme identifies a widget family. All products created by one factory
// share a theme; that consistency is the point of the pattern.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Themes returns the recognized themes in a stable order.
func Themes() []Theme {
	return []Theme{ThemeDark, ThemeLight}
}

// Button is one product of the family.
type Button interface {
	// Render returns the textual rendering of the button.
	Render() string

	// Theme reports which family the product belongs to.
	Theme() Theme
}

// Checkbox is the second product of the family.
type Checkbox interface {
	// Render returns the textual rendering for the given state.
	Render(checked bool) string

	// Theme reports which family the product belongs to.
	Theme() Theme
}

// WidgetFactory creates a consistent family of widgets.
type WidgetFactory interface {
	NewButton(label string) Button
	NewCheckbox(label string) Checkbox

	// Theme reports the family every product of this factory belongs to.
	Theme() Theme
}

// UnknownThemeError is returned when a Theme has no registered factory.
type UnknownThemeError struct{ Theme Theme }

// Error implements the error interface.
func (e UnknownThemeError) Error() string {
	// Example: abstractfactory: unknown theme "sepia"
	return "abstractfactory: unknown theme " + strconv.Quote(string(e.Theme))
}

// ForTheme is the factory-of-factories entry point.
func ForTheme(theme Theme) (WidgetFactory, error) {
	switch theme {
	case ThemeLight:
		return LightFactory{}, nil
	case ThemeDark:
		return DarkFactory{}, nil
	default:
		return nil, UnknownThemeError{Theme: theme}
	}
}

// LightFactory creates the light-theme family.
type LightFactory struct{}

// NewButton implements WidgetFactory.
func (LightFactory) NewButton(label string) Button { return lightButton{label: label} }

// NewCheckbox implements WidgetFactory.
func (LightFactory) NewCheckbox(label string) Checkbox { return lightCheckbox{label: label} }

// Theme implements WidgetFactory.
func (LightFactory) Theme() Theme { return ThemeLight }

// DarkFactory creates the dark-theme family.
type DarkFactory struct{}

// NewButton implements WidgetFactory.
func (DarkFactory) NewButton(label string) Button { return darkButton{label: label} }

// NewCheckbox implements WidgetFactory.
func (DarkFactory) NewCheckbox(label string) Checkbox { return darkCheckbox{label: label} }

// Theme implements WidgetFactory.
func (DarkFactory) Theme() Theme { return ThemeDark }

type lightButton struct{ label string }

func (b lightButton) Render() string { return "( " + b.label + " )" }
func (lightButton) Theme() Theme     { return ThemeLight }

type lightCheckbox struct{ label string }

func (c lightCheckbox) Render(checked bool) string {
	if checked {
		return "(x) " + c.label
	}
	return "( ) " + c.label
}
func (lightCheckbox) Theme() Theme { return ThemeLight }

type darkButton struct{ label string }

func (b darkButton) Render() string { return "[ " + b.label + " ]" }
func (darkButton) Theme() Theme     { return ThemeDark }

type darkCheckbox struct{ label string }

func (c darkCheckbox) Render(checked bool) string {
	if checked {
		return "[x] " + c.label
	}
	return "[ ] " + c.label
}
func (darkCheckbox) Theme() Theme { return ThemeDark }

// RenderWindow composes a small window purely through the factory. It never
// learns which concrete family it used, yet every widget comes out
// consistently themed.
func RenderWindow(f WidgetFactory, title string) string {
	ok := f.NewButton("OK")
	cancel := f.NewButton("Cancel")
	remember := f.NewCheckbox("remember me")

	var b strings.Builder
	b.WriteString("== " + title + " (" + string(f.Theme()) + ") ==\n")
	b.WriteString(remember.Render(true) + "\n")
	b.WriteString(ok.Render() + " " + cancel.Render() + "\n")
	return b.String()
}
