package abstractfactory

import (
	"context"
	"errors"
	"fmt"

	"github.com/designlab/patterns/catalog"
)

// Demo returns the runnable abstract-factory demonstration.
func Demo() catalog.Demo {
	return catalog.Demo{
		Name:    "abstract-factory",
		Pattern: "abstractfactory",
		Summary: "themed widget families created together, consumed family-blind",
		Run:     runDemo,
	}
}

func runDemo(ctx context.Context, log catalog.Logger) error {
	for _, theme := range Themes() {
		f, err := ForTheme(theme)
		if err != nil {
			return err
		}

		// Family consistency: every product must report the factory's theme.
		if got := f.NewButton("OK").Theme(); got != theme {
			return fmt.Errorf("abstractfactory: %s factory produced a %s button", theme, got)
		}
		if got := f.NewCheckbox("x").Theme(); got != theme {
			return fmt.Errorf("abstractfactory: %s factory produced a %s checkbox", theme, got)
		}

		log.Infof("window rendered family-blind:\n%s", RenderWindow(f, "Settings"))
	}

	_, err := ForTheme(Theme("sepia"))
	var unknown UnknownThemeError
	if !errors.As(err, &unknown) {
		return fmt.Errorf("abstractfactory: expected UnknownThemeError for sepia, got %v", err)
	}
	log.Infof("sepia rejected as expected: %v", err)

	return nil
}
