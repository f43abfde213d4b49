// Package abstractfactory demonstrates the abstract-factory pattern with
// themed GUI widget families: a WidgetFactory produces a Button and a
// Checkbox that always belong to the same theme, and RenderWindow composes a
// window without knowing which family it was handed.
//
// Expected usage:
//
//	f, err := abstractfactory.ForTheme(abstractfactory.ThemeDark)
//	if err != nil {
//		// UnknownThemeError for unrecognized themes
//	}
//	fmt.Println(abstractfactory.RenderWindow(f, "Settings"))
package abstractfactory
