package ui

// The Color* accessors return the escape code of the corresponding category
// from the currently active theme. They are functions rather than variables
// so theme changes take effect immediately everywhere.

// ColorPrimary returns the active theme's primary accent color code.
func ColorPrimary() string { return GetCurrentTheme().Primary }

// ColorSecondary returns the active theme's secondary color code.
func ColorSecondary() string { return GetCurrentTheme().Secondary }

// ColorGreen returns the active theme's success color code.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorYellow returns the active theme's warning color code.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorRed returns the active theme's error color code.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorBlue returns the active theme's info color code.
func ColorBlue() string { return GetCurrentTheme().Info }

// ColorBold returns the active theme's bold escape code.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorUnderline returns the active theme's underline escape code.
func ColorUnderline() string { return GetCurrentTheme().Underline }

// ColorReset returns the active theme's reset escape code.
func ColorReset() string { return GetCurrentTheme().Reset }
