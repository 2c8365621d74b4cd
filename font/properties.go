package font

import "errors"

import "golang.org/x/image/font/sfnt"

// Returned when a requested font property is missing or empty.
var ErrPropertyNotFound = errors.New("font property not found or empty")

// Returns the requested naming table property for the given font.
// If the property is missing, [ErrPropertyNotFound] will be returned.
func GetProperty(sfntFont *sfnt.Font, property sfnt.NameID) (string, error) {
	var buffer sfnt.Buffer
	value, err := sfntFont.Name(&buffer, property)
	if err == sfnt.ErrNotFound { return "", ErrPropertyNotFound }
	return value, err
}

// Returns the name of the given font, or [ErrPropertyNotFound] if the
// naming table doesn't include one.
func GetName(sfntFont *sfnt.Font) (string, error) {
	return GetProperty(sfntFont, sfnt.NameIDFull)
}

// Returns the family name of the given font (e.g. "DejaVu Sans").
func GetFamily(sfntFont *sfnt.Font) (string, error) {
	return GetProperty(sfntFont, sfnt.NameIDFamily)
}

// Returns the subfamily name of the given font. In most cases, the
// value will be one of: Regular, Italic, Bold, Bold Italic.
func GetSubfamily(sfntFont *sfnt.Font) (string, error) {
	return GetProperty(sfntFont, sfnt.NameIDSubfamily)
}
