package font

import "os"
import "path"
import "errors"
import "io/fs"
import "path/filepath"

import "golang.org/x/image/font/sfnt"

// Returned when trying to add a font to a [Library] under a name
// that's already taken.
var ErrAlreadyPresent = errors.New("font already present in the library")

// A collection of fonts accessible by name.
//
// The goal of a library is to make it easy to parse fonts in bulk
// and keep them all in a single place.
type Library struct {
	fonts map[string]*sfnt.Font
}

// Creates a new, empty font [Library].
func NewLibrary() *Library {
	return &Library{fonts: make(map[string]*sfnt.Font)}
}

// Returns the current number of fonts in the library.
func (self *Library) Size() int { return len(self.fonts) }

// Finds out whether a font with the given name exists in the library.
func (self *Library) HasFont(name string) bool {
	_, found := self.fonts[name]
	return found
}

// Returns the font with the given name, or nil if not found.
//
// If you don't know the names of your fonts, print them out with
// [Library.EachFont]() or use [GetName]() directly on a parsed font.
func (self *Library) GetFont(name string) *sfnt.Font {
	sfntFont, found := self.fonts[name]
	if found { return sfntFont }
	return nil
}

// Adds the given font into the library and returns its name and any
// possible error. Panics if the font is nil; returns
// [ErrAlreadyPresent] if a font with the same name was already added.
func (self *Library) AddFont(sfntFont *sfnt.Font) (string, error) {
	if sfntFont == nil { panic("can't add a nil font to the library") }
	name, err := GetName(sfntFont)
	if err != nil { return "", err }
	return name, self.addNewFont(sfntFont, name)
}

// Removes the font with the given name. Returns false if the font
// wasn't found in the library.
func (self *Library) RemoveFont(name string) bool {
	_, found := self.fonts[name]
	if !found { return false }
	delete(self.fonts, name)
	return true
}

// Parses the font at the given path and adds it to the library.
// Returns the name of the added font and any possible error.
func (self *Library) ParseFromPath(path string) (string, error) {
	sfntFont, name, err := ParseFromPath(path)
	if err != nil { return name, err }
	return name, self.addNewFont(sfntFont, name)
}

// Parses the given font bytes and adds the font to the library.
// Returns the name of the added font and any possible error.
func (self *Library) ParseFromBytes(fontBytes []byte) (string, error) {
	sfntFont, name, err := ParseFromBytes(fontBytes)
	if err != nil { return name, err }
	return name, self.addNewFont(sfntFont, name)
}

// Walks the given directory non-recursively and parses every .ttf
// and .otf file in it. Returns the number of fonts added and the
// first error encountered, if any (the walk stops on error).
func (self *Library) ParseDirFonts(dirName string) (int, error) {
	entries, err := os.ReadDir(dirName)
	if err != nil { return 0, err }

	added := 0
	for _, entry := range entries {
		if entry.IsDir() { continue }
		if !hasValidFontExtension(entry.Name()) { continue }
		_, err := self.ParseFromPath(filepath.Join(dirName, entry.Name()))
		if err != nil { return added, err }
		added += 1
	}
	return added, nil
}

// Same as [Library.ParseDirFonts](), but for embedded filesystems.
func (self *Library) ParseDirFontsFromFS(filesys fs.FS, dirName string) (int, error) {
	entries, err := fs.ReadDir(filesys, dirName)
	if err != nil { return 0, err }

	added := 0
	for _, entry := range entries {
		if entry.IsDir() { continue }
		if !hasValidFontExtension(entry.Name()) { continue }
		_, err := self.ParseFromFS(filesys, path.Join(dirName, entry.Name()))
		if err != nil { return added, err }
		added += 1
	}
	return added, nil
}

// Parses the font at the given path of the given filesystem and adds
// it to the library. Returns the name of the added font and any
// possible error.
func (self *Library) ParseFromFS(filesys fs.FS, path string) (string, error) {
	sfntFont, name, err := ParseFromFS(filesys, path)
	if err != nil { return name, err }
	return name, self.addNewFont(sfntFont, name)
}

// Calls the given function for each font in the library, passing its
// name and the font itself as arguments. The iteration stops if the
// function returns a non-nil error, which is also returned.
func (self *Library) EachFont(fontFunc func(string, *sfnt.Font) error) error {
	for name, sfntFont := range self.fonts {
		err := fontFunc(name, sfntFont)
		if err != nil { return err }
	}
	return nil
}

func (self *Library) addNewFont(sfntFont *sfnt.Font, name string) error {
	if sfntFont == nil { panic("can't add a nil font to the library") }
	if self.HasFont(name) { return ErrAlreadyPresent }
	self.fonts[name] = sfntFont
	return nil
}
