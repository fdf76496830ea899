package i18n

import (
	"embed"
	"io/fs"
)

//go:embed locales
var localeFS embed.FS

// Embedded returns the bundle shipped with the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(localeFS, "locales")
	if err != nil {
		panic("i18n: embedded locales: " + err.Error())
	}
	return sub
}
