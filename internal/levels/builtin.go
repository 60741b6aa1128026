package levels

import (
	"embed"
	"io/fs"
)

//go:embed builtin/*.yaml builtin/*.txt
var builtinFS embed.FS

// Builtin returns the levels shipped with the binary.
func Builtin() fs.FS {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		// fs.Sub only fails on an invalid path literal.
		panic(err)
	}
	return sub
}
