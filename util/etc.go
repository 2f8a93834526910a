package util
import (
	"os"
	"strings"
	"path/filepath"
)

// RecoveredName builds "<base>.<ext>", or the bare base when ext is empty.
// Path separators in ext are dropped so the file stays in its directory.
func RecoveredName( base string, ext string ) string {
	ext = strings.Map( func( r rune ) rune {
		if r == '/' || r == '\\' {
			return -1
		}
		return r
	}, ext )
	ext = strings.Trim( ext, "." )
	if ext == "" {
		return base
	}
	return base + "." + ext
}

// SplitExtension returns the extension of a file name without the dot.
func SplitExtension( filename string ) string {
	return strings.TrimPrefix( filepath.Ext( filename ), "." )
}

func IsDir( path string ) bool {
	info, err := os.Stat( path )
	return err == nil && info.IsDir()
}
