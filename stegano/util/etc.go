package util
import (
	"bytes"
	"strings"
	"golang.org/x/text/unicode/norm"
)

const (
	// size of the extension field of a frame
	ExtensionSize = 8
)

/*
 * NormalizeExtension turns a file extension into the text stored in a frame:
 * leading dots removed, compatibility-decomposed so accented letters keep
 * their ASCII base, everything outside printable ASCII (and path separators)
 * dropped, truncated to ExtensionSize bytes.
 */
func NormalizeExtension( ext string ) string {
	ext = strings.TrimLeft( ext, "." )
	ext = norm.NFKD.String( ext )
	out := make( []byte, 0, ExtensionSize )
	for i := 0; i < len(ext) && len(out) < ExtensionSize; i++ {
		c := ext[i]
		if c <= ' ' || c > '~' || c == '/' || c == '\\' {
			continue
		}
		out = append( out, c )
	}
	return string(out)
}

// DecodeExtension reads the extension field permissively: trailing NULs are
// stripped, bytes outside ASCII are dropped.
func DecodeExtension( field []byte ) string {
	field = bytes.TrimRight( field, "\x00" )
	out := make( []byte, 0, len(field) )
	for _, c := range field {
		if c < 0x80 {
			out = append( out, c )
		}
	}
	return strings.TrimSpace( string(out) )
}
