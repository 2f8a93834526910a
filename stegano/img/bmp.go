package img
import (
	"io"
	"bytes"
	"image"
	"golang.org/x/image/bmp"
)

func decodeBMP( data []byte ) (image.Image, error) {
	return bmp.Decode( bytes.NewReader( data ) )
}

func encodeBMP( w io.Writer, m image.Image ) error {
	return bmp.Encode( w, m )
}
