package img
import (
	"io"
	"bytes"
	"image"
	"golang.org/x/image/tiff"
)

func decodeTIFF( data []byte ) (image.Image, error) {
	return tiff.Decode( bytes.NewReader( data ) )
}

func encodeTIFF( w io.Writer, m image.Image ) error {
	return tiff.Encode( w, m, &tiff.Options{ Compression: tiff.Deflate } )
}
