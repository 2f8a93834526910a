package img
import (
	"io"
	"bytes"
	"image"
	"image/png"
)

func decodePNG( data []byte ) (image.Image, error) {
	return png.Decode( bytes.NewReader( data ) )
}

func encodePNG( w io.Writer, m image.Image ) error {
	enc := png.Encoder{ CompressionLevel: png.BestCompression }
	return enc.Encode( w, m )
}
