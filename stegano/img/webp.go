package img
import (
	"bytes"
	"image"
	"golang.org/x/image/webp"
)

func decodeWebp( data []byte ) (image.Image, error) {
	return webp.Decode( bytes.NewReader( data ) )
}
