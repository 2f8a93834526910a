package img
import (
	"bytes"
	"image"
	"image/jpeg"
)

// jpeg carriers are fine, the stego image is written in another format.
func decodeJpeg( data []byte ) (image.Image, error) {
	return jpeg.Decode( bytes.NewReader( data ) )
}
