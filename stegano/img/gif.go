package img
import (
	"bytes"
	"image"
	"image/gif"
)

// only the first frame of an animation is used as a carrier.
func decodeGif( data []byte ) (image.Image, error) {
	return gif.Decode( bytes.NewReader( data ) )
}
