package img
import (
	"io"
	"bytes"
	"image"
	"github.com/xfmoulet/qoi"
)

func decodeQOI( data []byte ) (image.Image, error) {
	return qoi.Decode( bytes.NewReader( data ) )
}

func encodeQOI( w io.Writer, m image.Image ) error {
	return qoi.Encode( w, m )
}
