package img
import (
	"os"
	"fmt"
	"bytes"
	"errors"
	"image"
	"strings"
	"path/filepath"

	"bpcs/stegano/bpcs"
)

const (
	GIF = "gif"
	PNG = "png"
	JPEG = "jpeg"
	BMP = "bmp"
	TIFF = "tiff"
	WEBP = "webp"
	QOI = "qoi"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported image format")
	// stego images must be written without loss, or the hidden bits are gone
	ErrLossyFormat = errors.New("lossy image format can not hold a stego image")
)

// Format recognizes an image by its magic bytes.
func Format( data []byte ) string {
	switch {
	case bytes.HasPrefix( data, []byte("GIF8") ):
		return GIF
	case bytes.HasPrefix( data, []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a} ):
		return PNG
	case bytes.HasPrefix( data, []byte{0xff, 0xd8, 0xff} ):
		return JPEG
	case bytes.HasPrefix( data, []byte("BM") ):
		return BMP
	case bytes.HasPrefix( data, []byte("II*\x00") ) || bytes.HasPrefix( data, []byte("MM\x00*") ):
		return TIFF
	case len(data) >= 12 && bytes.HasPrefix( data, []byte("RIFF") ) && string(data[8:12]) == "WEBP":
		return WEBP
	case bytes.HasPrefix( data, []byte("qoif") ):
		return QOI
	}
	return ""
}

// FormatFromPath picks the output format from a file extension.
func FormatFromPath( path string ) string {
	switch strings.ToLower( strings.TrimPrefix( filepath.Ext( path ), "." ) ) {
	case "png":
		return PNG
	case "bmp":
		return BMP
	case "tif", "tiff":
		return TIFF
	case "qoi":
		return QOI
	case "jpg", "jpeg":
		return JPEG
	case "gif":
		return GIF
	case "webp":
		return WEBP
	}
	return ""
}

func Decode( data []byte ) (image.Image, string, error) {
	format := Format( data )
	var m image.Image
	var err error
	switch format {
	case PNG:
		m, err = decodePNG( data )
	case JPEG:
		m, err = decodeJpeg( data )
	case GIF:
		m, err = decodeGif( data )
	case BMP:
		m, err = decodeBMP( data )
	case TIFF:
		m, err = decodeTIFF( data )
	case WEBP:
		m, err = decodeWebp( data )
	case QOI:
		m, err = decodeQOI( data )
	default:
		return nil, "", ErrUnsupportedFormat
	}
	if err != nil {
		return nil, format, fmt.Errorf("decode %s: %w", format, err)
	}
	return m, format, nil
}

// Encode writes m in a lossless format.
func Encode( m image.Image, format string ) ([]byte, error) {
	buf := new(bytes.Buffer)
	var err error
	switch format {
	case PNG:
		err = encodePNG( buf, m )
	case BMP:
		err = encodeBMP( buf, m )
	case TIFF:
		err = encodeTIFF( buf, m )
	case QOI:
		err = encodeQOI( buf, m )
	case JPEG, GIF, WEBP:
		return nil, fmt.Errorf("%w: %s", ErrLossyFormat, format)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Load decodes an image into its R, G and B channels.
func Load( data []byte ) (bpcs.Channels, error) {
	m, _, err := Decode( data )
	if err != nil {
		return bpcs.Channels{}, err
	}
	return ToChannels( m ), nil
}

func LoadFile( filename string ) (bpcs.Channels, error) {
	data, err := os.ReadFile( filename )
	if err != nil {
		return bpcs.Channels{}, err
	}
	return Load( data )
}

// Save merges the channels into an opaque image in the given format.
func Save( ch bpcs.Channels, format string ) ([]byte, error) {
	if err := ch.Validate(); err != nil {
		return nil, err
	}
	return Encode( FromChannels( ch ), format )
}
