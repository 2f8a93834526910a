package img
import (
	"image"
	"image/draw"

	"bpcs/stegano/bpcs"
)

// ToChannels converts any image to non-premultiplied RGB; alpha is dropped.
// NRGBA images keep the colour of transparent pixels.
func ToChannels( m image.Image ) bpcs.Channels {
	bounds := m.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	nrgba, ok := m.(*image.NRGBA)
	if ok == false {
		nrgba = image.NewNRGBA( bounds )
		draw.Draw( nrgba, bounds, m, bounds.Min, draw.Src )
	}

	ch := bpcs.NewChannels( height, width )
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := nrgba.PixOffset( bounds.Min.X + x, bounds.Min.Y + y )
			j := y * width + x
			ch[0].Pix[j] = nrgba.Pix[i]
			ch[1].Pix[j] = nrgba.Pix[i+1]
			ch[2].Pix[j] = nrgba.Pix[i+2]
		}
	}
	return ch
}

func FromChannels( ch bpcs.Channels ) *image.NRGBA {
	width, height := ch.Width(), ch.Height()
	m := image.NewNRGBA( image.Rect( 0, 0, width, height ) )
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := m.PixOffset( x, y )
			j := y * width + x
			m.Pix[i] = ch[0].Pix[j]
			m.Pix[i+1] = ch[1].Pix[j]
			m.Pix[i+2] = ch[2].Pix[j]
			m.Pix[i+3] = 0xff
		}
	}
	return m
}
