package img
import (
	"image"
	"github.com/disintegration/gift"
)

/*
 * Orient is the transform applied to a stego image before it is saved:
 * flip top-to-bottom, then left-to-right. Unorient applies the inverse
 * composition. Both amount to a rotation by 180 degrees.
 */
func Orient( src image.Image ) *image.NRGBA {
	return apply( gift.New( gift.FlipVertical(), gift.FlipHorizontal() ), src )
}

func Unorient( src image.Image ) *image.NRGBA {
	return apply( gift.New( gift.FlipHorizontal(), gift.FlipVertical() ), src )
}

func apply( g *gift.GIFT, src image.Image ) *image.NRGBA {
	dst := image.NewNRGBA( g.Bounds( src.Bounds() ) )
	g.Draw( dst, src )
	return dst
}
