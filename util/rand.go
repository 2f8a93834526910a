package util
import (
	"math/big"
	"crypto/rand"
)

func RandInt( max int ) int {
	if max <= 0 {
		return 0
	}
	limit := big.NewInt( int64(max) )
	integer, err := rand.Int( rand.Reader, limit )
	if err != nil {
		return 0
	}
	return int(integer.Int64())
}
