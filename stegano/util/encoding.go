package util

/*
 * transform data from/to binary form.
 * every bit is stored in its own byte (0 or 1), most significant bit first,
 * so bit strings can be searched with the bytes package.
 */
func ToBin( x byte ) []byte {
	result := make( []byte, 8 )
	for i := 7; i >= 0; i-- {
		result[i] = x & 1
		x >>= 1
	}
	return result
}

func FromBin( x []byte ) byte {
	result := byte(0)
	for i := 0; i < 8; i++ {
		result = result << 1 | x[i] & 1
	}
	return result
}

func BytesToBits( data []byte ) []uint8 {
	res := make( []uint8, 0, len(data) * 8 )
	for _, b := range data {
		res = append( res, ToBin( b )... )
	}
	return res
}

// BitsToBytes packs full groups of 8 bits; a trailing partial group is ignored.
func BitsToBytes( bits []uint8 ) []byte {
	result := make( []byte, 0, len(bits) / 8 )
	for i := 0; i + 8 <= len(bits); i += 8 {
		result = append( result, FromBin( bits[i:i+8] ) )
	}
	return result
}
