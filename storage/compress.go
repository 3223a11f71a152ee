package storage

import "github.com/golang/snappy"

func compress(payload []byte) []byte {
	encoded := snappy.Encode(nil, payload)
	out := make([]byte, 0, len(snappyMagic)+len(encoded))
	out = append(out, snappyMagic...)
	return append(out, encoded...)
}

func decompress(framed []byte) ([]byte, error) {
	return snappy.Decode(nil, framed[len(snappyMagic):])
}
