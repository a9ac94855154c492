package cachemanager

import "encoding"

// isScalar reports whether v can be stored as a string entry.
func isScalar(v any) bool {
	switch v.(type) {
	case string, []byte,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, bool:
		return true
	default:
		return false
	}
}

// isElement reports whether v can be pushed onto a list. Encoding to the wire
// format is left to the store client.
func isElement(v any) bool {
	if isScalar(v) {
		return true
	}
	_, ok := v.(encoding.BinaryMarshaler)
	return ok
}
