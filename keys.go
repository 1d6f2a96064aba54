package jrdb

import "strconv"

// sequenceKey formats a collection's 1-based child sequence number as the
// decimal string used for its record key.
func sequenceKey(n int) string {
	return strconv.Itoa(n)
}
