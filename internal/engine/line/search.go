package line

import "strings"

// Index returns the cluster offset of the first occurrence of query
// at or after cluster offset from.
func (l *Line) Index(query string, from int) (int, bool) {
	if query == "" || from > l.length {
		return 0, false
	}
	start := l.byteOffset(from)
	i := strings.Index(l.text[start:], query)
	if i < 0 {
		return 0, false
	}
	return l.ClusterOffsetOfByte(start + i), true
}

// LastIndex returns the cluster offset of the last occurrence of
// query contained entirely within clusters [0, before).
func (l *Line) LastIndex(query string, before int) (int, bool) {
	if query == "" {
		return 0, false
	}
	if before > l.length {
		before = l.length
	}
	region := l.text[:l.byteOffset(before)]
	i := strings.LastIndex(region, query)
	if i < 0 {
		return 0, false
	}
	return l.ClusterOffsetOfByte(i), true
}
