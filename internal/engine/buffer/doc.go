// Package buffer maintains a file's content as an ordered sequence of
// lines and performs position-addressed edits on it.
//
// Positions address grapheme clusters within a line (X) and line
// indices (Y). Operations validate positions themselves: an
// out-of-range position is a silent no-op, never an error. Any
// mutation marks the buffer dirty; only a successful save or a fresh
// open clears the flag.
//
// The buffer is owned by a single goroutine. It performs no locking.
package buffer
