package analyzer

import "strings"

// lineEnd terminates a chunk at the end of the current line.
const lineEnd = "\n"

// Chunk returns the text between the first occurrence of begin and the first
// occurrence of end after it. A missing end runs the chunk to the end of data.
// ok is false when begin does not occur.
func Chunk(data, begin, end string) (string, bool) {
	return ChunkAny(data, begin, end)
}

// ChunkAny is Chunk with several candidate end delimiters; the earliest one
// found after begin closes the chunk.
func ChunkAny(data, begin string, ends ...string) (string, bool) {
	start := strings.Index(data, begin)
	if start < 0 {
		return "", false
	}
	rest := data[start+len(begin):]

	stop := len(rest)
	for _, end := range ends {
		if end == "" {
			continue
		}
		if i := strings.Index(rest, end); i >= 0 && i < stop {
			stop = i
		}
	}

	return rest[:stop], true
}
