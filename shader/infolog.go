package shader

// ReadInfoLog reads a driver log of logLength bytes, including the
// terminating NUL, into a buffer that holds at most limit bytes of text.
//
// get follows the glGet*InfoLog contract: it writes at most size-1 bytes
// plus a NUL into buf and stores the text length in written.
func ReadInfoLog(logLength int32, limit int, get func(size int32, written *int32, buf *uint8)) string {
	if logLength <= 0 || limit <= 0 {
		return ""
	}
	if int(logLength) > limit+1 {
		logLength = int32(limit + 1)
	}

	buf := make([]byte, logLength)
	var written int32
	get(logLength, &written, &buf[0])
	if written < 0 {
		written = 0
	}
	if int(written) > len(buf) {
		written = int32(len(buf))
	}
	return string(buf[:written])
}
