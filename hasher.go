package sha256bits

// Hasher is a hash.Hash for SHA-256. Written data is buffered in memory and
// digested when Sum is called.
type Hasher struct {
	buf []byte
}

// New returns a new Hasher.
func New() *Hasher {
	return new(Hasher)
}

// Write implements part of the hash.Hash interface. It never returns an error.
func (h *Hasher) Write(p []byte) (int, error) {
	h.buf = append(h.buf, p...)
	return len(p), nil
}

// WriteString is like Write but accepts a string.
func (h *Hasher) WriteString(p string) (int, error) {
	h.buf = append(h.buf, p...)
	return len(p), nil
}

// Reset implements part of the hash.Hash interface. It causes the Hasher to
// act as if it was newly created.
func (h *Hasher) Reset() {
	h.buf = h.buf[:0]
}

// Size implements part of the hash.Hash interface. It returns the number of
// bytes the hash will output.
func (h *Hasher) Size() int { return Size }

// BlockSize implements part of the hash.Hash interface.
func (h *Hasher) BlockSize() int { return BlockSize }

// Sum implements part of the hash.Hash interface. It appends the digest of
// the data written so far to b and returns it. It does not change the
// Hasher.
func (h *Hasher) Sum(b []byte) []byte {
	sum := Sum256(h.buf)
	return append(b, sum[:]...)
}

// Clone returns a new Hasher with a copy of the data written so far.
func (h *Hasher) Clone() *Hasher {
	return &Hasher{buf: append([]byte(nil), h.buf...)}
}
