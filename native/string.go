package native

// MaxStringLen is the foreign aiString buffer size.
const MaxStringLen = 1024

// AiString mirrors the foreign length-prefixed, fixed-buffer string type.
// Data is not NUL-terminated from Go's point of view; Length is
// authoritative.
type AiString struct {
	Length uint32
	Data   [MaxStringLen]byte
}

// NewAiString builds an AiString from a Go string, truncating at the
// foreign buffer size.
func NewAiString(s string) AiString {
	var as AiString
	n := copy(as.Data[:], s)
	as.Length = uint32(n)
	return as
}

// String returns the Go view of the string.
func (s *AiString) String() string {
	n := s.Length
	if n > MaxStringLen {
		n = MaxStringLen
	}
	return string(s.Data[:n])
}
