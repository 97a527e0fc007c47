package mdf

// Checksum returns the sum of all byte values in buf modulo 2^16. The RSS
// stores this value inside the MDF and refuses to edit codeplugs when the
// file content no longer adds up to it.
func Checksum(buf []byte) uint16 {
	var csum uint16
	for _, m := range buf {
		csum += uint16(m)
	}
	return csum
}
