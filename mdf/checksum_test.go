package mdf

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecksum(t *testing.T) {
	assert.Equal(t, uint16(0), Checksum(nil))
	assert.Equal(t, uint16(0), Checksum([]byte{}))
	assert.Equal(t, uint16(0x0102), Checksum([]byte{0x01, 0x02, 0xFF}))
	assert.Equal(t, uint16(255), Checksum([]byte{0xFF}))
}

func TestChecksumModulo(t *testing.T) {
	buf := bytes.Repeat([]byte{0xFF}, 300)
	assert.Equal(t, uint16(300*255%65536), Checksum(buf))
}
