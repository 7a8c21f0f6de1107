package bitstring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	assert := require.New(t)

	assert.Equal("000", Format(0, 3))
	assert.Equal("001", Format(1, 3))
	assert.Equal("100", Format(4, 3))
	assert.Equal("111", Format(7, 3))
	assert.Equal("0101", Format(5, 4))
	assert.Equal("1", Format(1, 1))
}

func TestParse(t *testing.T) {
	assert := require.New(t)

	for _, s := range []string{"0", "1", "000", "101", "111111"} {
		v, err := Parse(s)
		assert.NoError(err)
		assert.Equal(s, Format(v, len(s)))
	}

	_, err := Parse("")
	assert.ErrorIs(err, ErrMalformed)
	_, err = Parse("01x0")
	assert.ErrorIs(err, ErrMalformed)
}
