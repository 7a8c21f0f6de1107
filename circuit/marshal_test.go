package circuit

import (
	"bytes"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestSerializationRoundTrip(t *testing.T) {
	assert := require.New(t)

	qc, err := New(3, 3)
	assert.NoError(err)
	qc.H(0).X(1).RZ(math.Pi/3, 2).Barrier().CX(0, 2).MeasureAll()
	assert.NoError(qc.Err())

	var buf bytes.Buffer
	written, err := qc.WriteTo(&buf)
	assert.NoError(err)
	assert.Equal(int64(buf.Len()), written)

	var got Circuit
	read, err := got.ReadFrom(&buf)
	assert.NoError(err)
	assert.Equal(written, read)

	assert.Equal(qc.NbQubits(), got.NbQubits())
	assert.Equal(qc.NbClbits(), got.NbClbits())
	if diff := cmp.Diff(qc.Instructions(), got.Instructions()); diff != "" {
		t.Fatalf("instructions mismatch (-want +got):\n%s", diff)
	}
	assert.True(qc.MeasuredQubits().Equal(got.MeasuredQubits()))
}

func TestSerializationRejectsInvalid(t *testing.T) {
	assert := require.New(t)

	// a circuit with a recorded error does not serialize
	qc, _ := New(1, 0)
	qc.H(7)
	var buf bytes.Buffer
	_, err := qc.WriteTo(&buf)
	assert.ErrorIs(err, ErrQubitOutOfRange)

	// garbage does not deserialize
	var got Circuit
	_, err = got.ReadFrom(bytes.NewReader([]byte("not cbor at all")))
	assert.Error(err)
}
