package dataset

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadRoundTrip(t *testing.T) {
	rows := [][]float64{
		{1, 0, 0, 3},
		{0, 1, 1, 5.5},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteRows(&buf, rows))

	got, err := ReadRows(&buf)
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestReadRowsRejectsMissingHeader(t *testing.T) {
	buf := bytes.NewBufferString("1;2;3\n")
	_, err := ReadRows(buf)
	require.ErrorIs(t, err, ErrBadHeader)
}
