package stream

import (
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ha1tch/goobo/parser"
)

const sampleDoc = `format-version: 1.4
default-namespace: GO

[Term]
id: GO:0000001
name: mitochondrion inheritance

[Term]
id: GO:0000002
name: mitochondrial genome maintenance

[Typedef]
id: part_of
name: part of
`

func TestReaderHeaderThenFrames(t *testing.T) {
	r := NewReader(strings.NewReader(sampleDoc))
	hf, err := r.Header()
	require.NoError(t, err)
	assert.Len(t, hf.Clauses, 2)

	var got []string
	for {
		frame, err := r.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		got = append(got, frame.FrameId().String())
	}
	assert.Equal(t, []string{"GO:0000001", "GO:0000002", "part_of"}, got)
}

func TestReaderByteAndLineOffsetsAdvance(t *testing.T) {
	r := NewReader(strings.NewReader(sampleDoc))
	_, err := r.Header()
	require.NoError(t, err)
	before := r.LineOffset()
	_, err = r.Next()
	require.NoError(t, err)
	assert.Greater(t, r.LineOffset(), before)
	assert.Positive(t, r.ByteOffset())
}

// TestCollectMatchesParseText exercises the streaming equivalence
// property from spec.md §8: collecting a fully-streamed document must
// produce the same result as parsing the same text all at once.
func TestCollectMatchesParseText(t *testing.T) {
	streamed, err := NewReader(strings.NewReader(sampleDoc)).Collect()
	require.NoError(t, err)

	parsed, err := parser.ParseDocument(sampleDoc)
	require.NoError(t, err)

	assert.True(t, reflect.DeepEqual(streamed, parsed),
		"Collect() result does not match ParseDocument() result:\nstreamed=%#v\nparsed=%#v", streamed, parsed)
}
