package bed

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBED = `# comment line
track name="test"
chr1	100	200	first
chr1	150	350
chr2	0	10	third
`

func TestParser_Basic(t *testing.T) {
	p := NewParserFromReader(strings.NewReader(sampleBED))

	iv, err := p.Next()
	require.NoError(t, err)
	require.NotNil(t, iv)
	assert.Equal(t, Interval{Chrom: "chr1", Start: 100, End: 200, Name: "first"}, *iv)

	iv, err = p.Next()
	require.NoError(t, err)
	assert.Equal(t, Interval{Chrom: "chr1", Start: 150, End: 350}, *iv)

	iv, err = p.Next()
	require.NoError(t, err)
	assert.Equal(t, "chr2", iv.Chrom)

	iv, err = p.Next()
	require.NoError(t, err)
	assert.Nil(t, iv, "end of input")
}

func TestParser_Errors(t *testing.T) {
	cases := map[string]string{
		"too few fields": "chr1\t100\n",
		"bad start":      "chr1\tx\t200\n",
		"bad end":        "chr1\t100\ty\n",
		"end before beg": "chr1\t200\t100\n",
		"negative start": "chr1\t-5\t100\n",
	}
	for name, input := range cases {
		p := NewParserFromReader(strings.NewReader(input))
		_, err := p.Next()
		assert.Error(t, err, name)
	}
}

func TestParser_GzipFile(t *testing.T) {
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	_, err := gw.Write([]byte(sampleBED))
	require.NoError(t, err)
	require.NoError(t, gw.Close())

	path := filepath.Join(t.TempDir(), "sample.bed.gz")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))

	ivs, err := ReadAll(path)
	require.NoError(t, err)
	require.Len(t, ivs, 3)
	assert.Equal(t, "first", ivs[0].Name)
}

func TestParser_PlainFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.bed")
	require.NoError(t, os.WriteFile(path, []byte(sampleBED), 0644))

	ivs, err := ReadAll(path)
	require.NoError(t, err)
	require.Len(t, ivs, 3)
}

func TestParser_MissingFile(t *testing.T) {
	_, err := NewParser(filepath.Join(t.TempDir(), "nope.bed"))
	assert.Error(t, err)
}

func TestInterval_Overlaps(t *testing.T) {
	iv := Interval{Chrom: "chr1", Start: 10, End: 20}
	assert.True(t, iv.Overlaps(15, 16))
	assert.True(t, iv.Overlaps(19, 30))
	assert.False(t, iv.Overlaps(20, 30), "half-open end")
	assert.False(t, iv.Overlaps(0, 10), "half-open start boundary")
}

func TestWrite_RoundTrip(t *testing.T) {
	ivs := []Interval{
		{Chrom: "chr1", Start: 1, End: 5, Name: "a"},
		{Chrom: "chr2", Start: 10, End: 20},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, ivs))

	p := NewParserFromReader(&buf)
	var back []Interval
	for {
		iv, err := p.Next()
		require.NoError(t, err)
		if iv == nil {
			break
		}
		back = append(back, *iv)
	}
	assert.Equal(t, ivs, back)
}
