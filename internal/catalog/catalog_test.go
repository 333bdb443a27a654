// Public domain.

package catalog

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCat = `# id plx eplx ra dec
alpha 10.5 0.1
beta  -0.3 0.9 266.4168 -29.0078

gamma 1.2 0.05 17:45:40.04 -29:00:28.1
bad 1.2
delta 1 x
eps 2 .2 24:00:00 0
zeta 3 .3 12:00:00 +91:00:00
eta 4 .4 0.5 +0:30:00
`

func TestParseSource(t *testing.T) {
	s, err := ParseSource("  # just a comment")
	assert.NoError(t, err)
	assert.Nil(t, s)

	s, err = ParseSource("gamma 1.2 0.05 17:45:40.04 -29:00:28.1")
	require.NoError(t, err)
	assert.Equal(t, "gamma", s.ID)
	assert.Equal(t, 1.2, s.Plx)
	assert.Equal(t, .05, s.PlxErr)
	require.True(t, s.HasPos)
	assert.InDelta(t, 266.41683, s.RA.Deg(), 1e-5)
	assert.InDelta(t, -29.00781, s.Dec.Deg(), 1e-5)

	for _, l := range []string{
		"bad 1.2",
		"delta 1 x",
		"delta y 1",
		"eps 2 .2 24:00:00 0",
		"zeta 3 .3 12:00:00 +91:00:00",
		"eta 4 .4 12:61:00 0",
		"theta 4 .4 12 0 extra",
	} {
		_, err := ParseSource(l)
		assert.Error(t, err, l)
	}
}

func readAll(t *testing.T, r io.Reader) (srcs []*Source, bad []int) {
	next := Splitter(r)
	for {
		s, err := next()
		if err == io.EOF {
			return
		}
		var se SourceError
		if errors.As(err, &se) {
			bad = append(bad, se.Line)
			continue
		}
		require.NoError(t, err)
		srcs = append(srcs, s)
	}
}

func TestSplitter(t *testing.T) {
	srcs, bad := readAll(t, strings.NewReader(testCat))
	require.Len(t, srcs, 4)
	assert.Equal(t, []string{"alpha", "beta", "gamma", "eta"},
		[]string{srcs[0].ID, srcs[1].ID, srcs[2].ID, srcs[3].ID})
	assert.False(t, srcs[0].HasPos)
	assert.True(t, srcs[1].HasPos)
	assert.InDelta(t, .5, srcs[3].Dec.Deg(), 1e-12)
	assert.Equal(t, []int{6, 7, 8, 9}, bad)
}

func TestDecompress(t *testing.T) {
	var gz, zs, l4 bytes.Buffer

	gw := gzip.NewWriter(&gz)
	_, err := gw.Write([]byte(testCat))
	require.NoError(t, err)
	require.NoError(t, gw.Close())

	zw, err := zstd.NewWriter(&zs)
	require.NoError(t, err)
	_, err = zw.Write([]byte(testCat))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	lw := lz4.NewWriter(&l4)
	_, err = lw.Write([]byte(testCat))
	require.NoError(t, err)
	require.NoError(t, lw.Close())

	for name, in := range map[string][]byte{
		"plain": []byte(testCat),
		"gzip":  gz.Bytes(),
		"zstd":  zs.Bytes(),
		"lz4":   l4.Bytes(),
		"short": []byte("a"),
		"empty": nil,
	} {
		r, err := Decompress(bytes.NewReader(in))
		require.NoError(t, err, name)
		b, err := io.ReadAll(r)
		require.NoError(t, err, name)
		require.NoError(t, r.Close(), name)
		switch name {
		case "short":
			assert.Equal(t, "a", string(b))
		case "empty":
			assert.Empty(t, b)
		default:
			assert.Equal(t, testCat, string(b), name)
		}
	}
}

func TestOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "cat.txt.gz")
	f, err := os.Create(fn)
	require.NoError(t, err)
	gw := gzip.NewWriter(f)
	_, err = gw.Write([]byte(testCat))
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	require.NoError(t, f.Close())

	r, err := Open(fn)
	require.NoError(t, err)
	srcs, _ := readAll(t, r)
	assert.Len(t, srcs, 4)
	assert.NoError(t, r.Close())

	_, err = Open(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
