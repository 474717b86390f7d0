package snapshot

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/brepgo/codec"
)

type testPayload struct {
	Vertices [][3]float64 `json:"vertices"`
	Edges    [][2]int     `json:"edges"`
}

func testFixture() (Manifest, testPayload) {
	m := NewManifest("unit-square")
	m.Vertices = 4
	m.Edges = 4
	m.Faces = 1

	p := testPayload{
		Vertices: [][3]float64{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
		Edges:    [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}},
	}
	return m, p
}

func TestSaveLoadRoundTrip(t *testing.T) {
	m, p := testFixture()

	tests := []struct {
		name string
		opts []Option
	}{
		{name: "defaults"},
		{name: "none", opts: []Option{WithCompression(CompressionNone)}},
		{name: "zstd", opts: []Option{WithCompression(CompressionZstd)}},
		{name: "lz4", opts: []Option{WithCompression(CompressionLZ4)}},
		{name: "json", opts: []Option{WithCodec(codec.JSON{})}},
		{name: "json+lz4", opts: []Option{WithCodec(codec.JSON{}), WithCompression(CompressionLZ4)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Save(&buf, m, p, tt.opts...))

			gotM, gotP, err := Load[testPayload](bytes.NewReader(buf.Bytes()))
			require.NoError(t, err)

			assert.Equal(t, m.ID, gotM.ID)
			assert.Equal(t, m.Name, gotM.Name)
			assert.Equal(t, m.Vertices, gotM.Vertices)
			assert.Equal(t, p, gotP)
		})
	}
}

func TestLoadRejectsCorruption(t *testing.T) {
	m, p := testFixture()

	var buf bytes.Buffer
	require.NoError(t, Save(&buf, m, p, WithCompression(CompressionNone)))
	data := buf.Bytes()

	t.Run("bad magic", func(t *testing.T) {
		bad := append([]byte{}, data...)
		bad[0] ^= 0xFF

		_, _, err := Load[testPayload](bytes.NewReader(bad))
		require.Error(t, err)
	})

	t.Run("flipped payload bit", func(t *testing.T) {
		bad := append([]byte{}, data...)
		// Past the header and codec name, before the directory.
		bad[len(bad)/2] ^= 0x01

		_, _, err := Load[testPayload](bytes.NewReader(bad))
		require.Error(t, err)
		assert.True(t, IsChecksumMismatch(err), "got %v", err)
	})

	t.Run("truncated", func(t *testing.T) {
		_, _, err := Load[testPayload](bytes.NewReader(data[:10]))
		require.Error(t, err)
	})

	t.Run("missing footer", func(t *testing.T) {
		_, _, err := Load[testPayload](bytes.NewReader(data[:len(data)-24]))
		require.Error(t, err)
	})
}

func TestLoadUnknownCodec(t *testing.T) {
	m, p := testFixture()

	var buf bytes.Buffer
	require.NoError(t, Save(&buf, m, p))
	data := buf.Bytes()

	// The codec name "cbor" follows the 16-byte header.
	copy(data[16:20], "webp")

	_, _, err := Load[testPayload](bytes.NewReader(data))
	require.ErrorContains(t, err, "unsupported snapshot codec")
}

func TestSaveFileLoadFile(t *testing.T) {
	m, p := testFixture()
	path := filepath.Join(t.TempDir(), "model.brep")

	require.NoError(t, SaveFile(path, m, p))

	gotM, gotP, err := LoadFile[testPayload](path)
	require.NoError(t, err)
	assert.Equal(t, m.Name, gotM.Name)
	assert.Equal(t, p, gotP)

	// No temp files survive a successful save.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestPeek(t *testing.T) {
	m, p := testFixture()

	var buf bytes.Buffer
	require.NoError(t, Save(&buf, m, p))

	got, err := Peek(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, m.ID, got.ID)
	assert.Equal(t, 1, got.Faces)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestCompressionString(t *testing.T) {
	assert.Equal(t, "none", CompressionNone.String())
	assert.Equal(t, "zstd", CompressionZstd.String())
	assert.Equal(t, "lz4", CompressionLZ4.String())
	assert.Equal(t, "unknown", Compression(7).String())
}
