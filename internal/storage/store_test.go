package storage

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"event-portal-backend/internal/config"
	apperrors "event-portal-backend/internal/errors"
)

// faultyBackend simulates a remote substrate where every operation
// fails.
type faultyBackend struct {
	reads  int
	writes int
}

func (b *faultyBackend) Read(path string) ([]byte, error) {
	b.reads++
	return nil, &apperrors.StorageFault{Op: "read", Path: path, Err: errors.New("connection reset")}
}

func (b *faultyBackend) Write(path string, content []byte) error {
	b.writes++
	return &apperrors.StorageFault{Op: "write", Path: path, Err: errors.New("connection reset")}
}

func TestLocalRoundTrip(t *testing.T) {
	store := newStore(&LocalBackend{})
	path := filepath.Join(t.TempDir(), "nested", "dir", "data.bin")

	require.NoError(t, store.WriteFile(path, []byte("data")))
	assert.Equal(t, []byte("data"), store.ReadFile(path))
}

func TestLocalReadText(t *testing.T) {
	store := newStore(&LocalBackend{})
	path := filepath.Join(t.TempDir(), "note.txt")

	require.NoError(t, store.WriteFile(path, []byte("hello")))

	text, ok := store.ReadText(path)
	assert.True(t, ok)
	assert.Equal(t, "hello", text)
}

func TestReadServedFromCache(t *testing.T) {
	store := newStore(&LocalBackend{})
	path := filepath.Join(t.TempDir(), "cached.txt")

	require.NoError(t, store.WriteFile(path, []byte("v1")))
	assert.Equal(t, []byte("v1"), store.ReadFile(path))

	// Mutate the file behind the store's back: the cached bytes win
	// until the TTL passes or the cache is flushed.
	require.NoError(t, os.WriteFile(path, []byte("v2"), 0o644))
	assert.Equal(t, []byte("v1"), store.ReadFile(path))

	store.Flush()
	assert.Equal(t, []byte("v2"), store.ReadFile(path))
}

func TestWriteInvalidatesCachedPath(t *testing.T) {
	store := newStore(&LocalBackend{})
	path := filepath.Join(t.TempDir(), "file.txt")

	require.NoError(t, store.WriteFile(path, []byte("old")))
	assert.Equal(t, []byte("old"), store.ReadFile(path))

	require.NoError(t, store.WriteFile(path, []byte("new")))
	assert.Equal(t, []byte("new"), store.ReadFile(path))
}

func TestRemoteFaultDegradesToNil(t *testing.T) {
	backend := &faultyBackend{}
	store := newStore(backend)

	assert.Nil(t, store.ReadFile("files/2024/photo.jpg"))

	_, ok := store.ReadText("files/2024/note.txt")
	assert.False(t, ok)
}

func TestFailedReadIsNotCached(t *testing.T) {
	backend := &faultyBackend{}
	store := newStore(backend)

	store.ReadFile("files/2024/a.bin")
	store.ReadFile("files/2024/a.bin")
	assert.Equal(t, 2, backend.reads, "faults must re-invoke the backend")
}

func TestWriteFaultSurfaces(t *testing.T) {
	store := newStore(&faultyBackend{})

	err := store.WriteFile("files/2024/a.bin", []byte("x"))
	require.Error(t, err)

	var fault *apperrors.StorageFault
	assert.ErrorAs(t, err, &fault)
	assert.Equal(t, "write", fault.Op)
}

func TestStaticPrefixForcesLocal(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	require.NoError(t, os.MkdirAll("static", 0o755))
	require.NoError(t, os.WriteFile("static/logo.png", []byte("logo-bytes"), 0o644))

	// Even with a broken remote backend, static assets resolve locally.
	store := newStore(&faultyBackend{})
	assert.Equal(t, []byte("logo-bytes"), store.ReadFile("static/logo.png"))
}

func TestReadImageMissingSourceYieldsPlaceholder(t *testing.T) {
	store := newStore(&faultyBackend{})

	img := store.ReadImage("files/2024/missing.jpg")
	assert.NotNil(t, img)
	assert.Equal(t, image.Rect(0, 0, 1, 1), img.Bounds())
}

func TestReadImageUndecodableYieldsPlaceholder(t *testing.T) {
	store := newStore(&LocalBackend{})
	path := filepath.Join(t.TempDir(), "not-an-image.jpg")
	require.NoError(t, store.WriteFile(path, []byte("junk")))

	img := store.ReadImage(path)
	assert.Equal(t, image.Rect(0, 0, 1, 1), img.Bounds())
}

func TestReadImageDecodes(t *testing.T) {
	var buf bytes.Buffer
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	require.NoError(t, png.Encode(&buf, src))

	store := newStore(&LocalBackend{})
	path := filepath.Join(t.TempDir(), "img.png")
	require.NoError(t, store.WriteFile(path, buf.Bytes()))

	img := store.ReadImage(path)
	assert.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())
}

func TestUnknownBackendIsConfigurationError(t *testing.T) {
	cfg := &config.Config{FileSystem: "ftp"}

	_, err := New(cfg)
	require.Error(t, err)

	var confErr *apperrors.ConfigurationError
	assert.ErrorAs(t, err, &confErr)
}

func TestLocalBackendSelected(t *testing.T) {
	cfg := &config.Config{FileSystem: config.FileSystemLocal}

	store, err := New(cfg)
	require.NoError(t, err)
	assert.IsType(t, &LocalBackend{}, store.backend)
}
