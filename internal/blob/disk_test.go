package blob

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskPutGet(t *testing.T) {
	disk, err := NewDisk(t.TempDir())
	require.NoError(t, err)

	err = disk.Put(context.Background(), "order-1/abc.pdf", []byte("%PDF-1.4"), "application/pdf")
	require.NoError(t, err)

	data, err := disk.Get(context.Background(), "order-1/abc.pdf")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4"), data)

	// Files land under the root, nested by the order segment of the path.
	_, err = os.Stat(filepath.Join(disk.Root, "order-1", "abc.pdf"))
	assert.NoError(t, err)
}

func TestDiskRejectsEscapingPaths(t *testing.T) {
	disk, err := NewDisk(t.TempDir())
	require.NoError(t, err)

	for _, path := range []string{"../outside.txt", "a/../../outside.txt", "/etc/passwd"} {
		err := disk.Put(context.Background(), path, []byte("x"), "text/plain")
		assert.Error(t, err, "path %q must not escape the root", path)
	}
}

func TestDiskGetMissing(t *testing.T) {
	disk, err := NewDisk(t.TempDir())
	require.NoError(t, err)

	_, err = disk.Get(context.Background(), "order-1/nope.pdf")
	assert.Error(t, err)
}
