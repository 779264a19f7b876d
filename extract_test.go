package bootstrap

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type zipEntry struct {
	name    string
	content []byte
}

// buildZip creates an archive with the entries in the given order.
func buildZip(t *testing.T, entries ...zipEntry) []byte {
	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)
	for _, e := range entries {
		w, err := zw.Create(e.name)
		require.NoError(t, err)
		_, err = w.Write(e.content)
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

var installerBytes = []byte{0x4D, 0x5A, 0x90, 0x00, 0x03, 0x00}

func TestExtractOne(t *testing.T) {
	archive := buildZip(t,
		zipEntry{"lib/net45/Foo.dll", []byte("library")},
		zipEntry{"lib/net45/Foo.Squirrel.exe", installerBytes},
		zipEntry{"Foo.nuspec", []byte("<package/>")},
	)
	dest := filepath.Join(t.TempDir(), "installer.exe")

	err := ExtractOne(archive, HasSuffix(InstallerSuffix), dest)
	require.NoError(t, err)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, installerBytes, data)
}

func TestExtractOne_noMatch(t *testing.T) {
	archive := buildZip(t,
		zipEntry{"lib/net45/Foo.dll", []byte("library")},
		zipEntry{"Squirrel.exe.config", []byte("<config/>")},
	)
	dest := filepath.Join(t.TempDir(), "installer.exe")

	err := ExtractOne(archive, HasSuffix(InstallerSuffix), dest)
	assert.EqualError(t, err, "Unable to extract embedded package (predicate not found)")
	assert.Equal(t, KindExtractionFailed, KindOf(err))

	_, err = os.Stat(dest)
	assert.True(t, os.IsNotExist(err))
}

func TestExtractOne_firstMatchWins(t *testing.T) {
	archive := buildZip(t,
		zipEntry{"a/Squirrel.exe", []byte("first")},
		zipEntry{"b/Squirrel.exe", []byte("second")},
	)
	dest := filepath.Join(t.TempDir(), "installer.exe")

	require.NoError(t, ExtractOne(archive, HasSuffix(InstallerSuffix), dest))
	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))
}

func TestExtractOne_scanOrder(t *testing.T) {
	archive := buildZip(t,
		zipEntry{"z", []byte("1")},
		zipEntry{"a", []byte("22")},
		zipEntry{"m", []byte("333")},
	)

	var seen []Entry
	pred := func(e Entry) bool {
		seen = append(seen, e)
		return false
	}
	err := ExtractOne(archive, pred, filepath.Join(t.TempDir(), "out"))
	assert.Equal(t, KindExtractionFailed, KindOf(err))

	assert.Equal(t, []Entry{
		{Index: 0, Name: "z", Size: 1},
		{Index: 1, Name: "a", Size: 2},
		{Index: 2, Name: "m", Size: 3},
	}, seen)
}

func TestExtractOne_writeFailureStopsScan(t *testing.T) {
	archive := buildZip(t,
		zipEntry{"a/Squirrel.exe", []byte("first")},
		zipEntry{"b/Squirrel.exe", []byte("second")},
	)
	dest := filepath.Join(t.TempDir(), "missing-dir", "installer.exe")

	var calls int
	pred := func(e Entry) bool {
		calls++
		return HasSuffix(InstallerSuffix)(e)
	}
	err := ExtractOne(archive, pred, dest)
	assert.EqualError(t, err, "Unable to extract embedded package (predicate not found)")
	assert.Equal(t, 1, calls)
}

func TestExtractOne_notAnArchive(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "installer.exe")

	err := ExtractOne([]byte("definitely not a zip archive"), HasSuffix(InstallerSuffix), dest)
	assert.Equal(t, KindExtractionFailed, KindOf(err))

	_, err = os.Stat(dest)
	assert.True(t, os.IsNotExist(err))
}

func TestExtractOne_emptyArchive(t *testing.T) {
	err := ExtractOne(buildZip(t), HasSuffix(InstallerSuffix), filepath.Join(t.TempDir(), "out"))
	assert.Equal(t, KindExtractionFailed, KindOf(err))
}

func TestHasSuffix(t *testing.T) {
	pred := HasSuffix("Squirrel.exe")
	assert.True(t, pred(Entry{Name: "Squirrel.exe"}))
	assert.True(t, pred(Entry{Name: "lib/Foo.Squirrel.exe"}))
	assert.False(t, pred(Entry{Name: "squirrel.exe"}))
	assert.False(t, pred(Entry{Name: "Squirrel.exe/"}))
	assert.False(t, pred(Entry{Name: "exe"}))
}
