package upload

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// fileHeader builds a real multipart.FileHeader around the content.
func fileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPost, "/", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File["file"][0]
}

func TestSaveKeepsExtension(t *testing.T) {
	store := NewStore(t.TempDir(), zaptest.NewLogger(t))

	name, err := store.Save(fileHeader(t, "Insurance Cert.PDF", "pdf-bytes"), DocumentsDir)
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(name, ".pdf"), "stored name %q should keep a lower-cased extension", name)
	assert.NotContains(t, name, "Insurance", "stored name must not leak the original name")
}

func TestSaveWritesContent(t *testing.T) {
	root := t.TempDir()
	store := NewStore(root, zaptest.NewLogger(t))

	name, err := store.Save(fileHeader(t, "logo.png", "png-bytes"), "")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(root, name))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestSaveCreatesSubdirectory(t *testing.T) {
	root := t.TempDir()
	store := NewStore(root, zaptest.NewLogger(t))

	name, err := store.Save(fileHeader(t, "avatar.jpg", "jpg-bytes"), ProfilesDir)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(root, ProfilesDir, name))
	assert.NoError(t, err)
}

func TestSaveDistinctNamesForSameInput(t *testing.T) {
	store := NewStore(t.TempDir(), zaptest.NewLogger(t))

	first, err := store.Save(fileHeader(t, "doc.pdf", "x"), "")
	require.NoError(t, err)
	second, err := store.Save(fileHeader(t, "doc.pdf", "x"), "")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
