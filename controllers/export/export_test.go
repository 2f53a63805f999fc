package exportController

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildArchiveEntryOrderIsStable(t *testing.T) {
	results := []byte("boitier,question_id\nD1,1\n")
	scores := []byte("nom,score\nDurand,100.0\n")
	manifest := []byte(`{"session_id":1}`)

	archive, err := buildArchive(results, scores, manifest)
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	require.NoError(t, err)

	names := make([]string, len(zr.File))
	for i, f := range zr.File {
		names[i] = f.Name
	}
	assert.Equal(t, []string{"resultats.csv", "scores.csv", "manifest.json"}, names)

	// Same inputs must produce the same bytes.
	again, err := buildArchive(results, scores, manifest)
	require.NoError(t, err)
	assert.Equal(t, archive, again)
}
