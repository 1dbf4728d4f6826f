package system

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSeries(t *testing.T) {
	tests := []struct {
		name      string
		osRelease string
		want      string
	}{
		{
			name: "jammy",
			osRelease: `PRETTY_NAME="Ubuntu 22.04.4 LTS"
NAME="Ubuntu"
VERSION_ID="22.04"
VERSION_CODENAME=jammy
UBUNTU_CODENAME=jammy
`,
			want: "jammy",
		},
		{
			name:      "quoted codename",
			osRelease: `VERSION_CODENAME="focal"`,
			want:      "focal",
		},
		{
			name:      "missing codename",
			osRelease: `NAME="Ubuntu"`,
			want:      "",
		},
		{
			name:      "empty file",
			osRelease: "",
			want:      "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, parseSeries(tc.osRelease))
		})
	}
}

func TestSeriesReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "os-release")
	err := os.WriteFile(path, []byte("VERSION_CODENAME=bionic\n"), 0644)
	assert.NoError(t, err)

	original := osReleasePath
	defer func() { osReleasePath = original }()
	osReleasePath = path

	assert.Equal(t, "bionic", Series())
}

func TestSeriesMissingFile(t *testing.T) {
	original := osReleasePath
	defer func() { osReleasePath = original }()
	osReleasePath = filepath.Join(t.TempDir(), "does-not-exist")

	assert.Equal(t, "", Series())
}

func TestIsRoot(t *testing.T) {
	original := geteuid
	defer func() { geteuid = original }()

	geteuid = func() int { return 0 }
	assert.True(t, IsRoot())

	geteuid = func() int { return 1000 }
	assert.False(t, IsRoot())
}
