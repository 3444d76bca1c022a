package adapter

import (
	"os"
	"path/filepath"
	"testing"

	m "github.com/mouse-blink/cpre/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		cfg, err := ParseConfig([]byte(`
define: [WIN32, UNICODE]
undefine:
  - DEBUG
extensions: [.c, .h]
exclude: ["vendor/"]
parallel: 4
`))
		require.NoError(t, err)

		assert.Equal(t, &Config{
			Define:     []string{"WIN32", "UNICODE"},
			Undefine:   []string{"DEBUG"},
			Extensions: []string{".c", ".h"},
			Exclude:    []string{"vendor/"},
			Parallel:   4,
		}, cfg)
	})

	t.Run("empty document", func(t *testing.T) {
		cfg, err := ParseConfig([]byte("\n"))
		require.NoError(t, err)
		assert.Equal(t, &Config{}, cfg)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := ParseConfig([]byte("defines: [A]\n"))
		require.Error(t, err)
	})

	t.Run("negative parallel", func(t *testing.T) {
		_, err := ParseConfig([]byte("parallel: -1\n"))
		require.ErrorContains(t, err, "parallel must not be negative")
	})
}

func TestYAMLConfigLoader_Load(t *testing.T) {
	t.Run("explicit path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cpre.yaml")
		require.NoError(t, os.WriteFile(path, []byte("define: [A]\n"), 0o600))

		cfg, err := NewYAMLConfigLoader().Load(m.Path(path))
		require.NoError(t, err)
		assert.Equal(t, []string{"A"}, cfg.Define)
	})

	t.Run("explicit path must exist", func(t *testing.T) {
		_, err := NewYAMLConfigLoader().Load(m.Path(filepath.Join(t.TempDir(), "missing.yaml")))
		require.ErrorContains(t, err, "read config")
	})

	t.Run("default file is optional", func(t *testing.T) {
		chdir(t, t.TempDir())

		cfg, err := NewYAMLConfigLoader().Load("")
		require.NoError(t, err)
		assert.Equal(t, &Config{}, cfg)
	})

	t.Run("default file is used when present", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultConfigFile), []byte("undefine: [B]\n"), 0o600))
		chdir(t, dir)

		cfg, err := NewYAMLConfigLoader().Load("")
		require.NoError(t, err)
		assert.Equal(t, []string{"B"}, cfg.Undefine)
	})

	t.Run("parse error names the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("define: [A\n"), 0o600))

		_, err := NewYAMLConfigLoader().Load(m.Path(path))
		require.ErrorContains(t, err, "parse config "+path)
	})
}

// chdir changes the working directory for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() { _ = os.Chdir(wd) })
}
