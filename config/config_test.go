package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "compare.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Len(t, cfg.Assemblies, 6)
	assert.Equal(t, "Minia", cfg.Assemblies[5].Label)
	assert.Equal(t, 1.0, cfg.Metrics.Target.Value)
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	path := writeConfig(t, `
base_path: /data/quast
assemblies:
  - {label: k21, folder: 21mers}
  - {label: Minia, folder: minia_results}
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/quast", cfg.BasePath)
	assert.Equal(t, 300, cfg.DPI)
	assert.Equal(t, []AssemblySource{{"k21", "21mers"}, {"Minia", "minia_results"}}, cfg.Assemblies)
	assert.Equal(t, Default().Metrics, cfg.Metrics)
	assert.Equal(t, filepath.Join("/data/quast", "comparison_plots"), cfg.ResolvedOutputDir())
}

func TestLoadAbsoluteOutputDir(t *testing.T) {
	path := writeConfig(t, "base_path: /data\noutput_dir: /tmp/plots\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/plots", cfg.ResolvedOutputDir())
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"duplicate label": `
assemblies:
  - {label: a, folder: x}
  - {label: a, folder: y}
`,
		"empty folder": `
assemblies:
  - {label: a, folder: ""}
`,
		"metric in two categories": `
metrics:
  maximize: [N50]
  minimize: [N50]
`,
		"bad dpi": "dpi: 0\n",
		"bad yaml": "assemblies: [\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load("")
	assert.Error(t, err)
}
