package config_test

import (
	"path/filepath"
	"testing"

	"github.com/jlrickert/cli-toolkit/toolkit"
	"github.com/stretchr/testify/require"

	"github.com/jlrickert/datadigest/pkg/config"
)

func TestParse_YAML(t *testing.T) {
	t.Parallel()

	raw := []byte(`
algorithm: BLAKE3
output: json
csv:
  delimiter: ";"
  comment: "#"
  noHeader: true
`)
	cfg, err := config.Parse(raw, ".yaml")
	require.NoError(t, err)
	require.Equal(t, "blake3", cfg.Algorithm)
	require.Equal(t, config.OutputJSON, cfg.Output)
	require.Equal(t, ';', cfg.CSV.DelimiterRune())
	require.Equal(t, '#', cfg.CSV.CommentRune())
	require.True(t, cfg.CSV.NoHeader)
}

func TestParse_TOML(t *testing.T) {
	t.Parallel()

	raw := []byte(`
algorithm = "md5"
format = "csv"

[csv]
delimiter = "\t"
`)
	cfg, err := config.Parse(raw, ".toml")
	require.NoError(t, err)
	require.Equal(t, "csv", cfg.Format)
	require.Equal(t, '\t', cfg.CSV.DelimiterRune())
	require.Equal(t, config.OutputText, cfg.Output, "unset fields keep defaults")
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"unknown algorithm": "algorithm: sha1\n",
		"unknown output":    "output: xml\n",
		"unknown format":    "format: parquet\n",
		"long delimiter":    "csv:\n  delimiter: ab\n",
		"bad yaml":          "algorithm: [\n",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := config.Parse([]byte(raw), ".yaml")
			require.Error(t, err)
			require.True(t, config.IsInvalidConfig(err))
		})
	}
}

func TestLoadOrDefault(t *testing.T) {
	t.Parallel()

	rt, err := toolkit.NewTestRuntime(t.TempDir(), "/home/testuser", "testuser")
	require.NoError(t, err)
	dir := "/home/testuser/project"
	require.NoError(t, rt.Mkdir(dir, 0o755, true))

	cfg, err := config.LoadOrDefault(rt, "", dir)
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)

	p := filepath.Join(dir, config.DefaultFileName)
	require.NoError(t, rt.AtomicWriteFile(p, []byte("output: json\n"), 0o644))
	cfg, err = config.LoadOrDefault(rt, "", dir)
	require.NoError(t, err)
	require.Equal(t, config.OutputJSON, cfg.Output)

	tp := filepath.Join(dir, "alt.toml")
	require.NoError(t, rt.AtomicWriteFile(tp, []byte("algorithm = \"blake3\"\n"), 0o644))
	cfg, err = config.LoadOrDefault(rt, tp, dir)
	require.NoError(t, err)
	require.Equal(t, "blake3", cfg.Algorithm)
	require.Equal(t, config.OutputText, cfg.Output, "an explicit path skips the directory default")

	_, err = config.LoadOrDefault(rt, filepath.Join(dir, "missing.yaml"), dir)
	require.Error(t, err)
}
