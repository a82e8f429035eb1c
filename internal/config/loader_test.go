package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(WithConfigPaths(filepath.Join(t.TempDir(), "absent.yaml")))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), *cfg)
	assert.Equal(t, "sv", cfg.Wiki.Lang)
	assert.Equal(t, DefaultTemplate, cfg.Wiki.Template)
	assert.Zero(t, cfg.Wiki.Timeout)
}

func TestLoad_YAMLFile(t *testing.T) {
	t.Setenv("WX_TEST_LANG", "en")
	path := writeFile(t, "config.yaml", `
wiki:
  lang: "${WX_TEST_LANG:-de}"
  template: "{{Project:Sandbox}}"
  timeout: 5s
log:
  level: debug
`)

	cfg, err := Load(WithConfigPaths(path))
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.Wiki.Lang)
	assert.Equal(t, "{{Project:Sandbox}}", cfg.Wiki.Template)
	assert.Equal(t, 5*time.Second, cfg.Wiki.Timeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format, "unset keys keep defaults")
}

func TestLoad_JSONFile(t *testing.T) {
	path := writeFile(t, "config.json", `{"wiki": {"api-url": "http://localhost:8080/w/api.php"}}`)

	cfg, err := Load(WithConfigPaths(path))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/w/api.php", cfg.Wiki.APIURL)
	assert.Equal(t, "sv", cfg.Wiki.Lang)
}

func TestLoad_FirstFileWins(t *testing.T) {
	first := writeFile(t, "a.yaml", "wiki:\n  lang: fi\n")
	second := writeFile(t, "b.yaml", "wiki:\n  lang: no\n")

	cfg, err := Load(WithConfigPaths(filepath.Join(t.TempDir(), "missing.yaml"), first, second))
	require.NoError(t, err)
	assert.Equal(t, "fi", cfg.Wiki.Lang)
}

func TestLoad_WithoutTemplateExpansion(t *testing.T) {
	path := writeFile(t, "config.yaml", "wiki:\n  user-agent: \"${WX_UA:-x}\"\n")

	cfg, err := Load(WithConfigPaths(path), WithoutTemplateExpansion())
	require.NoError(t, err)
	assert.Equal(t, "${WX_UA:-x}", cfg.Wiki.UserAgent)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(WithConfigPaths(writeFile(t, "bad.yaml", "wiki: [unclosed")))
	require.Error(t, err)

	_, err = Load(WithConfigPaths(writeFile(t, "list.yaml", "- a\n- b\n")))
	require.Error(t, err)

	_, err = Load(WithConfigPaths(writeFile(t, "req.yaml", "wiki:\n  lang: ${WX_REQUIRED:?lang required}\n")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lang required")
}

func TestLoad_Env(t *testing.T) {
	path := writeFile(t, "config.yaml", "wiki:\n  lang: de\n")
	t.Setenv("WIKIEXPAND_WIKI_LANG", "fr")
	t.Setenv("WIKIEXPAND_WIKI_API_URL", "http://127.0.0.1/w/api.php")
	t.Setenv("WIKIEXPAND_WIKI_TIMEOUT", "2s")

	cfg, err := Load(WithConfigPaths(path), WithEnvPrefix(EnvPrefix))
	require.NoError(t, err)
	assert.Equal(t, "fr", cfg.Wiki.Lang)
	assert.Equal(t, "http://127.0.0.1/w/api.php", cfg.Wiki.APIURL)
	assert.Equal(t, 2*time.Second, cfg.Wiki.Timeout)

	cfg, err = Load(WithConfigPaths(path))
	require.NoError(t, err)
	assert.Equal(t, "de", cfg.Wiki.Lang, "env ignored without prefix")
}

func TestLoad_CLIFlags(t *testing.T) {
	path := writeFile(t, "config.yaml", "wiki:\n  lang: de\n  template: \"{{a}}\"\n")
	t.Setenv("WIKIEXPAND_WIKI_LANG", "fr")

	var cfg *Config
	cmd := &cli.Command{
		Name: "test",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "wiki-lang"},
			&cli.StringFlag{Name: "wiki-template"},
			&cli.DurationFlag{Name: "wiki-timeout"},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			var err error
			cfg, err = Load(WithConfigPaths(path), WithEnvPrefix(EnvPrefix), WithCommand(cmd))

			return err
		},
	}

	require.NoError(t, cmd.Run(context.Background(), []string{"test", "--wiki-lang", "it", "--wiki-timeout", "3s"}))
	require.NotNil(t, cfg)
	assert.Equal(t, "it", cfg.Wiki.Lang, "flag beats env and file")
	assert.Equal(t, "{{a}}", cfg.Wiki.Template, "unset flag keeps file value")
	assert.Equal(t, 3*time.Second, cfg.Wiki.Timeout)
}

func TestDefaultPaths(t *testing.T) {
	paths := DefaultPaths()
	assert.Equal(t, ".wikiexpand.yaml", paths[0])
	assert.Contains(t, paths, "/etc/wikiexpand/config.yaml")
	assert.Equal(t, "config/config.yaml", paths[len(paths)-1])
}
