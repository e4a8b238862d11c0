package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/tangzhangming/tracy/internal/errors"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 64, cfg.Compiler.EnumBits)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 64, cfg.TypeBuilder().EnumBits)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[compiler]
enum_bits = 32

[log]
level = "debug"

[[deprecated]]
old = "comm_of"
new = "comm"
warn = true
replace = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 32, cfg.Compiler.EnumBits)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "en", cfg.Log.Language, "unset keys keep their defaults")
	require.Len(t, cfg.Deprecated, 1)
	assert.Equal(t, DeprecatedEntry{Old: "comm_of", New: "comm", Warn: true, Replace: true}, cfg.Deprecated[0])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)

	var ce *errors.CompileError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, errors.C0001, ce.Code)
}

func TestLoadMalformed(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[compiler\nenum_bits = ")
	_, err := Load(path)
	require.Error(t, err)
}

func TestValidateCollectsAllProblems(t *testing.T) {
	cfg := Default()
	cfg.Compiler.EnumBits = 12
	cfg.Log.Level = "loud"
	cfg.Log.Language = "klingon"
	cfg.Deprecated = []DeprecatedEntry{{New: "x"}}

	err := cfg.Validate()
	require.Error(t, err)

	errs := multierr.Errors(err)
	require.Len(t, errs, 4)
	for _, e := range errs {
		var ce *errors.CompileError
		require.ErrorAs(t, e, &ce)
		assert.Equal(t, errors.C0002, ce.Code)
	}
	assert.Contains(t, errs[0].Error(), "12")
	assert.Contains(t, errs[1].Error(), "loud")
	assert.Contains(t, errs[3].Error(), "#1")
}

func TestDeprecatedNames(t *testing.T) {
	cfg := Default()
	cfg.Deprecated = []DeprecatedEntry{
		{Old: "stack", New: "ustack", Warn: false, Replace: true},
		{Old: "comm_of", New: "comm", Warn: true, Replace: true},
	}

	names := cfg.DeprecatedNames()
	require.Len(t, names, 4)
	assert.Equal(t, "stack", names[0].Old)
	assert.Equal(t, "ustack", names[0].New, "config overrides built-in entries")
	assert.False(t, names[0].ShowWarning)
	assert.Equal(t, "comm_of", names[3].Old)

	assert.Len(t, Default().DeprecatedNames(), 3)
}

func TestSaveWritesLoadableFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)

	cfg := Default()
	cfg.Compiler.EnumBits = 16
	cfg.Log.Development = true
	cfg.Deprecated = []DeprecatedEntry{{Old: "a", New: "b", Replace: true}}
	require.NoError(t, cfg.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# 枚举类型描述符的位宽")

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSaveEscapesStrings(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	cfg := Default()
	cfg.Log.Output = `C:\logs\tracy.log`
	cfg.Deprecated = []DeprecatedEntry{
		{Old: "x\x7f", New: `quote"back\slash`, Warn: true},
		{Old: "tab\tname", New: "line\nbreak"},
	}
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestFindConfigFile(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, root, "")
	nested := filepath.Join(root, "probes", "net")
	require.NoError(t, os.MkdirAll(nested, 0755))

	found := FindConfigFile(nested)
	// TempDir 可能经过符号链接，比较解析后的路径
	want, err := filepath.EvalSymlinks(path)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(found)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	assert.Empty(t, FindConfigFile(filepath.Join(root, "does-not-exist")))
}
