// Package config 实现 tracy.toml 项目配置
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"

	"github.com/tangzhangming/tracy/internal/ast"
	"github.com/tangzhangming/tracy/internal/errors"
	"github.com/tangzhangming/tracy/internal/i18n"
	"github.com/tangzhangming/tracy/internal/types"
)

// 常量定义
const (
	FileName = "tracy.toml" // 配置文件名
)

// Config 项目配置
type Config struct {
	Compiler   CompilerConfig    `toml:"compiler"`
	Log        LogConfig         `toml:"log"`
	Deprecated []DeprecatedEntry `toml:"deprecated,omitempty" comment:"追加或覆盖内置的废弃名字表"`
}

// CompilerConfig 编译器选项
type CompilerConfig struct {
	// EnumBits 枚举类型描述符的位宽
	EnumBits int `toml:"enum_bits" comment:"枚举类型描述符的位宽（8 / 16 / 32 / 64）"`
}

// LogConfig 日志选项
type LogConfig struct {
	// Level 日志级别（debug / info / warn / error）
	Level string `toml:"level" comment:"日志级别（debug / info / warn / error）"`

	// Development 是否使用开发模式（控制台格式输出）
	Development bool `toml:"development" comment:"开发模式使用控制台格式输出"`

	// Language 诊断消息语言（en / zh）
	Language string `toml:"language" comment:"诊断消息语言（en / zh）"`

	// Output 日志文件路径，为空时输出到标准错误
	Output string `toml:"output,omitempty" comment:"日志文件路径，为空时输出到标准错误"`
}

// DeprecatedEntry 废弃名字表项
type DeprecatedEntry struct {
	Old     string `toml:"old"`
	New     string `toml:"new"`
	Warn    bool   `toml:"warn"`
	Replace bool   `toml:"replace"`
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		Compiler: CompilerConfig{EnumBits: types.DefaultEnumBits},
		Log: LogConfig{
			Level:    "info",
			Language: string(i18n.LangEnglish),
		},
	}
}

// Load 从文件加载配置
//
// 文件中未出现的配置项保持默认值，加载后会校验全部配置项。
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.CompileError{
			Code:    errors.C0001,
			Level:   errors.LevelError,
			Message: i18n.T(i18n.ConfigReadFailed, err),
		}
	}

	config := Default()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate 校验配置，返回全部问题
func (c *Config) Validate() error {
	var errs error

	switch c.Compiler.EnumBits {
	case 8, 16, 32, 64:
	default:
		errs = multierr.Append(errs, invalid(i18n.T(i18n.ConfigEnumBits, c.Compiler.EnumBits)))
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		errs = multierr.Append(errs, invalid(i18n.T(i18n.ConfigLogLevel, c.Log.Level)))
	}

	switch strings.ToLower(c.Log.Language) {
	case "", "en", "zh", "zh-cn", "zh-tw", "zh-hk", "chinese":
	default:
		errs = multierr.Append(errs, invalid(i18n.T(i18n.ConfigInvalidValue, "log.language", c.Log.Language)))
	}

	for i, d := range c.Deprecated {
		if d.Old == "" {
			errs = multierr.Append(errs, invalid(i18n.T(i18n.ConfigDeprecated, i+1)))
		}
	}

	return errs
}

func invalid(msg string) error {
	return &errors.CompileError{Code: errors.C0002, Level: errors.LevelError, Message: msg}
}

// TypeBuilder 按配置的枚举位宽返回类型构建器
func (c *Config) TypeBuilder() types.Builder {
	return types.Builder{EnumBits: c.Compiler.EnumBits}
}

// DeprecatedNames 返回内置表与配置合并后的废弃名字表
//
// 与内置表项同名的配置项覆盖内置表项，其余追加在末尾。
func (c *Config) DeprecatedNames() []ast.DeprecatedName {
	names := append([]ast.DeprecatedName(nil), ast.DefaultDeprecatedNames...)

	for _, d := range c.Deprecated {
		entry := ast.DeprecatedName{Old: d.Old, New: d.New, ShowWarning: d.Warn, Replace: d.Replace}

		replaced := false
		for i := range names {
			if names[i].Old == d.Old {
				names[i] = entry
				replaced = true
				break
			}
		}
		if !replaced {
			names = append(names, entry)
		}
	}
	return names
}

// Save 保存配置到文件
//
// 注释来自字段的 comment 标签。
func (c *Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	content := append([]byte("# tracy 项目配置\n\n"), data...)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// FindConfigFile 从指定路径向上查找配置文件
// 返回配置文件的完整路径，如果找不到则返回空字符串
func FindConfigFile(startPath string) string {
	// 如果是文件，从其所在目录开始
	info, err := os.Stat(startPath)
	if err != nil {
		return ""
	}

	dir := startPath
	if !info.IsDir() {
		dir = filepath.Dir(startPath)
	}

	dir, err = filepath.Abs(dir)
	if err != nil {
		return ""
	}

	for {
		configPath := filepath.Join(dir, FileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// 已到达根目录
			return ""
		}
		dir = parent
	}
}
