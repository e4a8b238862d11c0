package ast

import (
	"strings"

	"go.uber.org/zap"

	"github.com/tangzhangming/tracy/internal/errors"
	"github.com/tangzhangming/tracy/internal/i18n"
)

// ============================================================================
// 废弃标识符改写
// ============================================================================
//
// Builtin 和 Call 在构造时把名字交给 Normalizer，之后的阶段只会看到
// 规范名。改写从不失败：不在表中的名字本身就是规范名。

// DeprecatedName 废弃名字表项
type DeprecatedName struct {
	Old         string // 旧名字，以 '*' 结尾时按前缀匹配
	New         string // 新名字
	ShowWarning bool   // 是否输出废弃警告
	Replace     bool   // 是否改写为新名字；为 false 时保留旧名字
}

// Matches 检查名字是否命中本表项
func (d DeprecatedName) Matches(name string) bool {
	if prefix, ok := strings.CutSuffix(d.Old, "*"); ok {
		return strings.HasPrefix(name, prefix)
	}
	return name == d.Old
}

// DefaultDeprecatedNames 内置的废弃名字表
var DefaultDeprecatedNames = []DeprecatedName{
	{Old: "stack", New: "kstack", ShowWarning: true, Replace: true},
	{Old: "sym", New: "ksym", ShowWarning: true, Replace: true},
	{Old: "sarg*", New: `*(reg("sp") + <stack_offset>)`, ShowWarning: true, Replace: false},
}

// Normalizer 废弃名字改写器
type Normalizer struct {
	names  []DeprecatedName
	warned map[string]bool
}

// NewNormalizer 使用给定的表创建改写器
func NewNormalizer(names []DeprecatedName) *Normalizer {
	return &Normalizer{
		names:  append([]DeprecatedName(nil), names...),
		warned: make(map[string]bool),
	}
}

// Names 返回当前的废弃名字表
func (n *Normalizer) Names() []DeprecatedName {
	return append([]DeprecatedName(nil), n.names...)
}

// Lookup 返回命中的表项
func (n *Normalizer) Lookup(name string) (DeprecatedName, bool) {
	for _, d := range n.names {
		if d.Matches(name) {
			return d, true
		}
	}
	return DeprecatedName{}, false
}

// Normalize 返回名字的规范形式
func (n *Normalizer) Normalize(name string) string {
	d, ok := n.Lookup(name)
	if !ok || !d.Replace {
		return name
	}
	return d.New
}

// normalize 改写名字，并对每个旧名字最多警告一次
func (n *Normalizer) normalize(name string, loc Location, logger *zap.Logger) string {
	d, ok := n.Lookup(name)
	if !ok {
		return name
	}

	if d.ShowWarning && !n.warned[d.Old] {
		n.warned[d.Old] = true
		logger.Warn(i18n.T(i18n.WarnDeprecatedName, name, d.New),
			zap.String("code", errors.W0001),
			zap.String("old", name),
			zap.String("new", d.New),
			zap.Stringer("loc", loc),
		)
	}

	if !d.Replace {
		return name
	}
	return d.New
}
