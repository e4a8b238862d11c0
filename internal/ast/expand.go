package ast

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/tangzhangming/tracy/internal/errors"
)

// ============================================================================
// 通配展开
// ============================================================================
//
// 符号解析由外部完成：MatchResolver 只负责给出匹配串，不解释它们；
// 如何把匹配串分解回附加点字段完全由 CreateExpansionCopy 决定。

// MatchResolver 外部的符号 / USDT 解析器
type MatchResolver interface {
	// Resolve 返回模板附加点的全部匹配串，每个都必须已完全解析
	Resolve(ap *AttachPoint) ([]string, error)
}

// ResolverFunc 函数形式的 MatchResolver
type ResolverFunc func(ap *AttachPoint) ([]string, error)

// Resolve 实现 MatchResolver
func (f ResolverFunc) Resolve(ap *AttachPoint) ([]string, error) { return f(ap) }

// ExpandProbe 把探针中需要展开的附加点替换为每个匹配一个的副本
//
// Expansion 为 ExpansionNone 的附加点原样保留，附加点顺序保持不变。
// IgnoreInvalid 的附加点解析失败或没有匹配时直接丢弃。
// 遇到内部错误立即返回，探针保持展开前的状态。
func ExpandProbe(a *Arena, probe *Probe, r MatchResolver) error {
	expanded := make([]*AttachPoint, 0, len(probe.AttachPoints))

	for _, ap := range probe.AttachPoints {
		if ap.Expansion == ExpansionNone {
			expanded = append(expanded, ap)
			continue
		}

		matches, err := r.Resolve(ap)
		if err != nil {
			if ap.IgnoreInvalid {
				a.logger.Debug("ignoring unresolved attach point",
					zap.String("attach_point", ap.Name()), zap.Error(err))
				continue
			}
			return fmt.Errorf("resolve %s: %w", ap.Name(), err)
		}
		if len(matches) == 0 && !ap.IgnoreInvalid {
			return fmt.Errorf("attach point %s matched no probes", ap.Name())
		}

		for _, match := range matches {
			cp, err := ap.CreateExpansionCopy(a, match)
			if err != nil {
				return err
			}
			expanded = append(expanded, cp)
		}
	}

	probe.AttachPoints = expanded
	return nil
}

// ExpandProgram 展开程序中的全部探针
//
// 解析失败按探针收集后一并返回；内部错误会立刻中止整个展开。
func ExpandProgram(a *Arena, prog *Program, r MatchResolver) error {
	var errs error
	for _, probe := range prog.Probes {
		if err := ExpandProbe(a, probe, r); err != nil {
			if errors.IsInternal(err) {
				return err
			}
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}
