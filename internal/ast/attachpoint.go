package ast

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/tangzhangming/tracy/internal/errors"
)

// ============================================================================
// 附加点
// ============================================================================

// ExpansionType 附加点的通配展开方式
type ExpansionType int

const (
	ExpansionNone    ExpansionType = iota // 无需展开
	ExpansionFull                         // 每个匹配生成一个附加点
	ExpansionMulti                        // 多个匹配共用一次批量附加
	ExpansionSession                      // 入口/返回成对的会话附加
)

func (e ExpansionType) String() string {
	switch e {
	case ExpansionNone:
		return "none"
	case ExpansionFull:
		return "full"
	case ExpansionMulti:
		return "multi"
	case ExpansionSession:
		return "session"
	}
	return "ExpansionType(" + strconv.Itoa(int(e)) + ")"
}

// USDTProbeEntry 解析得到的 USDT 探针信息
type USDTProbeEntry struct {
	Path            string
	Provider        string
	Name            string
	SemaphoreOffset uint64
	SampleLoc       int
	NumLocations    int
}

// AttachPointFields 附加点分解后的字段
type AttachPointFields struct {
	Provider   string
	Target     string
	Lang       string // 目标语言（如 cpp）
	NS         string // 命名空间 / USDT provider
	Func       string
	FuncOffset uint64
	Address    uint64
	Freq       uint64
	Len        uint64
	Mode       string
	Pin        string
	USDT       USDTProbeEntry
	Async      bool
	Expansion  ExpansionType
}

// AttachPoint 一个插桩位置
type AttachPoint struct {
	node
	AttachPointFields

	RawInput      string // 用户写下的原始文本
	IgnoreInvalid bool   // 找不到目标时是否忽略

	index int
}

// ProbeType 返回该附加点的探针类别
func (ap *AttachPoint) ProbeType() ProbeType {
	return ProbeTypeOf(ap.Provider)
}

// Index 返回附加点索引，未分配时为 0
func (ap *AttachPoint) Index() int { return ap.index }

// Name 按固定顺序拼出附加点的规范名
//
// provider[:target][:lang][:ns][:func[+offset]][:address][:freq][:len][:mode]
// 未设置的段被省略。该名字同时用于展示和生成的类型名。
func (ap *AttachPoint) Name() string {
	var sb strings.Builder
	sb.WriteString(ap.Provider)
	for _, seg := range []string{ap.Target, ap.Lang, ap.NS} {
		if seg != "" {
			sb.WriteByte(':')
			sb.WriteString(seg)
		}
	}
	if ap.Func != "" {
		sb.WriteByte(':')
		sb.WriteString(ap.Func)
		if ap.FuncOffset != 0 {
			sb.WriteByte('+')
			sb.WriteString(strconv.FormatUint(ap.FuncOffset, 10))
		}
	}
	for _, n := range []uint64{ap.Address, ap.Freq, ap.Len} {
		if n != 0 {
			sb.WriteByte(':')
			sb.WriteString(strconv.FormatUint(n, 10))
		}
	}
	if ap.Mode != "" {
		sb.WriteByte(':')
		sb.WriteString(ap.Mode)
	}
	return sb.String()
}

func (ap *AttachPoint) String() string { return ap.Name() }

// CreateExpansionCopy 用一个解析好的匹配串从模板生成新的附加点
//
// 新节点复制模板的全部字段，再按 provider 类别从 match 重新分解
// target / ns / func。match 必须已经完全解析，对应一个真实的插桩位置。
// 类别无法识别说明编译器自身有缺陷，此时返回 *errors.InternalError。
func (ap *AttachPoint) CreateExpansionCopy(a *Arena, match string) (*AttachPoint, error) {
	fields := ap.AttachPointFields
	if !decomposeMatch(ap.ProbeType(), &fields, match) {
		err := errors.NewInternal(errors.B0001, ap.loc, ap.Provider)
		a.logger.Error(err.Message,
			zap.String("code", err.Code),
			zap.String("provider", ap.Provider),
			zap.String("match", match),
			zap.Stringer("loc", ap.loc),
		)
		return nil, err
	}

	cp := a.NewAttachPoint(ap.RawInput, ap.IgnoreInvalid, ap.loc)
	cp.index = ap.index
	cp.AttachPointFields = fields
	return cp, nil
}

// decomposeMatch 按探针类别把 match 分解进 f，类别未知时返回 false
func decomposeMatch(t ProbeType, f *AttachPointFields, match string) bool {
	switch t {
	case ProbeTypeKprobe, ProbeTypeKretprobe:
		f.Func = match
		if strings.Contains(match, ":") {
			f.Target = erasePrefix(&f.Func)
		}
	case ProbeTypeUprobe, ProbeTypeUretprobe, ProbeTypeFentry, ProbeTypeFexit, ProbeTypeTracepoint:
		// target 分别是二进制路径、内核模块和 tracepoint 分类
		f.Func = match
		f.Target = erasePrefix(&f.Func)
	case ProbeTypeUSDT:
		f.Func = match
		f.Target = erasePrefix(&f.Func)
		f.NS = erasePrefix(&f.Func)
	case ProbeTypeWatchpoint, ProbeTypeAsyncWatchpoint:
		f.Func = match
		erasePrefix(&f.Func)
	case ProbeTypeRawTracepoint:
		f.Func = match
	case ProbeTypeSoftware, ProbeTypeHardware, ProbeTypeInterval, ProbeTypeProfile,
		ProbeTypeSpecial, ProbeTypeIter:
		// 没有 target / func 结构
	default:
		return false
	}
	return true
}

// erasePrefix 截掉第一个 ':' 及其之前的内容并返回前缀
//
// 没有 ':' 时整个字符串都是前缀，s 被清空。
func erasePrefix(s *string) string {
	prefix, rest, found := strings.Cut(*s, ":")
	if !found {
		*s = ""
		return prefix
	}
	*s = rest
	return prefix
}
