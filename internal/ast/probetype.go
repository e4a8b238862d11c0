package ast

import "fmt"

// ProbeType 探针类别，决定附加点名字的分解规则和代码生成策略
type ProbeType int

const (
	ProbeTypeInvalid ProbeType = iota
	ProbeTypeSpecial
	ProbeTypeKprobe
	ProbeTypeKretprobe
	ProbeTypeUprobe
	ProbeTypeUretprobe
	ProbeTypeUSDT
	ProbeTypeTracepoint
	ProbeTypeProfile
	ProbeTypeInterval
	ProbeTypeSoftware
	ProbeTypeHardware
	ProbeTypeWatchpoint
	ProbeTypeAsyncWatchpoint
	ProbeTypeFentry
	ProbeTypeFexit
	ProbeTypeIter
	ProbeTypeRawTracepoint
)

// ProbeItem 一个 provider 的名字、缩写和类别
type ProbeItem struct {
	Name    string
	Aliases []string
	Type    ProbeType
}

// ProbeList 所有已知的 provider
var ProbeList = []ProbeItem{
	{Name: "BEGIN", Type: ProbeTypeSpecial},
	{Name: "END", Type: ProbeTypeSpecial},
	{Name: "kprobe", Aliases: []string{"k"}, Type: ProbeTypeKprobe},
	{Name: "kretprobe", Aliases: []string{"kr"}, Type: ProbeTypeKretprobe},
	{Name: "uprobe", Aliases: []string{"u"}, Type: ProbeTypeUprobe},
	{Name: "uretprobe", Aliases: []string{"ur"}, Type: ProbeTypeUretprobe},
	{Name: "usdt", Aliases: []string{"U"}, Type: ProbeTypeUSDT},
	{Name: "tracepoint", Aliases: []string{"t"}, Type: ProbeTypeTracepoint},
	{Name: "profile", Aliases: []string{"p"}, Type: ProbeTypeProfile},
	{Name: "interval", Aliases: []string{"i"}, Type: ProbeTypeInterval},
	{Name: "software", Aliases: []string{"s"}, Type: ProbeTypeSoftware},
	{Name: "hardware", Aliases: []string{"h"}, Type: ProbeTypeHardware},
	{Name: "watchpoint", Aliases: []string{"w"}, Type: ProbeTypeWatchpoint},
	{Name: "asyncwatchpoint", Aliases: []string{"aw"}, Type: ProbeTypeAsyncWatchpoint},
	{Name: "fentry", Aliases: []string{"f", "kfunc"}, Type: ProbeTypeFentry},
	{Name: "fexit", Aliases: []string{"fr", "kretfunc"}, Type: ProbeTypeFexit},
	{Name: "iter", Aliases: []string{"it"}, Type: ProbeTypeIter},
	{Name: "rawtracepoint", Aliases: []string{"rt"}, Type: ProbeTypeRawTracepoint},
}

var probeTypeByName = func() map[string]ProbeType {
	m := make(map[string]ProbeType)
	for _, item := range ProbeList {
		m[item.Name] = item.Type
		for _, alias := range item.Aliases {
			m[alias] = item.Type
		}
	}
	return m
}()

// ProbeTypeOf 按 provider 名字或缩写分类，未知名字返回 ProbeTypeInvalid
func ProbeTypeOf(provider string) ProbeType {
	if t, ok := probeTypeByName[provider]; ok {
		return t
	}
	return ProbeTypeInvalid
}

// ExpandProviderName 把缩写展开为完整的 provider 名字
func ExpandProviderName(provider string) string {
	for _, item := range ProbeList {
		if item.Name == provider {
			return provider
		}
		for _, alias := range item.Aliases {
			if alias == provider {
				return item.Name
			}
		}
	}
	return provider
}

func (t ProbeType) String() string {
	switch t {
	case ProbeTypeInvalid:
		return "invalid"
	case ProbeTypeSpecial:
		return "special"
	}
	for _, item := range ProbeList {
		if item.Type == t {
			return item.Name
		}
	}
	return fmt.Sprintf("ProbeType(%d)", int(t))
}
