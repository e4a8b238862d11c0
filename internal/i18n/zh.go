package i18n

var messagesZH = map[string]string{
	// ========== 内部缺陷 ==========
	BugUnknownProbeType: "附加点展开时遇到无法识别的探针类型，provider 为 '%s'",
	BugIndexReassigned:  "%s 的索引已经分配过",

	// ========== 用户错误 ==========
	ErrUnknownProvider: "无法识别的探针类型 '%s'",

	// ========== 警告 ==========
	WarnDeprecatedName: "'%s' 已废弃，将来会被移除；请改用 '%s'",

	// ========== 配置 ==========
	ConfigReadFailed:   "读取配置文件失败: %s",
	ConfigInvalidValue: "%s 的取值非法: %v",
	ConfigEnumBits:     "enum_bits 只能是 8、16、32 或 64，实际为 %d",
	ConfigLogLevel:     "未知的日志级别 '%s'",
	ConfigDeprecated:   "第 %d 个 deprecated 条目缺少 old 标识符",

	// ========== 命令行 ==========
	CmdRootShort:      "查看 tracy 的附加点与类型模型",
	CmdExpandShort:    "用解析好的匹配结果展开附加点模板",
	CmdTypeShort:      "根据标识符构建类型描述符",
	CmdNormalizeShort: "改写已废弃的内建变量与函数名",
	CmdVersionShort:   "打印版本信息",
	CmdDumpShort:      "打印展开后的程序树或文档符号",
	CmdInitShort:      "生成默认的 tracy.toml",
	InitCreated:       "已创建 %s",
	InitConfigExists:  "%s 已存在",
}
