package i18n

// 消息 ID
const (
	// ========== 内部缺陷 ==========
	BugUnknownProbeType = "bug.unknown_probe_type"
	BugIndexReassigned  = "bug.index_reassigned"

	// ========== 用户错误 ==========
	ErrUnknownProvider = "error.unknown_provider"

	// ========== 警告 ==========
	WarnDeprecatedName = "warning.deprecated_name"

	// ========== 配置 ==========
	ConfigReadFailed   = "config.read_failed"
	ConfigInvalidValue = "config.invalid_value"
	ConfigEnumBits     = "config.enum_bits"
	ConfigLogLevel     = "config.log_level"
	ConfigDeprecated   = "config.deprecated_entry"

	// ========== 命令行 ==========
	CmdRootShort      = "cmd.root_short"
	CmdExpandShort    = "cmd.expand_short"
	CmdTypeShort      = "cmd.type_short"
	CmdNormalizeShort = "cmd.normalize_short"
	CmdVersionShort   = "cmd.version_short"
	CmdDumpShort      = "cmd.dump_short"
	CmdInitShort      = "cmd.init_short"
	InitCreated       = "cmd.init_created"
	InitConfigExists  = "cmd.init_config_exists"
)
