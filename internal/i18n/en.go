package i18n

var messagesEN = map[string]string{
	// ========== Internal ==========
	BugUnknownProbeType: "unknown probe type for provider '%s' reached attach point expansion",
	BugIndexReassigned:  "index already assigned to %s",

	// ========== Errors ==========
	ErrUnknownProvider: "unknown probe type '%s'",

	// ========== Warnings ==========
	WarnDeprecatedName: "'%s' is deprecated and will be removed in the future; use '%s' instead",

	// ========== Config ==========
	ConfigReadFailed:   "failed to read config file: %s",
	ConfigInvalidValue: "invalid value for %s: %v",
	ConfigEnumBits:     "enum_bits must be one of 8, 16, 32 or 64, got %d",
	ConfigLogLevel:     "unknown log level '%s'",
	ConfigDeprecated:   "deprecated entry #%d must name an old identifier",

	// ========== CLI ==========
	CmdRootShort:      "Inspect the tracy attach point and type model",
	CmdExpandShort:    "Expand an attach point template against resolved matches",
	CmdTypeShort:      "Build the type descriptor of an identifier",
	CmdNormalizeShort: "Rewrite deprecated builtin and function names",
	CmdVersionShort:   "Print version information",
	CmdDumpShort:      "Print the expanded program tree or its document symbols",
	CmdInitShort:      "Create a default tracy.toml",
	InitCreated:       "created %s",
	InitConfigExists:  "%s already exists",
}
