package constant

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyOperationID contextKey = "operation_id"
)

const (
	// DateFormat is the on-disk layout of reservation dates.
	DateFormat = "2006-01-02"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelCommandScopeName    = "command"

	OtelDocumentAttributeKey = "store.document"
	OtelEntityIDAttributeKey = "entity.id"
)

const (
	OtelExporterNone   = "none"
	OtelExporterStdout = "stdout"
	OtelExporterOTLP   = "otlp"
)

const (
	OutputFormatYAML = "yaml"
	OutputFormatJSON = "json"
)

// EmptyDocument is the canonical content of a store with no records.
const EmptyDocument = "{}"

const DocumentIndent = "  "

const (
	Empty = ""
)
