package log

// ZapConfig selects the zap preset and encoder for Init.
type ZapConfig struct {
	Level        string // debug, info, warn, error
	Mode         string // debug or production
	Encoding     string // console or json
	ColorEnabled bool
}

const (
	ModeProduction = "production"
	ModeDebug      = "debug"

	EncodingConsole = "console"
	EncodingJSON    = "json"
)

type ctxKey string

// RequestIDKey is the context key whose value, when set, is attached to every log line.
const RequestIDKey ctxKey = "request_id"
