package log

// ZapConfig configures the zap-backed Logger.
type ZapConfig struct {
	Level        string // debug | info | warn | error
	Mode         string // debug | production
	Encoding     string // console | json
	ColorEnabled bool
	Stderr       bool // write to stderr, for processes that own stdout
}

type ctxKey string

// RequestIDKey is the context key under which the HTTP middleware stores the request id.
const RequestIDKey ctxKey = "request_id"

const (
	ModeProduction = "production"
	EncodingJSON   = "json"
)
