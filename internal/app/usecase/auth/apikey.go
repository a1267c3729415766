package auth

import (
	"strings"

	"go.uber.org/zap"
)

const (
	MsgKeyRequired = "API key is required"
	MsgKeyInvalid  = "invalid API key"
)

// KeyValidator checks a caller-supplied shared secret against the configured
// allow-list. It fails closed: no key or no configured keys means no access.
type KeyValidator struct {
	keys map[string]struct{}
}

// New builds a validator from a comma separated key list.
func New(rawKeys string) KeyValidator {
	keys := make(map[string]struct{})
	for _, key := range strings.Split(rawKeys, ",") {
		key = strings.TrimSpace(key)
		if key != "" {
			keys[key] = struct{}{}
		}
	}

	return KeyValidator{keys: keys}
}

func (v KeyValidator) Validate(key string) bool {
	if strings.TrimSpace(key) == "" {
		zap.L().Warn("api key validation failed: empty key")
		return false
	}

	if len(v.keys) == 0 {
		zap.L().Error("no valid api keys configured")
		return false
	}

	if _, ok := v.keys[key]; !ok {
		zap.L().Warn("api key validation failed: unknown key")
		return false
	}

	return true
}

// Explain returns a caller-safe failure reason. It never echoes the
// configured key set.
func (v KeyValidator) Explain(key string) string {
	if strings.TrimSpace(key) == "" {
		return MsgKeyRequired
	}

	return MsgKeyInvalid
}
