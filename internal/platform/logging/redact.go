package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists the lowercase HTTP header names whose values never
// reach a log record. The request logging middleware consults the same set.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
}

// sensitiveFields are attribute keys redacted regardless of value.
var sensitiveFields = []string{"password", "secret", "token", "dsn"}

// sensitivePrefixes catch variants such as "secret_key" or "api_key_v2".
var sensitivePrefixes = []string{"secret_", "api_key"}

// sensitiveValues catch secrets that show up inside otherwise harmless
// attributes, most often an error string that embeds a storage DSN.
var sensitiveValues = []*regexp.Regexp{
	// Bearer tokens.
	regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`),
	// JWTs; segments of 10+ chars so version strings do not match.
	regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`),
	// api_key=... and apikey: ...
	regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`),
	// scheme://user:password@ as in postgres DSNs.
	regexp.MustCompile(`(?i)[a-z][a-z0-9+.\-]*://[^:/@\s]+:[^@\s]+@`),
}

// newRedactAttr builds the slog.HandlerOptions.ReplaceAttr hook.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0,
		len(SensitiveHeaders)+len(sensitiveFields)+len(sensitivePrefixes)+len(sensitiveValues))

	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, prefix := range sensitivePrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	for _, re := range sensitiveValues {
		opts = append(opts, masq.WithRegex(re))
	}

	return masq.New(opts...)
}
