package ports

// Logger is the structured logger every service receives. Arguments follow
// log/slog conventions: alternating keys and values, or slog.Attr.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
}
