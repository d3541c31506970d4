package i

// Logger is the minimal logging contract used across the application.
type Logger interface {
	Info(string)
	Warning(string)
	Error(string)
}
