package core

// Logger receives progress output from long-running renders. The default
// implementation writes to stdout; servers substitute their own.
type Logger interface {
	Printf(format string, args ...interface{})
}
