package mlog

// Noop is a Logger that discards everything. Used by tests that don't care
// about log output but need something to satisfy the interface.
type Noop struct{}

func (Noop) Debug(args ...any)                 {}
func (Noop) Info(args ...any)                  {}
func (Noop) Warn(args ...any)                  {}
func (Noop) Error(args ...any)                 {}
func (Noop) Fatal(args ...any)                 {}
func (Noop) Debugf(format string, args ...any) {}
func (Noop) Infof(format string, args ...any)  {}
func (Noop) Warnf(format string, args ...any)  {}
func (Noop) Errorf(format string, args ...any) {}
func (Noop) Fatalf(format string, args ...any) {}
func (Noop) Sync() error                       { return nil }
func (Noop) WithFields(kv ...any) Logger       { return Noop{} }
