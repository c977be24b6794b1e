package logger

// NewStub returns a logger that drops everything. Library entry points
// use it when no logger option is given.
func NewStub() Logger {
	return stubLogger{}
}

type stubLogger struct{}

func (s stubLogger) With(label string) Logger { return s }

func (stubLogger) Debugf(format string, args ...any) {}
func (stubLogger) Infof(format string, args ...any)  {}
func (stubLogger) Warnf(format string, args ...any)  {}
func (stubLogger) Errorf(format string, args ...any) {}
func (stubLogger) Panicf(format string, args ...any) {}

func (stubLogger) Debug(err error) {}
func (stubLogger) Info(err error)  {}
func (stubLogger) Warn(err error)  {}
func (stubLogger) Error(err error) {}
func (stubLogger) Panic(err error) {}
