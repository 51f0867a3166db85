package tlog

// TestingPrinter часть *testing.T нужная для вывода ошибок.
type TestingPrinter interface {
	Helper()
	Log(a ...any)
	Logf(format string, a ...any)
	Error(a ...any)
	Errorf(format string, a ...any)
}
