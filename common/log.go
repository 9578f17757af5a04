package common

import (
	"os"
	"sync"

	"github.com/op/go-logging"
)

var (
	logFormat = logging.MustStringFormatter(
		`%{color}%{time:15:04:05.000} %{module} ▶ %{level:.4s}%{color:reset} %{message}`,
	)

	backendOnce sync.Once
)

// GetLogger returns the logger of the given module.
func GetLogger(module string) *logging.Logger {
	backendOnce.Do(func() { setBackend("INFO") })
	return logging.MustGetLogger(module)
}

// InitLogger installs the stderr backend with the given level for all modules.
// An unknown level falls back to INFO.
func InitLogger(level string) {
	backendOnce.Do(func() {})
	setBackend(level)
}

func setBackend(level string) {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, logFormat)
	leveled := logging.AddModuleLevel(formatted)

	lvl, err := logging.LogLevel(level)
	if err != nil {
		lvl = logging.INFO
	}
	leveled.SetLevel(lvl, "")
	logging.SetBackend(leveled)
}
