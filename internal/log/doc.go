// Package log builds the logrus loggers used by textstat.
//
// Every component takes a *logrus.Entry carrying a "component" field and
// treats a nil entry as "discard". The CLI creates one Logger at startup:
//
//	logger, err := log.New(os.Stderr, cfg.LogLevel, verbose)
//	loader := config.Loader{Config: cfg, Logger: log.Component(logger, "engine")}
//	engine, err := loader.Load()
//
// Output uses logrus' text formatter with full timestamps. Verbose mode
// forces the debug level regardless of the configured one.
package log
