package config

import (
	"io"
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// InitLogger sends the standard logger to stdout and, when LOG_FILE is set,
// to a rotating file as well.
func InitLogger(cfg *Config) io.Writer {
	writers := []io.Writer{os.Stdout}

	if cfg.LogFile != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    cfg.LogMaxSize,
			MaxBackups: cfg.LogMaxBackups,
			MaxAge:     cfg.LogMaxAge,
		})
	}

	out := io.MultiWriter(writers...)
	log.SetOutput(out)
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	return out
}
