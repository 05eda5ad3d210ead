package utils

import (
    "os"
    "path/filepath"
    "strings"

    "go.uber.org/zap"
    "go.uber.org/zap/zapcore"
)

var logger *zap.Logger

func logLevel() zapcore.Level {
    switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
    case "debug":
        return zapcore.DebugLevel
    case "warn":
        return zapcore.WarnLevel
    case "error":
        return zapcore.ErrorLevel
    default:
        return zapcore.InfoLevel
    }
}

func Logger() *zap.Logger {
    if logger != nil { return logger }
    lvl := logLevel()
    logFile := os.Getenv("LOG_FILE")
    if logFile == "" {
        cfg := zap.NewProductionConfig()
        cfg.Level = zap.NewAtomicLevelAt(lvl)
        l, _ := cfg.Build()
        logger = l
        return logger
    }
    _ = os.MkdirAll(filepath.Dir(logFile), 0o755)
    f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
    if err != nil {
        cfg := zap.NewProductionConfig()
        cfg.Level = zap.NewAtomicLevelAt(lvl)
        l, _ := cfg.Build()
        logger = l
        return logger
    }
    encCfg := zap.NewProductionEncoderConfig()
    enc := zapcore.NewJSONEncoder(encCfg)
    fileCore := zapcore.NewCore(enc, zapcore.AddSync(f), lvl)
    consoleCore := zapcore.NewCore(enc, zapcore.AddSync(os.Stdout), lvl)
    logger = zap.New(zapcore.NewTee(fileCore, consoleCore))
    return logger
}
