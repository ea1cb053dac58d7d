package main

import (
	"log"
)

type Logger interface {
	Log(format string, args ...any)
}

type moduleLogger struct {
	logger *log.Logger
}

func (m *moduleLogger) Log(format string, args ...any) {
	m.logger.Printf("      "+format, args...)
}

// prefixLogger wraps a logger with a fixed prefix such as a worker or
// transaction id.
type prefixLogger struct {
	prefix string
	base   Logger
}

func (p *prefixLogger) Log(format string, args ...any) {
	p.base.Log("[%s] "+format, append([]any{p.prefix}, args...)...)
}

type noopLogger struct{}

func (noopLogger) Log(string, ...any) {}
