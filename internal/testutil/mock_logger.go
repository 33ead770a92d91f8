// Package testutil provides common test utilities for MedText-Intelligence.
package testutil

import (
	"sync"

	"github.com/turtacn/MedText-Intelligence/internal/infrastructure/monitoring/logging"
)

// MockLogger implements logging.Logger for testing purposes. It records log
// entries so tests can assert on logging behavior.
type MockLogger struct {
	mu       sync.Mutex
	Messages []LogMessage
}

// LogMessage is a single entry captured by MockLogger.
type LogMessage struct {
	Level   string
	Message string
	Fields  []logging.Field
}

// NewMockLogger creates a new MockLogger instance.
func NewMockLogger() *MockLogger {
	return &MockLogger{Messages: make([]LogMessage, 0)}
}

func (m *MockLogger) log(level, msg string, fields []logging.Field) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Messages = append(m.Messages, LogMessage{Level: level, Message: msg, Fields: fields})
}

func (m *MockLogger) Debug(msg string, fields ...logging.Field) { m.log("debug", msg, fields) }
func (m *MockLogger) Info(msg string, fields ...logging.Field)  { m.log("info", msg, fields) }
func (m *MockLogger) Warn(msg string, fields ...logging.Field)  { m.log("warn", msg, fields) }
func (m *MockLogger) Error(msg string, fields ...logging.Field) { m.log("error", msg, fields) }
func (m *MockLogger) Fatal(msg string, fields ...logging.Field) { m.log("fatal", msg, fields) }

// With returns the receiver; the fields are not folded into recorded
// entries, tests assert on the per-call fields instead.
func (m *MockLogger) With(fields ...logging.Field) logging.Logger { return m }

// Named returns the receiver; name hierarchies are not recorded.
func (m *MockLogger) Named(name string) logging.Logger { return m }

// GetMessages returns a copy of all logged messages.
func (m *MockLogger) GetMessages() []LogMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]LogMessage, len(m.Messages))
	copy(result, m.Messages)
	return result
}

// Clear removes all logged messages.
func (m *MockLogger) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Messages = m.Messages[:0]
}

// HasMessage checks if a message with the given level and content was logged.
func (m *MockLogger) HasMessage(level, msg string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, logged := range m.Messages {
		if logged.Level == level && logged.Message == msg {
			return true
		}
	}
	return false
}

//Personal.AI order the ending
