package server

import (
	"testing"
	"time"
)

func TestWebLogger_BasicLogging(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 10)
	logger := NewWebLogger("test-render-123", messageChan)

	logger.Printf("Rendering started\n")

	select {
	case msg := <-messageChan:
		if msg.Message != "Rendering started\n" {
			t.Errorf("Expected message 'Rendering started\\n', got '%s'", msg.Message)
		}
		if msg.RenderID != "test-render-123" {
			t.Errorf("Expected render ID 'test-render-123', got '%s'", msg.RenderID)
		}
		if msg.Level != "info" {
			t.Errorf("Expected level 'info', got '%s'", msg.Level)
		}
		if time.Since(msg.Timestamp) > time.Second {
			t.Errorf("Timestamp seems too old: %v", msg.Timestamp)
		}
	case <-time.After(100 * time.Millisecond):
		t.Error("Timeout waiting for console message")
	}
}

func TestWebLogger_FormattedMessages(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 10)
	logger := NewWebLogger("test-render-format", messageChan)

	logger.Printf("Rendering %dx%d with %d workers...\n", 400, 400, 8)

	select {
	case msg := <-messageChan:
		expected := "Rendering 400x400 with 8 workers...\n"
		if msg.Message != expected {
			t.Errorf("Expected formatted message '%s', got '%s'", expected, msg.Message)
		}
	case <-time.After(100 * time.Millisecond):
		t.Error("Timeout waiting for formatted message")
	}
}

func TestWebLogger_ChannelFull(t *testing.T) {
	// A full channel must never block the render that is logging
	messageChan := make(chan ConsoleMessage, 1)
	logger := NewWebLogger("test-render-789", messageChan)

	logger.Printf("Message 1\n")
	logger.Printf("Message 2\n")
	logger.Printf("Message 3\n")

	// Only the first message fits; the rest drop silently
	select {
	case msg := <-messageChan:
		if msg.Message != "Message 1\n" {
			t.Errorf("Expected the first message to survive, got '%s'", msg.Message)
		}
	case <-time.After(100 * time.Millisecond):
		t.Error("Timeout waiting for first message")
	}

	select {
	case msg := <-messageChan:
		t.Errorf("Expected overflow messages to drop, got '%s'", msg.Message)
	default:
	}
}

func TestWebLogger_NilChannel(t *testing.T) {
	// A logger without a console channel only writes to stdout
	logger := NewWebLogger("test-render-nil", nil)
	logger.Printf("Test message with nil channel\n")
}
