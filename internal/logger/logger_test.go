package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestInit(t *testing.T) {
	defer Reset()

	var buf bytes.Buffer
	Init(Options{
		Verbose: true,
		Output:  &buf,
	})

	Debug("test message", "key", "value")

	output := buf.String()
	if !strings.Contains(output, "test message") {
		t.Errorf("expected output to contain 'test message', got: %s", output)
	}
	if !strings.Contains(output, "key=value") {
		t.Errorf("expected output to contain 'key=value', got: %s", output)
	}
	if !strings.Contains(output, "app=tramp") {
		t.Errorf("expected output to contain 'app=tramp', got: %s", output)
	}
}

func TestInitOnlyOnce(t *testing.T) {
	defer Reset()

	var buf1, buf2 bytes.Buffer
	Init(Options{Verbose: true, Output: &buf1})
	Init(Options{Verbose: true, Output: &buf2}) // Should be ignored

	Debug("test message")

	if buf1.Len() == 0 {
		t.Error("expected first buffer to have output")
	}
	if buf2.Len() != 0 {
		t.Error("expected second buffer to be empty (Init should only work once)")
	}
}

func TestIsVerbose(t *testing.T) {
	defer Reset()

	if IsVerbose() {
		t.Error("expected IsVerbose to be false before Init")
	}

	Init(Options{Verbose: true})

	if !IsVerbose() {
		t.Error("expected IsVerbose to be true after Init with Verbose: true")
	}
}

func TestLogLevels(t *testing.T) {
	defer Reset()

	var buf bytes.Buffer
	Init(Options{
		Verbose: true,
		Output:  &buf,
	})

	Debug("debug message")
	Info("info message")
	Warn("warn message")

	output := buf.String()

	tests := []struct {
		level string
		msg   string
	}{
		{"DEBUG", "debug message"},
		{"INFO", "info message"},
		{"WARN", "warn message"},
	}

	for _, tt := range tests {
		if !strings.Contains(output, tt.msg) {
			t.Errorf("expected output to contain %q", tt.msg)
		}
		if !strings.Contains(output, "level="+tt.level) {
			t.Errorf("expected output to contain level=%s", tt.level)
		}
	}
}

func TestNonVerboseMode(t *testing.T) {
	defer Reset()

	var buf bytes.Buffer
	Init(Options{
		Verbose: false,
		Output:  &buf,
	})

	Debug("debug message")
	Info("info message")

	if buf.Len() != 0 {
		t.Errorf("expected no output for debug/info in non-verbose mode, got: %s", buf.String())
	}

	Warn("post-hook failed")

	if !strings.Contains(buf.String(), "post-hook failed") {
		t.Error("expected warnings to be logged in non-verbose mode")
	}
}

func TestJSONFormat(t *testing.T) {
	defer Reset()

	var buf bytes.Buffer
	Init(Options{
		Verbose: true,
		Output:  &buf,
		JSON:    true,
	})

	Debug("test message", "key", "value")

	output := buf.String()
	if !strings.Contains(output, `"msg":"test message"`) {
		t.Errorf("expected JSON output with msg field, got: %s", output)
	}
	if !strings.Contains(output, `"key":"value"`) {
		t.Errorf("expected JSON output with key field, got: %s", output)
	}
}

func TestStage(t *testing.T) {
	defer Reset()

	var buf bytes.Buffer
	Init(Options{
		Verbose: true,
		Output:  &buf,
	})

	Stage(StageMatch).Debug("rule matched")

	output := buf.String()
	if !strings.Contains(output, "stage=match") {
		t.Errorf("expected output to contain 'stage=match', got: %s", output)
	}
	if !strings.Contains(output, "app=tramp") {
		t.Errorf("expected output to contain 'app=tramp', got: %s", output)
	}
}

func TestStageBeforeInit(t *testing.T) {
	Reset()

	// must not panic or write anywhere
	Stage(StageHook).Warn("post hook failed")
}

func TestLogBeforeInit(t *testing.T) {
	defer Reset()

	// These should not panic even before Init
	Debug("debug")
	Info("info")
	Warn("warn")
}

func TestReset(t *testing.T) {
	var buf1, buf2 bytes.Buffer

	Init(Options{Verbose: true, Output: &buf1})
	Debug("first")

	Reset()

	Init(Options{Verbose: true, Output: &buf2})
	Debug("second")
	Reset()

	if !strings.Contains(buf1.String(), "first") {
		t.Error("expected first buffer to contain 'first'")
	}
	if !strings.Contains(buf2.String(), "second") {
		t.Error("expected second buffer to contain 'second'")
	}
	if strings.Contains(buf1.String(), "second") {
		t.Error("expected first buffer to NOT contain 'second'")
	}
}
