package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggersUsableWithoutInit(t *testing.T) {
	if InfoLogger == nil || ErrorLogger == nil {
		t.Fatal("package-level loggers must be non-nil before Init()")
	}

	var buf bytes.Buffer
	old := ErrorLogger.Writer()
	ErrorLogger.SetOutput(&buf)
	defer ErrorLogger.SetOutput(old)

	ErrorLogger.Println("boom")
	if !strings.Contains(buf.String(), "boom") {
		t.Fatalf("ErrorLogger output = %q, want it to contain %q", buf.String(), "boom")
	}
}

func TestInitResetsLoggers(t *testing.T) {
	var buf bytes.Buffer
	InfoLogger.SetOutput(&buf)

	Init()
	if InfoLogger == nil || ErrorLogger == nil {
		t.Fatal("Init() must leave both loggers non-nil")
	}
	InfoLogger.Println("after init")
	if strings.Contains(buf.String(), "after init") {
		t.Fatal("Init() should have replaced the redirected writer")
	}
}
