package argparse

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerTracesRegistrationAndParsing(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	p := New().Logger(logger)
	p.Category("General")
	p.Flag(Both('a', "opt-a"), "A1")
	p.Flag(Short('a'), "A2")
	p.Flag(Long("opt-a"), "A3")

	if err := p.Parse([]string{"prog", "--nope"}); err == nil {
		t.Fatal("Expected an error for an unknown option")
	}

	out := buf.String()
	for _, want := range []string{
		`msg="registered category" label=General`,
		`msg="registered option" kind=flag name="-a, --opt-a"`,
		`msg="shadowed short name" name=-a kept=--opt-a`,
		`msg="removed shadowed option" name=--opt-a`,
		`msg="parse failed" error=unknown_option option=--nope position=1`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected log output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestLoggerSuccessAndNil(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	p := New().Logger(logger)
	if err := p.Parse([]string{"prog", "a", "b"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !strings.Contains(buf.String(), `msg="parsed arguments" program=prog args=2`) {
		t.Errorf("Expected success trace, got:\n%s", buf.String())
	}

	// A nil logger falls back to discarding
	p = New().Logger(nil)
	p.Flag(Short('a'), "A")
	if err := p.Parse([]string{"prog", "-a"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
}
