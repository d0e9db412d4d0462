package gasket

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestDiscard_Enabled(t *testing.T) {
	h := discard{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("discard.Enabled(%v) = true, want false", level)
		}
	}
}

func TestDiscard_WithAttrs(t *testing.T) {
	h := discard{}
	if _, ok := h.WithAttrs([]slog.Attr{slog.String("key", "val")}).(discard); !ok {
		t.Error("discard.WithAttrs() did not return discard")
	}
	if _, ok := h.WithGroup("group").(discard); !ok {
		t.Error("discard.WithGroup() did not return discard")
	}
}

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger should not be enabled for %v", level)
		}
	}
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	p, err := New(scenarioSeed())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Steps(100); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{
		"gasket: packing created",
		"gasket: step",
		"stats.accepted=2",
		"gasket: packing complete",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestSetLoggerStepAborted(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	p, err := New(zeroRootTriplet())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Step(); err == nil {
		t.Fatal("expected Step to fail")
	}
	if !strings.Contains(buf.String(), "level=WARN") || !strings.Contains(buf.String(), "step aborted") {
		t.Errorf("missing warning:\n%s", buf.String())
	}
}

func TestSetLoggerNilRestoresSilent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(slog.Default())
	SetLogger(nil)

	l := Logger()
	if l == nil {
		t.Fatal("SetLogger(nil) should set nop logger, not nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should produce a disabled logger")
	}
	if l != silent {
		t.Error("SetLogger(nil) did not restore the shared silent logger")
	}
}

func TestLoggerConcurrentAccess(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var wg sync.WaitGroup
	const goroutines = 100

	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l := Logger()
			if l == nil {
				t.Error("Logger() returned nil during concurrent access")
			}
			l.Debug("concurrent read")
		}()
	}
	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			SetLogger(slog.Default())
			SetLogger(nil)
		}()
	}

	wg.Wait()
}

func BenchmarkLoggerDisabledLog(b *testing.B) {
	l := Logger()
	b.ReportAllocs()
	for b.Loop() {
		l.Debug("message", "key", "value")
	}
}
