package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"

	"gatehouse/internal/platform/testkit"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"debug":   zerolog.DebugLevel,
		"info":    zerolog.InfoLevel,
		"warn":    zerolog.WarnLevel,
		"WARNING": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"fatal":   zerolog.FatalLevel,
		"panic":   zerolog.PanicLevel,
		"":        zerolog.InfoLevel,
		"bogus":   zerolog.InfoLevel,
		" Debug ": zerolog.DebugLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_SERVICE", "gatehouse")
	t.Setenv("LOG_CALLER", "1")

	o := FromEnv()
	if o.Level != "debug" || o.Format != "json" || o.Service != "gatehouse" || !o.WithCaller {
		t.Fatalf("opts = %+v", o)
	}
}

// swapRoot points the process logger at a buffer for one test
func swapRoot(t *testing.T) *bytes.Buffer {
	t.Helper()
	testkit.Serial(t)
	prev := Get()
	var buf bytes.Buffer
	l := zerolog.New(&buf)
	root.Store(&l)
	t.Cleanup(func() { root.Store(prev) })
	return &buf
}

func TestNamedAddsComponent(t *testing.T) {
	buf := swapRoot(t)

	Named("gate").Info().Msg("hello")
	testkit.MustContain(t, buf.String(), `"component":"gate"`)
	testkit.MustContain(t, buf.String(), `"message":"hello"`)
}

func TestC_EnrichesFromContext(t *testing.T) {
	buf := swapRoot(t)

	ctx := WithCheck(context.Background(), "req-123", "human-user")
	C(ctx).Info().Msg("check")
	out := buf.String()
	testkit.MustContain(t, out, `"request_id":"req-123"`)
	testkit.MustContain(t, out, `"actor":"human-user"`)

	// empty values never annotate
	buf.Reset()
	C(WithCheck(context.Background(), "", "")).Info().Msg("bare")
	if bytes.Contains(buf.Bytes(), []byte("request_id")) {
		t.Fatalf("unexpected request_id in %q", buf.String())
	}
}
