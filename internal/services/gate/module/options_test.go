package module

import (
	"testing"
	"time"

	"gatehouse/internal/platform/config"
)

func TestFromConfig_Defaults(t *testing.T) {
	o := FromConfig(config.New())
	if o.UserAgent != "gatehouse" {
		t.Fatalf("UserAgent = %q", o.UserAgent)
	}
	if o.Timeout != 10*time.Second || o.MaxRetries != 3 || o.RetryBase != 500*time.Millisecond {
		t.Fatalf("retry defaults: %+v", o)
	}
	if o.BaseURL != "" || o.TokensCSV != "" {
		t.Fatalf("expected empty endpoint defaults: %+v", o)
	}
}

func TestFromConfig_Env(t *testing.T) {
	t.Setenv("GATE_GH_TOKENS", "tok-a,tok-b")
	t.Setenv("GATE_GH_BASE_URL", "https://ghe.internal/api/v3")
	t.Setenv("GATE_GH_TIMEOUT", "3s")
	t.Setenv("GATE_GH_MAX_RETRIES", "5")

	o := FromConfig(config.New())
	if o.TokensCSV != "tok-a,tok-b" || o.BaseURL != "https://ghe.internal/api/v3" {
		t.Fatalf("endpoint config: %+v", o)
	}
	if o.Timeout != 3*time.Second || o.MaxRetries != 5 {
		t.Fatalf("retry config: %+v", o)
	}
}

func TestNew_WiresServiceAndRoutes(t *testing.T) {
	m := New(Deps{}, Options{TokensCSV: "tok"})
	if m.Service() == nil {
		t.Fatalf("service not constructed")
	}
}
