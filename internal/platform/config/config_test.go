package config

import (
	"testing"
	"time"

	"gatehouse/internal/platform/testkit"
)

func TestPrefixComposes(t *testing.T) {
	t.Setenv("GATE_GH_UA", "gatehouse")
	c := New().Prefix("GATE_").Prefix("GH_")
	if got := c.MayString("UA", ""); got != "gatehouse" {
		t.Fatalf("got %q", got)
	}
}

func TestMustString(t *testing.T) {
	t.Setenv("API_ADDR", ":4000")
	if got := New().Prefix("API_").MustString("ADDR"); got != ":4000" {
		t.Fatalf("got %q", got)
	}
	testkit.MustPanic(t, func() { New().MustString("DEFINITELY_NOT_SET_12345") })
}

func TestMustPort(t *testing.T) {
	t.Setenv("API_PORT", "4000")
	if got := New().Prefix("API_").MustPort("PORT"); got != ":4000" {
		t.Fatalf("got %q", got)
	}
	t.Setenv("API_PORT", "99999")
	testkit.MustPanic(t, func() { New().Prefix("API_").MustPort("PORT") })
}

func TestRequire(t *testing.T) {
	t.Setenv("GATE_GH_TOKENS", "a,b")
	testkit.MustNotPanic(t, func() { New().Prefix("GATE_").Require("GH_TOKENS") })
	testkit.MustPanic(t, func() { New().Prefix("GATE_").Require("GH_TOKENS", "NOT_SET_12345") })
}

func TestMayHelpers(t *testing.T) {
	t.Setenv("T_STR", "  value  ")
	t.Setenv("T_INT", "42")
	t.Setenv("T_INT_BAD", "forty-two")
	t.Setenv("T_BOOL", "true")
	t.Setenv("T_BOOL_BAD", "yep")
	t.Setenv("T_DUR", "2s")
	t.Setenv("T_DUR_BAD", "fortnight")
	t.Setenv("T_CSV", "a, b ,,c")

	c := New().Prefix("T_")
	if c.MayString("STR", "d") != "value" {
		t.Fatalf("MayString trims")
	}
	if c.MayString("MISSING", "d") != "d" {
		t.Fatalf("MayString default")
	}
	if c.MayInt("INT", 7) != 42 || c.MayInt("INT_BAD", 7) != 7 || c.MayInt("MISSING", 7) != 7 {
		t.Fatalf("MayInt")
	}
	if !c.MayBool("BOOL", false) || c.MayBool("BOOL_BAD", false) || c.MayBool("MISSING", true) != true {
		t.Fatalf("MayBool")
	}
	if c.MayDuration("DUR", time.Minute) != 2*time.Second || c.MayDuration("DUR_BAD", time.Minute) != time.Minute {
		t.Fatalf("MayDuration")
	}
	csv := c.MayCSV("CSV", nil)
	if len(csv) != 3 || csv[0] != "a" || csv[1] != "b" || csv[2] != "c" {
		t.Fatalf("MayCSV = %v", csv)
	}
	def := []string{"*"}
	if got := c.MayCSV("MISSING", def); len(got) != 1 || got[0] != "*" {
		t.Fatalf("MayCSV default = %v", got)
	}
}
