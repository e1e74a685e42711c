package envutil

import (
	"testing"
	"time"
)

func TestString(t *testing.T) {
	t.Setenv("ERP_TEST_STR", "  value ")
	if got := String("ERP_TEST_STR", "def"); got != "value" {
		t.Fatalf("String: got=%q", got)
	}
	t.Setenv("ERP_TEST_STR", "   ")
	if got := String("ERP_TEST_STR", "def"); got != "def" {
		t.Fatalf("String blank: got=%q", got)
	}
	if got := String("ERP_TEST_STR_MISSING", "def"); got != "def" {
		t.Fatalf("String missing: got=%q", got)
	}
}

func TestInt(t *testing.T) {
	t.Setenv("ERP_TEST_INT", "42")
	if got := Int("ERP_TEST_INT", 1); got != 42 {
		t.Fatalf("Int: got=%d", got)
	}
	t.Setenv("ERP_TEST_INT", "forty-two")
	if got := Int("ERP_TEST_INT", 1); got != 1 {
		t.Fatalf("Int invalid: got=%d", got)
	}
}

func TestBool(t *testing.T) {
	cases := map[string]bool{"1": true, "TRUE": true, "on": true, "0": false, "off": false}
	for raw, want := range cases {
		t.Setenv("ERP_TEST_BOOL", raw)
		if got := Bool("ERP_TEST_BOOL", !want); got != want {
			t.Fatalf("Bool(%q): got=%v want=%v", raw, got, want)
		}
	}
	t.Setenv("ERP_TEST_BOOL", "maybe")
	if got := Bool("ERP_TEST_BOOL", true); got != true {
		t.Fatalf("Bool fallback: got=%v", got)
	}
}

func TestSeconds(t *testing.T) {
	t.Setenv("ERP_TEST_SECS", "15")
	if got := Seconds("ERP_TEST_SECS", time.Second); got != 15*time.Second {
		t.Fatalf("Seconds: got=%s", got)
	}
	t.Setenv("ERP_TEST_SECS", "-3")
	if got := Seconds("ERP_TEST_SECS", time.Second); got != time.Second {
		t.Fatalf("Seconds negative: got=%s", got)
	}
}

func TestList(t *testing.T) {
	t.Setenv("ERP_TEST_LIST", "a, b,,c ")
	got := List("ERP_TEST_LIST", nil)
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("List: got=%v", got)
	}
}

func TestParseFloat(t *testing.T) {
	if got := ParseFloat(" 0.25 ", 1); got != 0.25 {
		t.Fatalf("ParseFloat: got=%v", got)
	}
	if got := ParseFloat("x", 1); got != 1 {
		t.Fatalf("ParseFloat invalid: got=%v", got)
	}
}
