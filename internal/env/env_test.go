package env

import "testing"

func TestGetString(t *testing.T) {
	t.Setenv("RS_TEST_STRING", "hello")

	if got := GetString("RS_TEST_STRING", "fallback"); got != "hello" {
		t.Errorf("GetString = %q, want hello", got)
	}
	if got := GetString("RS_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("GetString fallback = %q, want fallback", got)
	}
}

func TestGetInt(t *testing.T) {
	t.Setenv("RS_TEST_INT", "42")
	t.Setenv("RS_TEST_BAD_INT", "forty-two")

	if got := GetInt("RS_TEST_INT", 7); got != 42 {
		t.Errorf("GetInt = %d, want 42", got)
	}
	if got := GetInt("RS_TEST_BAD_INT", 7); got != 7 {
		t.Errorf("GetInt with junk value = %d, want fallback 7", got)
	}
}

func TestGetBool(t *testing.T) {
	t.Setenv("RS_TEST_BOOL", "true")

	if !GetBool("RS_TEST_BOOL", false) {
		t.Error("GetBool = false, want true")
	}
	if GetBool("RS_TEST_MISSING", false) {
		t.Error("GetBool fallback = true, want false")
	}
}
