package formatter

import "testing"

func TestEscapeMarkdownV2(t *testing.T) {
	got := EscapeMarkdownV2("mock_user_1 (v2.0)!")
	want := `mock\_user\_1 \(v2\.0\)\!`
	if got != want {
		t.Errorf("EscapeMarkdownV2() = %q, want %q", got, want)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate(short) = %q", got)
	}
	if got := Truncate("motorcycles everywhere", 10); got != "motorcy..." {
		t.Errorf("Truncate(long) = %q", got)
	}
}
