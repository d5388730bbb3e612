package version

import "testing"

func TestOnlyNumbers(t *testing.T) {
	v := Version
	t.Cleanup(func() { Version = v })

	Version = "v1.2.3-HEAD"
	if got := OnlyNumbers(); got != "1.2.3" {
		t.Fatalf("expected 1.2.3, got %q", got)
	}
}
