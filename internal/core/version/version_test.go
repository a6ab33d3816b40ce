package version

import "testing"

func TestInfo(t *testing.T) {
	b := Info("jbatoolkit-api")
	if b.Service != "jbatoolkit-api" || b.Version != "dev" {
		t.Fatalf("Info = %+v", b)
	}
	if got := b.String(); got != "jbatoolkit-api dev (none, unknown)" {
		t.Fatalf("String = %q", got)
	}
}
