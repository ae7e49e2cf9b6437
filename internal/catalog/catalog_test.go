package catalog

import "testing"

func TestList(t *testing.T) {
	entries, err := List()
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("expected catalog entries")
	}
	for _, e := range entries {
		if e.ID == "" || e.Name == "" || e.Brief == "" {
			t.Errorf("entry %q missing fields: %+v", e.ID, e)
		}
	}
}

func TestFind(t *testing.T) {
	e, err := Find("carport-6x3")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if e.Name == "" {
		t.Error("expected a name")
	}

	if _, err := Find("nope"); err == nil {
		t.Error("expected an error for unknown entry")
	}
}
