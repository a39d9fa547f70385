package blueprint

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDocument(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file creates the sample", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "plans", "blueprint.json")

		doc := LoadDocument(ctx, path)
		if doc == nil {
			t.Fatal("expected the sample document")
		}
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("expected the sample file on disk: %v", err)
		}
		if len(doc["Class 11"]) == 0 {
			t.Error("expected Class 11 activities in the sample")
		}
	})

	t.Run("valid document", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "blueprint.json")
		content := `{"Study": [{"name": "Read", "duration": 30, "preferred_time": "morning", "days": ["Mon"], "importance": "high", "depends_on": []}]}`
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}

		doc := LoadDocument(ctx, path)
		if doc == nil {
			t.Fatal("expected a document")
		}
		activities := doc["Study"]
		if len(activities) != 1 {
			t.Fatalf("expected 1 activity, got %d", len(activities))
		}
		a := activities[0]
		if a.Name != "Read" || a.PreferredTime != "morning" || a.Importance != "high" {
			t.Errorf("unexpected activity: %+v", a)
		}
	})

	t.Run("malformed document yields nil", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "blueprint.json")
		if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
			t.Fatal(err)
		}

		if doc := LoadDocument(ctx, path); doc != nil {
			t.Error("expected nil for malformed input")
		}
	})

	t.Run("sample round trips", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "blueprint.json")

		first := LoadDocument(ctx, path)
		second := LoadDocument(ctx, path)
		if len(first) != len(second) {
			t.Errorf("expected identical documents, got %d and %d categories", len(first), len(second))
		}
	})
}
