package blueprint

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/mentora-app/mentora-backend/internal/config"
)

// Activity is one desired recurring piece of work inside a blueprint
// document. Duration and DependsOn are parsed but informational: slots are
// fixed-length and dependency ordering is not enforced by the generator.
type Activity struct {
	Name          string   `json:"name"`
	Duration      int      `json:"duration"`
	PreferredTime string   `json:"preferred_time"`
	Days          []string `json:"days"`
	Importance    string   `json:"importance"`
	DependsOn     []string `json:"depends_on"`
}

// Document maps a category name to its desired activities.
type Document map[string][]Activity

// LoadDocument reads the blueprint document at path. A missing file is
// replaced with the sample document so first runs always have input. A
// malformed file returns nil; the caller treats that as "nothing to import".
func LoadDocument(ctx context.Context, path string) Document {
	log := config.WithContext(ctx)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.WithField("path", path).Info("Blueprint file not found, creating sample blueprint")
		if err := writeSampleDocument(path); err != nil {
			log.WithError(err).Error("Failed to create sample blueprint")
			return nil
		}
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		log.WithError(err).Error("Failed to read blueprint file")
		return nil
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		log.WithError(err).Error("Failed to parse blueprint file")
		return nil
	}

	log.WithField("path", path).Info("Blueprint document loaded")
	return doc
}

func writeSampleDocument(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	raw, err := json.MarshalIndent(sampleDocument, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

var sampleDocument = Document{
	"Class 11": {
		{Name: "Physics Ch1 - Laws of Motion", Duration: 50, PreferredTime: "morning", Days: []string{"Mon", "Wed", "Fri"}, Importance: "high", DependsOn: []string{}},
		{Name: "Maths - Trigonometry", Duration: 60, PreferredTime: "afternoon", Days: []string{"Tue", "Thu"}, Importance: "medium", DependsOn: []string{}},
		{Name: "Chemistry - Periodic Table", Duration: 45, PreferredTime: "morning", Days: []string{"Mon", "Thu"}, Importance: "high", DependsOn: []string{}},
	},
	"AI Tools": {
		{Name: "Explore Replit Agents", Duration: 45, PreferredTime: "evening", Days: []string{"Mon", "Thu"}, Importance: "medium", DependsOn: []string{}},
		{Name: "Learn Cursor AI Features", Duration: 60, PreferredTime: "morning", Days: []string{"Tue", "Fri"}, Importance: "medium", DependsOn: []string{}},
	},
	"Freelancing": {
		{Name: "Portfolio Website Update", Duration: 90, PreferredTime: "afternoon", Days: []string{"Wed", "Sat"}, Importance: "high", DependsOn: []string{}},
		{Name: "Client Meeting Prep", Duration: 30, PreferredTime: "evening", Days: []string{"Tue"}, Importance: "high", DependsOn: []string{}},
	},
	"Certifications": {
		{Name: "AWS Cloud Practitioner Study", Duration: 60, PreferredTime: "afternoon", Days: []string{"Mon", "Wed", "Fri"}, Importance: "medium", DependsOn: []string{}},
	},
	"Career Planning": {
		{Name: "Research University Options", Duration: 45, PreferredTime: "evening", Days: []string{"Sun"}, Importance: "medium", DependsOn: []string{}},
		{Name: "Update 5-Year Plan Document", Duration: 60, PreferredTime: "evening", Days: []string{"Sat"}, Importance: "low", DependsOn: []string{"Research University Options"}},
	},
}
