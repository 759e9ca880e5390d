//go:build integration

package store

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
)

func setupTestDB(t *testing.T) *PostgresStore {
	t.Helper()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	ctx := context.Background()
	s, err := NewPostgresStore(ctx, dbURL)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}

	t.Cleanup(func() {
		_, _ = s.pool.Exec(ctx, "TRUNCATE baro_reports CASCADE")
		_, _ = s.pool.Exec(ctx, "TRUNCATE baro_favorite_locations CASCADE")
		_, _ = s.pool.Exec(ctx, "TRUNCATE baro_user_settings CASCADE")
		s.Close()
	})

	return s
}

func TestSettingsRoundTrip(t *testing.T) {
	s := setupTestDB(t)
	ctx := context.Background()

	missing, err := s.GetSettings(ctx, "nobody")
	if err != nil {
		t.Fatalf("GetSettings: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for unknown user")
	}

	in := DefaultSettings("user-1")
	in.Language = "nl"
	in.DefaultActivities = []string{"running", "bbq"}
	if err := s.SaveSettings(ctx, in); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}

	out, err := s.GetSettings(ctx, "user-1")
	if err != nil {
		t.Fatalf("GetSettings: %v", err)
	}
	if out == nil || out.Language != "nl" {
		t.Fatalf("unexpected settings: %+v", out)
	}
	if len(out.DefaultActivities) != 2 {
		t.Errorf("expected 2 activities, got %v", out.DefaultActivities)
	}

	// Upsert replaces the document.
	in.Language = "de"
	if err := s.SaveSettings(ctx, in); err != nil {
		t.Fatalf("SaveSettings upsert: %v", err)
	}
	out, _ = s.GetSettings(ctx, "user-1")
	if out.Language != "de" {
		t.Errorf("expected de after upsert, got %s", out.Language)
	}
}

func TestFavoritesOrderingAndDelete(t *testing.T) {
	s := setupTestDB(t)
	ctx := context.Background()

	first := &FavoriteLocation{UserID: "user-1", Name: "Amsterdam", Lat: 52.37, Lon: 4.89, CountryCode: "NL"}
	second := &FavoriteLocation{UserID: "user-1", Name: "Nice", Lat: 43.70, Lon: 7.27, CountryCode: "FR"}
	if err := s.CreateFavorite(ctx, first); err != nil {
		t.Fatalf("CreateFavorite: %v", err)
	}
	if err := s.CreateFavorite(ctx, second); err != nil {
		t.Fatalf("CreateFavorite: %v", err)
	}
	if second.Position <= first.Position {
		t.Errorf("expected positions to increase: %d then %d", first.Position, second.Position)
	}

	favs, err := s.ListFavorites(ctx, "user-1")
	if err != nil {
		t.Fatalf("ListFavorites: %v", err)
	}
	if len(favs) != 2 || favs[0].Name != "Amsterdam" {
		t.Fatalf("unexpected favorites: %+v", favs)
	}

	if err := s.DeleteFavorite(ctx, "user-1", first.ID); err != nil {
		t.Fatalf("DeleteFavorite: %v", err)
	}
	if err := s.DeleteFavorite(ctx, "someone-else", second.ID); err == nil {
		t.Error("expected error deleting another user's favorite")
	}
}

func TestReportRoundTrip(t *testing.T) {
	s := setupTestDB(t)
	ctx := context.Background()

	r := &Report{
		UserID:       "user-1",
		LocationName: "Amsterdam",
		Lat:          52.37,
		Lon:          4.89,
		Language:     "nl",
		Model:        "gpt-4o-mini",
		Content:      "Een zonnige dag met een frisse bries.",
		Scores:       map[string]interface{}{"beach": 8.2},
	}
	if err := s.CreateReport(ctx, r); err != nil {
		t.Fatalf("CreateReport: %v", err)
	}
	if r.ID == uuid.Nil {
		t.Fatal("expected generated id")
	}

	got, err := s.GetReport(ctx, r.ID)
	if err != nil {
		t.Fatalf("GetReport: %v", err)
	}
	if got == nil || got.Content != r.Content {
		t.Fatalf("unexpected report: %+v", got)
	}

	list, err := s.ListReports(ctx, ReportFilter{UserID: "user-1", Limit: 10})
	if err != nil {
		t.Fatalf("ListReports: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("expected 1 report, got %d", len(list))
	}
}
