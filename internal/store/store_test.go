package store

import (
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings("user-1")
	if s.UserID != "user-1" {
		t.Errorf("expected user-1, got %s", s.UserID)
	}
	if s.Language != "en" {
		t.Errorf("expected language en, got %s", s.Language)
	}
	if s.TemperatureUnit != "celsius" {
		t.Errorf("expected celsius, got %s", s.TemperatureUnit)
	}
	if s.WindUnit != "kmh" {
		t.Errorf("expected kmh, got %s", s.WindUnit)
	}
	if len(s.DefaultActivities) != 0 {
		t.Errorf("expected no default activities, got %v", s.DefaultActivities)
	}
}

func TestReportFilterDefaults(t *testing.T) {
	f := ReportFilter{}
	if f.Limit != 0 {
		t.Errorf("expected 0 default limit, got %d", f.Limit)
	}
	if f.UserID != "" {
		t.Error("expected empty user filter")
	}
}
