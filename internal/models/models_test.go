package models

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDistinctKinds(t *testing.T) {
	tests := []struct {
		name string
		log  []EvidenceKind
		want int
	}{
		{"empty", nil, 0},
		{"duplicates", []EvidenceKind{EMF, EMF, Sound, Temperature}, 3},
		{"all", []EvidenceKind{Sound, Fingerprints, Temperature, EMF, Sound}, 4},
		{"ignores invalid", []EvidenceKind{EMF, EvidenceKind(9)}, 1},
	}
	for _, tt := range tests {
		if got := DistinctKinds(tt.log); got != tt.want {
			t.Errorf("%s: DistinctKinds = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestMatchGhost(t *testing.T) {
	tests := []struct {
		log  []EvidenceKind
		want GhostClass
	}{
		{[]EvidenceKind{EMF, Temperature, Fingerprints}, Poltergeist},
		{[]EvidenceKind{EMF, Temperature, Sound}, Banshee},
		{[]EvidenceKind{EMF, Fingerprints, Sound}, Bullies},
		{[]EvidenceKind{Temperature, Fingerprints, Sound}, Phantom},
		{[]EvidenceKind{Sound, Sound, Temperature, EMF, EMF}, Banshee},
		{[]EvidenceKind{EMF, Temperature}, GhostUnknown},
		{[]EvidenceKind{Sound, Sound, Sound}, GhostUnknown},
		{nil, GhostUnknown},
	}
	for _, tt := range tests {
		if got := MatchGhost(tt.log); got != tt.want {
			t.Errorf("MatchGhost(%v) = %v, want %v", tt.log, got, tt.want)
		}
	}
}

func TestClassEvidenceIdentifiesClass(t *testing.T) {
	for _, c := range GhostClasses {
		kinds := c.Evidence()
		if len(kinds) != 3 {
			t.Fatalf("%v has %d evidence kinds", c, len(kinds))
		}
		if got := MatchGhost(kinds); got != c {
			t.Errorf("MatchGhost(%v.Evidence()) = %v", c, got)
		}
	}
	if GhostUnknown.Evidence() != nil {
		t.Errorf("unknown class should have no evidence")
	}
}

func TestParseNames(t *testing.T) {
	for _, k := range EvidenceKinds {
		got, err := ParseEvidenceKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseEvidenceKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseEvidenceKind("ectoplasm"); err == nil {
		t.Errorf("expected error for unknown evidence kind")
	}
	if got, err := ParseGhostClass("banshee"); err != nil || got != Banshee {
		t.Errorf("ParseGhostClass(banshee) = %v, %v", got, err)
	}
}

func TestReportYAML(t *testing.T) {
	report := &Report{
		ID:           "run-1",
		Winner:       WinnerHunters,
		ActualGhost:  Banshee,
		MatchedGhost: Banshee,
		Distinct:     3,
		Evidence:     []EvidenceKind{EMF, Sound, Temperature},
		FearExits:    []string{"ray"},
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		t.Fatalf("Failed to marshal report: %v", err)
	}

	var report2 Report
	if err := yaml.Unmarshal(data, &report2); err != nil {
		t.Fatalf("Failed to unmarshal report: %v", err)
	}

	if report2.ActualGhost != Banshee {
		t.Errorf("Expected actual ghost Banshee, got %v", report2.ActualGhost)
	}
	if len(report2.Evidence) != 3 || report2.Evidence[1] != Sound {
		t.Errorf("Unexpected evidence %v", report2.Evidence)
	}
	if report2.Verdict() != "Correct" {
		t.Errorf("Expected Correct verdict, got %s", report2.Verdict())
	}
}

func TestSaveAndLoadReport(t *testing.T) {
	dir := t.TempDir()
	report := &Report{ID: "abc", Winner: WinnerGhost, ActualGhost: Phantom, MatchedGhost: GhostUnknown}

	if _, err := report.Save(dir); err != nil {
		t.Fatalf("Save: %v", err)
	}
	ids, err := ListReports(dir)
	if err != nil {
		t.Fatalf("ListReports: %v", err)
	}
	if len(ids) != 1 || ids[0] != "abc" {
		t.Fatalf("Unexpected report ids %v", ids)
	}

	loaded, err := LoadReport(dir, "abc")
	if err != nil {
		t.Fatalf("LoadReport: %v", err)
	}
	if loaded.Winner != WinnerGhost || loaded.Verdict() != "Incorrect" {
		t.Errorf("Unexpected loaded report %+v", loaded)
	}
}

func TestListReportsMissingDir(t *testing.T) {
	ids, err := ListReports(t.TempDir() + "/nope")
	if err != nil || len(ids) != 0 {
		t.Errorf("ListReports on missing dir = %v, %v", ids, err)
	}
}
