package models

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

const reportFile = "report.yaml"

// DefaultReportDir is where finished hunts are exported unless configured.
const DefaultReportDir = ".reports"

// Save writes the report to dir/<id>/report.yaml.
func (r *Report) Save(dir string) (string, error) {
	if r.ID == "" {
		return "", fmt.Errorf("report has no id")
	}
	target := filepath.Join(dir, r.ID)
	if err := os.MkdirAll(target, 0755); err != nil {
		return "", err
	}

	data, err := yaml.Marshal(r)
	if err != nil {
		return "", err
	}
	path := filepath.Join(target, reportFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}

// LoadReport reads a report previously written by Save.
func LoadReport(dir, id string) (*Report, error) {
	data, err := os.ReadFile(filepath.Join(dir, id, reportFile))
	if err != nil {
		return nil, err
	}
	var r Report
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parse report %s: %w", id, err)
	}
	return &r, nil
}

// ListReports returns the ids of saved reports in dir, sorted.
func ListReports(dir string) ([]string, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return []string{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if _, err := os.Stat(filepath.Join(dir, entry.Name(), reportFile)); err == nil {
			ids = append(ids, entry.Name())
		}
	}
	sort.Strings(ids)
	return ids, nil
}
