package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLocalStoragePutGetAssessment(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir)
	ctx := context.Background()

	data := []byte(`{"responses":[]}`)
	if err := s.PutAssessment(ctx, "org1", "a1", data); err != nil {
		t.Fatalf("PutAssessment: %v", err)
	}

	got, err := s.GetAssessment(ctx, "org1", "a1")
	if err != nil {
		t.Fatalf("GetAssessment: %v", err)
	}
	if string(got) != string(data) {
		t.Errorf("GetAssessment = %q, want %q", got, data)
	}

	// Verify file path layout
	expectedPath := filepath.Join(dir, "org1", "assessments", "a1.json")
	if _, err := os.Stat(expectedPath); err != nil {
		t.Errorf("expected file at %s: %v", expectedPath, err)
	}
}

func TestLocalStoragePutGetReport(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir)
	ctx := context.Background()

	data := []byte(`{"band":"Mostly Ready"}`)
	if err := s.PutReport(ctx, "org1", "r1", data); err != nil {
		t.Fatalf("PutReport: %v", err)
	}

	got, err := s.GetReport(ctx, "org1", "r1")
	if err != nil {
		t.Fatalf("GetReport: %v", err)
	}
	if string(got) != string(data) {
		t.Errorf("GetReport = %q, want %q", got, data)
	}

	expectedPath := filepath.Join(dir, "org1", "reports", "r1.json")
	if _, err := os.Stat(expectedPath); err != nil {
		t.Errorf("expected file at %s: %v", expectedPath, err)
	}
}

func TestLocalStorageGetNotFound(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir)
	ctx := context.Background()

	_, err := s.GetAssessment(ctx, "org1", "nonexistent")
	if err == nil {
		t.Error("expected error for nonexistent assessment")
	}
}
