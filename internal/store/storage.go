// Package store provides blob storage for assessment and report payloads.
package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// StorageClient abstracts blob storage for assessments and rendered reports.
type StorageClient interface {
	PutAssessment(ctx context.Context, orgID, assessmentID string, data []byte) error
	GetAssessment(ctx context.Context, orgID, assessmentID string) ([]byte, error)
	PutReport(ctx context.Context, orgID, reportID string, data []byte) error
	GetReport(ctx context.Context, orgID, reportID string) ([]byte, error)
}

// LocalStorage implements StorageClient using the local filesystem.
// Useful for development and testing.
type LocalStorage struct {
	BaseDir string
}

// NewLocalStorage creates a LocalStorage rooted at the given directory.
func NewLocalStorage(baseDir string) *LocalStorage {
	return &LocalStorage{BaseDir: baseDir}
}

func (s *LocalStorage) path(orgID, kind, id string) string {
	return filepath.Join(s.BaseDir, orgID, kind, id+".json")
}

func (s *LocalStorage) put(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// PutAssessment stores an assessment blob.
func (s *LocalStorage) PutAssessment(ctx context.Context, orgID, assessmentID string, data []byte) error {
	return s.put(s.path(orgID, "assessments", assessmentID), data)
}

// GetAssessment retrieves an assessment blob.
func (s *LocalStorage) GetAssessment(ctx context.Context, orgID, assessmentID string) ([]byte, error) {
	return os.ReadFile(s.path(orgID, "assessments", assessmentID))
}

// PutReport stores a rendered report blob.
func (s *LocalStorage) PutReport(ctx context.Context, orgID, reportID string, data []byte) error {
	return s.put(s.path(orgID, "reports", reportID), data)
}

// GetReport retrieves a rendered report blob.
func (s *LocalStorage) GetReport(ctx context.Context, orgID, reportID string) ([]byte, error) {
	return os.ReadFile(s.path(orgID, "reports", reportID))
}
