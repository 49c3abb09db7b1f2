package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/avinashj/socratic/ent"
	"github.com/avinashj/socratic/ent/studentrecord"
	"github.com/avinashj/socratic/internal/progress"
)

// ProgressRepo persists per-student progress documents as JSON in the
// student_records table. It implements progress.Store.
type ProgressRepo struct {
	client *ent.Client
}

// Load returns the student's progress document, or a fresh empty one
// for an unknown student.
func (r *ProgressRepo) Load(ctx context.Context, studentID string) (*progress.StudentProgress, error) {
	rec, err := r.client.StudentRecord.Query().
		Where(studentrecord.StudentID(studentID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return progress.New(), nil
		}
		return nil, fmt.Errorf("query student record: %w", err)
	}

	var p progress.StudentProgress
	if err := json.Unmarshal([]byte(rec.Document), &p); err != nil {
		return nil, fmt.Errorf("parse progress document for %s: %w", studentID, err)
	}
	return &p, nil
}

// Save replaces the student's progress document wholesale.
func (r *ProgressRepo) Save(ctx context.Context, studentID string, p *progress.StudentProgress) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal progress document: %w", err)
	}

	existing, err := r.client.StudentRecord.Query().
		Where(studentrecord.StudentID(studentID)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("query student record: %w", err)
		}
		_, err = r.client.StudentRecord.Create().
			SetStudentID(studentID).
			SetDocument(string(raw)).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create student record: %w", err)
		}
		return nil
	}

	_, err = existing.Update().
		SetDocument(string(raw)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update student record: %w", err)
	}
	return nil
}

// Delete removes the student's progress record. It returns the number
// of records removed (0 or 1).
func (r *ProgressRepo) Delete(ctx context.Context, studentID string) (int, error) {
	n, err := r.client.StudentRecord.Delete().
		Where(studentrecord.StudentID(studentID)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete student record: %w", err)
	}
	return n, nil
}
