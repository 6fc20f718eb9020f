package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-intake/internal/types"
)

// SaveResume stores a parsed resume record as JSONB and returns its ID
func (db *DB) SaveResume(ctx context.Context, userID uuid.UUID, filename string, fileSize int64, record *types.ResumeRecord) (uuid.UUID, error) {
	jsonBytes, err := json.Marshal(record)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal resume record: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO resumes (user_id, filename, file_size, record)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		userID, filename, fileSize, jsonBytes,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save resume: %w", err)
	}
	return id, nil
}

// GetResume retrieves a resume by ID. Returns nil when no resume exists.
func (db *DB) GetResume(ctx context.Context, resumeID uuid.UUID) (*Resume, error) {
	var r Resume
	var recordBytes []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, filename, file_size, record, created_at
		 FROM resumes WHERE id = $1`,
		resumeID,
	).Scan(&r.ID, &r.UserID, &r.Filename, &r.FileSize, &recordBytes, &r.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}

	if len(recordBytes) > 0 {
		var record types.ResumeRecord
		if err := json.Unmarshal(recordBytes, &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal resume record: %w", err)
		}
		r.Record = &record
	}

	return &r, nil
}

// ListResumes retrieves resume summaries for a user, newest first
func (db *DB) ListResumes(ctx context.Context, userID uuid.UUID, limit int) ([]ResumeSummary, error) {
	if limit == 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, filename, COALESCE(record->>'name', ''), COALESCE(record->>'email', ''), created_at
		 FROM resumes WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var resumes []ResumeSummary
	for rows.Next() {
		var s ResumeSummary
		if err := rows.Scan(&s.ID, &s.Filename, &s.Name, &s.Email, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		resumes = append(resumes, s)
	}
	return resumes, nil
}

// DeleteResume deletes a resume owned by the given user
func (db *DB) DeleteResume(ctx context.Context, resumeID, userID uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM resumes WHERE id = $1 AND user_id = $2`,
		resumeID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("resume not found: %s", resumeID)
	}
	return nil
}
