package database

import (
	"context"

	"github.com/google/uuid"
)

const getDocumentsBySession = `-- name: GetDocumentsBySession :many
SELECT id, session_id, role, original_filename, mime, size_bytes, object_key, upload_status, created_at FROM documents WHERE session_id=$1
`

func (q *Queries) GetDocumentsBySession(ctx context.Context, sessionID uuid.UUID) ([]Document, error) {
	rows, err := q.db.QueryContext(ctx, getDocumentsBySession, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Document
	for rows.Next() {
		var i Document
		if err := rows.Scan(
			&i.ID,
			&i.SessionID,
			&i.Role,
			&i.OriginalFilename,
			&i.Mime,
			&i.SizeBytes,
			&i.ObjectKey,
			&i.UploadStatus,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getDocumentBySessionAndRole = `-- name: GetDocumentBySessionAndRole :one
SELECT id, session_id, role, original_filename, mime, size_bytes, object_key, upload_status, created_at FROM documents
WHERE session_id=$1 AND role=$2
ORDER BY created_at DESC
LIMIT 1
`

type GetDocumentBySessionAndRoleParams struct {
	SessionID uuid.UUID
	Role      string
}

func (q *Queries) GetDocumentBySessionAndRole(ctx context.Context, arg GetDocumentBySessionAndRoleParams) (Document, error) {
	row := q.db.QueryRowContext(ctx, getDocumentBySessionAndRole, arg.SessionID, arg.Role)
	var i Document
	err := row.Scan(
		&i.ID,
		&i.SessionID,
		&i.Role,
		&i.OriginalFilename,
		&i.Mime,
		&i.SizeBytes,
		&i.ObjectKey,
		&i.UploadStatus,
		&i.CreatedAt,
	)
	return i, err
}
