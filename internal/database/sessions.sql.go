package database

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
)

const getSession = `-- name: GetSession :one
SELECT id, user_id, status, rfp_filename, rfp_requirements, org_filename, org_analysis, matching_table, response_prompt, output_key, created_at, updated_at FROM sessions WHERE id=$1
`

func (q *Queries) GetSession(ctx context.Context, id uuid.UUID) (Session, error) {
	row := q.db.QueryRowContext(ctx, getSession, id)
	var i Session
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.Status,
		&i.RfpFilename,
		&i.RfpRequirements,
		&i.OrgFilename,
		&i.OrgAnalysis,
		&i.MatchingTable,
		&i.ResponsePrompt,
		&i.OutputKey,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getMostRecentSession = `-- name: GetMostRecentSession :one
SELECT id, user_id, status, rfp_filename, rfp_requirements, org_filename, org_analysis, matching_table, response_prompt, output_key, created_at, updated_at FROM sessions
WHERE user_id=$1
ORDER BY updated_at DESC
LIMIT 1
`

func (q *Queries) GetMostRecentSession(ctx context.Context, userID uuid.UUID) (Session, error) {
	row := q.db.QueryRowContext(ctx, getMostRecentSession, userID)
	var i Session
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.Status,
		&i.RfpFilename,
		&i.RfpRequirements,
		&i.OrgFilename,
		&i.OrgAnalysis,
		&i.MatchingTable,
		&i.ResponsePrompt,
		&i.OutputKey,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const updateSessionStatus = `-- name: UpdateSessionStatus :exec
UPDATE sessions
SET status=$1, updated_at=CURRENT_TIMESTAMP
WHERE id=$2
`

type UpdateSessionStatusParams struct {
	Status string
	ID     uuid.UUID
}

func (q *Queries) UpdateSessionStatus(ctx context.Context, arg UpdateSessionStatusParams) error {
	_, err := q.db.ExecContext(ctx, updateSessionStatus, arg.Status, arg.ID)
	return err
}

const updateSessionRFP = `-- name: UpdateSessionRFP :exec
UPDATE sessions
SET rfp_filename=$1, rfp_requirements=$2, updated_at=CURRENT_TIMESTAMP
WHERE id=$3
`

type UpdateSessionRFPParams struct {
	RfpFilename     string
	RfpRequirements string
	ID              uuid.UUID
}

func (q *Queries) UpdateSessionRFP(ctx context.Context, arg UpdateSessionRFPParams) error {
	_, err := q.db.ExecContext(ctx, updateSessionRFP, arg.RfpFilename, arg.RfpRequirements, arg.ID)
	return err
}

const updateSessionOrg = `-- name: UpdateSessionOrg :exec
UPDATE sessions
SET org_filename=$1, org_analysis=$2, matching_table=$3, response_prompt=$4, updated_at=CURRENT_TIMESTAMP
WHERE id=$5
`

type UpdateSessionOrgParams struct {
	OrgFilename    string
	OrgAnalysis    string
	MatchingTable  json.RawMessage
	ResponsePrompt string
	ID             uuid.UUID
}

func (q *Queries) UpdateSessionOrg(ctx context.Context, arg UpdateSessionOrgParams) error {
	_, err := q.db.ExecContext(ctx, updateSessionOrg,
		arg.OrgFilename,
		arg.OrgAnalysis,
		arg.MatchingTable,
		arg.ResponsePrompt,
		arg.ID,
	)
	return err
}

const updateSessionOutput = `-- name: UpdateSessionOutput :exec
UPDATE sessions
SET output_key=$1, updated_at=CURRENT_TIMESTAMP
WHERE id=$2
`

type UpdateSessionOutputParams struct {
	OutputKey string
	ID        uuid.UUID
}

func (q *Queries) UpdateSessionOutput(ctx context.Context, arg UpdateSessionOutputParams) error {
	_, err := q.db.ExecContext(ctx, updateSessionOutput, arg.OutputKey, arg.ID)
	return err
}
