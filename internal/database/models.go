package database

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Session struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Status          string
	RfpFilename     string
	RfpRequirements string
	OrgFilename     string
	OrgAnalysis     string
	MatchingTable   json.RawMessage
	ResponsePrompt  string
	OutputKey       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Document struct {
	ID               uuid.UUID
	SessionID        uuid.UUID
	Role             string
	OriginalFilename string
	Mime             string
	SizeBytes        int64
	ObjectKey        string
	UploadStatus     string
	CreatedAt        time.Time
}
