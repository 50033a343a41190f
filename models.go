package main

import (
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/google/uuid"
	"github.com/prasad-kakudi/proposal-writer-generic/internal/database"
	"github.com/streadway/amqp"
)

var (
	// ErrUnsupportedFormat is returned when an uploaded document has a mime
	// type the extractor cannot handle.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrModelResolution is returned at startup when no candidate model
	// binds and responds. The service must not start without a model.
	ErrModelResolution = errors.New("no usable generation model")
)

type R2Config struct {
	AccountID string
	Bucket    string
	AccessKey string
	SecretKey string
}

type WorkerConfig struct {
	DB          *database.Queries
	R2          *R2Config
	AwsConfig   *aws.Config
	RabbitConn  *amqp.Connection
	RABBITMQUrl string
	Generator   TextGenerator
	OutputDir   string
}

// MatchStrength is the closed vocabulary for requirement/capability fit.
// Values outside the known synonym sets are carried title-cased rather
// than rejected.
type MatchStrength string

const (
	MatchStrong MatchStrength = "Strong"
	MatchMedium MatchStrength = "Medium"
	MatchWeak   MatchStrength = "Weak"
	MatchNone   MatchStrength = "None"
)

// RequirementMatch is one row of the requirement/capability matching table,
// in the order the model emitted it.
type RequirementMatch struct {
	Requirement string        `json:"requirement"`
	Capability  string        `json:"capability"`
	Match       MatchStrength `json:"match"`
	Notes       string        `json:"notes"`
}

type SectionKind int

const (
	SectionHeading SectionKind = iota
	SectionBullet
	SectionParagraph
)

// ContentSection is one classified line of generated response content.
type ContentSection struct {
	Kind SectionKind
	Text string
}

// Job kinds, one per pipeline stage the API enqueues.
const (
	JobKindRFP          = "rfp"
	JobKindOrganization = "organization"
	JobKindDocument     = "document"
)

// ProposalJob is the queue message. SessionID may be nil on document jobs,
// in which case the user's most recent session is targeted. Content, when
// set on a document job, overrides the stored response prompt.
type ProposalJob struct {
	ID        uuid.UUID  `json:"id"`
	Kind      string     `json:"kind"`
	SessionID *uuid.UUID `json:"session_id"`
	UserID    uuid.UUID  `json:"user_id"`
	Content   string     `json:"content,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
