package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	_ "github.com/lib/pq"
	"github.com/prasad-kakudi/proposal-writer-generic/internal/database"
	"github.com/streadway/amqp"
)

// retry retries a function up to `attempts` times with exponential backoff.
// Retries live here at the caller level only: the generation client and the
// parser never retry on their own.
func retry[T any](attempts int, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	for i := 0; i < attempts; i++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err
		wait := time.Duration(500*(i+1)) * time.Millisecond
		time.Sleep(wait)
	}
	return zero, fmt.Errorf("after %d attempts: %w", attempts, lastErr)
}

// resolveJobSession loads the session a job targets. Document jobs may omit
// the session id; the user's most recent session is used then.
func resolveJobSession(ctx context.Context, workerConfig *WorkerConfig, job ProposalJob) (database.Session, error) {
	if job.SessionID != nil {
		return workerConfig.DB.GetSession(ctx, *job.SessionID)
	}
	return workerConfig.DB.GetMostRecentSession(ctx, job.UserID)
}

// fetchDocumentText downloads a session's uploaded document by role and
// flattens it to text.
func fetchDocumentText(ctx context.Context, workerConfig *WorkerConfig, session database.Session, role string) (database.Document, string, error) {
	doc, err := workerConfig.DB.GetDocumentBySessionAndRole(ctx, database.GetDocumentBySessionAndRoleParams{
		SessionID: session.ID,
		Role:      role,
	})
	if err != nil {
		return database.Document{}, "", fmt.Errorf("error getting %s document for session %v: %w", role, session.ID, err)
	}

	awsClient := s3.NewFromConfig(*workerConfig.AwsConfig, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", workerConfig.R2.AccountID))
	})

	// Downloads are retried, network failures are transient.
	fileBytes, err := retry(3, func() ([]byte, error) {
		return DownloadFromR2(ctx, awsClient, workerConfig.R2.Bucket, doc.ObjectKey)
	})
	if err != nil {
		return database.Document{}, "", fmt.Errorf("file download error for %s: %w", doc.ObjectKey, err)
	}

	text, err := ExtractDocumentText(doc.Mime, fileBytes)
	if err != nil {
		return database.Document{}, "", fmt.Errorf("text extraction error for %s: %w", doc.ObjectKey, err)
	}
	return doc, text, nil
}

// generate runs one pipeline generation call with a retry for transient
// upstream failures.
func generate(ctx context.Context, workerConfig *WorkerConfig, prompt string) (string, error) {
	return retry(2, func() (string, error) {
		return workerConfig.Generator.Generate(ctx, prompt)
	})
}

// processRFPJob analyzes the session's RFP document and stores the
// extracted requirements.
func processRFPJob(ctx context.Context, workerConfig *WorkerConfig, session database.Session) error {
	doc, rfpText, err := fetchDocumentText(ctx, workerConfig, session, JobKindRFP)
	if err != nil {
		return err
	}

	requirements, err := generate(ctx, workerConfig, buildRFPAnalysisPrompt(rfpText))
	if err != nil {
		return fmt.Errorf("rfp analysis failed: %w", err)
	}

	_, err = retry(3, func() (any, error) {
		return nil, workerConfig.DB.UpdateSessionRFP(ctx, database.UpdateSessionRFPParams{
			RfpFilename:     doc.OriginalFilename,
			RfpRequirements: requirements,
			ID:              session.ID,
		})
	})
	if err != nil {
		return fmt.Errorf("failed to save rfp analysis after retries: %w", err)
	}
	return nil
}

// processOrgJob analyzes the organization document against the session's
// stored RFP requirements: capability analysis, matching table, and
// response-prompt synthesis, persisted together.
func processOrgJob(ctx context.Context, workerConfig *WorkerConfig, session database.Session) error {
	if session.RfpRequirements == "" {
		return fmt.Errorf("session %v has no RFP analysis yet", session.ID)
	}

	doc, orgText, err := fetchDocumentText(ctx, workerConfig, session, JobKindOrganization)
	if err != nil {
		return err
	}

	orgAnalysis, err := generate(ctx, workerConfig, buildOrgAnalysisPrompt(orgText))
	if err != nil {
		return fmt.Errorf("organization analysis failed: %w", err)
	}

	matchingReply, err := generate(ctx, workerConfig, buildMatchingPrompt(session.RfpRequirements, orgAnalysis))
	if err != nil {
		return fmt.Errorf("matching analysis failed: %w", err)
	}
	// Parsing never fails: a sloppy reply just yields fewer records.
	matches := parseMatchingTable(matchingReply)
	if len(matches) == 0 {
		log.Printf("⚠️ matching reply for session %v yielded no records", session.ID)
	}

	responsePrompt, err := generate(ctx, workerConfig, buildResponsePrompt(session.RfpRequirements, orgAnalysis))
	if err != nil {
		return fmt.Errorf("response prompt synthesis failed: %w", err)
	}

	matchesJSON, err := json.Marshal(matches)
	if err != nil {
		return fmt.Errorf("failed to marshal matching table: %w", err)
	}

	_, err = retry(3, func() (any, error) {
		return nil, workerConfig.DB.UpdateSessionOrg(ctx, database.UpdateSessionOrgParams{
			OrgFilename:    doc.OriginalFilename,
			OrgAnalysis:    orgAnalysis,
			MatchingTable:  matchesJSON,
			ResponsePrompt: responsePrompt,
			ID:             session.ID,
		})
	})
	if err != nil {
		return fmt.Errorf("failed to save organization analysis after retries: %w", err)
	}
	return nil
}

// processDocumentJob renders the final response document and uploads it.
// The job content, when present, overrides the stored response prompt (the
// user edited it before generating).
func processDocumentJob(ctx context.Context, workerConfig *WorkerConfig, session database.Session, job ProposalJob) error {
	content := job.Content
	if content == "" {
		content = session.ResponsePrompt
	}
	if content == "" {
		return fmt.Errorf("session %v has no response content to render", session.ID)
	}

	outputFilename := fmt.Sprintf("rfp_response_%s.docx", session.ID.String()[:8])
	outputPath := filepath.Join(workerConfig.OutputDir, outputFilename)
	if err := createProposalDocument(content, outputPath); err != nil {
		return err
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		return fmt.Errorf("failed to read generated document: %w", err)
	}

	awsClient := s3.NewFromConfig(*workerConfig.AwsConfig, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", workerConfig.R2.AccountID))
	})
	outputKey := "outputs/" + outputFilename
	_, err = retry(3, func() (any, error) {
		return nil, UploadToR2(ctx, awsClient, workerConfig.R2.Bucket, outputKey, data)
	})
	if err != nil {
		return fmt.Errorf("failed to upload document after retries: %w", err)
	}

	_, err = retry(3, func() (any, error) {
		return nil, workerConfig.DB.UpdateSessionOutput(ctx, database.UpdateSessionOutputParams{
			OutputKey: outputKey,
			ID:        session.ID,
		})
	})
	if err != nil {
		return fmt.Errorf("failed to save output key after retries: %w", err)
	}
	return nil
}

func processJob(ctx context.Context, workerConfig *WorkerConfig, session database.Session, job ProposalJob) error {
	switch job.Kind {
	case JobKindRFP:
		return processRFPJob(ctx, workerConfig, session)
	case JobKindOrganization:
		return processOrgJob(ctx, workerConfig, session)
	case JobKindDocument:
		return processDocumentJob(ctx, workerConfig, session, job)
	default:
		return fmt.Errorf("unknown job kind: %q", job.Kind)
	}
}

func worker(id int, workerConfig *WorkerConfig, wg *sync.WaitGroup) {
	defer wg.Done()
	conn, err := amqp.Dial(workerConfig.RABBITMQUrl)
	if err != nil {
		log.Fatal("error dialling rabbitmq: " + err.Error())
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatal("error connecting to rabbitmq channel: " + err.Error())
	}
	defer ch.Close()
	_, err = ch.QueueDeclare(
		"proposals", // queue name
		true,        // durable (survives broker restarts)
		false,       // auto-delete when unused
		false,       // exclusive
		false,       // no-wait
		nil,         // arguments
	)
	if err != nil {
		log.Fatalf("Failed to declare queue: %v", err)
	}

	msgs, err := ch.Consume(
		"proposals", // queue name
		"",          // consumer tag
		true,        // auto-ack
		false,       // exclusive
		false,       // no-local
		false,       // no-wait
		nil,         // arguments
	)
	if err != nil {
		log.Fatal("error consuming rabbitmq message: " + err.Error())
	}

	for msg := range msgs {
		ctx := context.Background()

		job := ProposalJob{}
		if err := json.Unmarshal(msg.Body, &job); err != nil {
			log.Printf("error unmarshalling job body. err: %v", err)
			continue
		}

		session, err := resolveJobSession(ctx, workerConfig, job)
		if err != nil {
			log.Printf("error resolving session for job %v: %v", job.ID, err)
			continue
		}
		log.Printf("Worker %d processing %s job. session_id: %s", id+1, job.Kind, session.ID)

		workerConfig.DB.UpdateSessionStatus(ctx, database.UpdateSessionStatusParams{
			Status: "processing",
			ID:     session.ID,
		})
		update := map[string]any{
			"session_id": session.ID,
			"status":     "processing",
			"message":    job.Kind + " stage started",
			"timestamp":  time.Now(),
		}
		if err := publishSessionUpdate(workerConfig.RabbitConn, session.ID.String(), update); err != nil {
			log.Println("failed to publish update:", err)
		}

		err = processJob(ctx, workerConfig, session, job)
		if err != nil {
			log.Printf("error processing %s job for session_id: %v. err: %v", job.Kind, session.ID, err)

			workerConfig.DB.UpdateSessionStatus(ctx, database.UpdateSessionStatusParams{
				Status: "failed",
				ID:     session.ID,
			})
			update := map[string]any{
				"session_id": session.ID,
				"status":     "failed",
				"message":    job.Kind + " stage failed",
				"timestamp":  time.Now(),
			}
			if err := publishSessionUpdate(workerConfig.RabbitConn, session.ID.String(), update); err != nil {
				log.Println("failed to publish update:", err)
			}
			continue
		}

		status := "completed"
		if job.Kind != JobKindDocument {
			// Earlier stages leave the session open for the next one.
			status = job.Kind + "_analyzed"
		}
		workerConfig.DB.UpdateSessionStatus(ctx, database.UpdateSessionStatusParams{
			Status: status,
			ID:     session.ID,
		})
		update = map[string]any{
			"session_id": session.ID,
			"status":     status,
			"message":    job.Kind + " stage completed",
			"timestamp":  time.Now(),
		}
		if err := publishSessionUpdate(workerConfig.RabbitConn, session.ID.String(), update); err != nil {
			log.Println("failed to publish update:", err)
		}
	}
}

func (workerConfig *WorkerConfig) StartConsumerWorkerPool(numWorkers int) {
	var wg sync.WaitGroup
	wg.Add(numWorkers)

	for i := range numWorkers {
		log.Println("worker id ", i+1, "started")
		go worker(i, workerConfig, &wg)
	}
	wg.Wait() // block until all workers finish
}
