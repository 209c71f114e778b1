package pipeline

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/trunov/resizehub/internal/entities"
	"github.com/trunov/resizehub/internal/events"
	"github.com/trunov/resizehub/internal/logging"
	"github.com/trunov/resizehub/internal/processor"
)

type ObjectStore interface {
	Download(ctx context.Context, bucket, key string) ([]byte, error)
	Upload(ctx context.Context, bucket, key, contentType string, payload []byte, metadata map[string]string) error
}

type AuditStore interface {
	Put(ctx context.Context, rec entities.AuditRecord) error
}

// Result is what one successfully processed record produces.
type Result struct {
	Record        entities.AuditRecord
	OriginalBytes int64
	ResizedBytes  int64
}

// Processor runs a single notification record through the full pipeline:
// fetch, metadata extraction, half-size resize, variant upload, audit.
type Processor struct {
	store      ObjectStore
	audit      AuditStore
	destBucket string
	tmpDir     string
	log        zerolog.Logger
}

func NewProcessor(store ObjectStore, audit AuditStore, destBucket, tmpDir string) *Processor {
	return &Processor{
		store:      store,
		audit:      audit,
		destBucket: destBucket,
		tmpDir:     tmpDir,
		log:        logging.With().Str("component", "pipeline").Logger(),
	}
}

// Process handles one record. Every error is terminal for the record and
// comes back as a *RecordError classified by stage.
func (p *Processor) Process(ctx context.Context, rec events.Record) (Result, error) {
	key, err := rec.DecodedKey()
	if err != nil {
		return Result{}, failed(StageFetch, rec.S3.Object.Key, err)
	}
	bucket := rec.S3.Bucket.Name
	base := path.Base(key)

	// One id per record keeps artifacts of same-named objects apart.
	id := uuid.NewString()
	downloadPath := filepath.Join(p.tmpDir, id+"_"+base)
	resizedPath := filepath.Join(p.tmpDir, id+"_resized_"+base)
	defer p.cleanup(downloadPath, resizedPath)

	data, err := p.store.Download(ctx, bucket, key)
	if err != nil {
		return Result{}, failed(StageFetch, key, err)
	}
	if err := os.WriteFile(downloadPath, data, 0o600); err != nil {
		return Result{}, failed(StageFetch, key, err)
	}

	origMeta, err := processor.Extract(data)
	if err != nil {
		return Result{}, failed(StageDecode, key, err)
	}

	img, _, err := processor.Decode(data)
	if err != nil {
		return Result{}, failed(StageDecode, key, err)
	}

	resized, dims := processor.ResizeHalf(img)
	variant, err := processor.Encode(resized, origMeta.Format)
	if err != nil {
		return Result{}, failed(StageResize, key, err)
	}
	if err := os.WriteFile(resizedPath, variant, 0o600); err != nil {
		return Result{}, failed(StageResize, key, err)
	}

	resizedMeta, err := processor.Extract(variant)
	if err != nil {
		return Result{}, failed(StageResize, key, err)
	}

	reduction, err := processor.Reduce(origMeta, resizedMeta)
	if err != nil {
		return Result{}, failed(StageReduce, key, err)
	}

	processedAt := time.Now().UTC().Format(time.RFC3339)
	destKey := "resized-" + base

	uploadMeta := map[string]string{
		"original_filename":  base,
		"original_bucket":    bucket,
		"resized_dimensions": dims.TargetDimensions(),
		"processing_time":    processedAt,
	}
	contentType := mimetype.Detect(variant).String()
	if err := p.store.Upload(ctx, p.destBucket, destKey, contentType, variant, uploadMeta); err != nil {
		return Result{}, failed(StageStore, key, err)
	}

	record := entities.AuditRecord{
		ResourceID: uuid.NewString(),
		EventTime:  rec.EventTime,
		EventType:  rec.EventName,

		OriginalBucket:    bucket,
		OriginalObjectKey: key,
		OriginalSize:      rec.S3.Object.Size,
		OriginalWidth:     origMeta.Width,
		OriginalHeight:    origMeta.Height,
		OriginalFormat:    origMeta.Format,
		OriginalMode:      origMeta.Mode,
		OriginalFileSize:  origMeta.SizeBytes,

		ResizedBucket:    p.destBucket,
		ResizedObjectKey: destKey,
		ResizedWidth:     resizedMeta.Width,
		ResizedHeight:    resizedMeta.Height,
		ResizedFormat:    resizedMeta.Format,
		ResizedMode:      resizedMeta.Mode,
		ResizedFileSize:  resizedMeta.SizeBytes,

		ProcessingTime:      processedAt,
		ReductionPercentage: reduction.Percent,
		DimensionReduction:  reduction.Dimensions,

		EventSource:  rec.EventSource,
		AWSRegion:    rec.AWSRegion,
		EventVersion: rec.EventVersion,
	}
	if err := p.audit.Put(ctx, record); err != nil {
		return Result{}, failed(StageAudit, key, err)
	}

	p.log.Info().
		Str("key", key).
		Int64("original_bytes", origMeta.SizeBytes).
		Int64("resized_bytes", resizedMeta.SizeBytes).
		Msg("successfully processed")

	return Result{
		Record:        record,
		OriginalBytes: origMeta.SizeBytes,
		ResizedBytes:  resizedMeta.SizeBytes,
	}, nil
}

// cleanup removes temporary artifacts. Failures are logged and never
// change the record's outcome; a path that was never written is fine.
func (p *Processor) cleanup(paths ...string) {
	for _, file := range paths {
		if err := os.Remove(file); err != nil && !os.IsNotExist(err) {
			p.log.Warn().Err(err).Str("path", file).Msg("failed to remove temporary file")
		}
	}
}
