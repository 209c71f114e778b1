package audit

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/trunov/resizehub/internal/entities"
)

const insertAuditRecord = `
INSERT INTO audit_records (
	resource_id, event_time, event_type,
	original_bucket, original_object_key, original_size,
	original_width, original_height, original_format, original_mode, original_file_size,
	resized_bucket, resized_object_key,
	resized_width, resized_height, resized_format, resized_mode, resized_file_size,
	processing_time, reduction_percentage, dimension_reduction,
	event_source, aws_region, event_version
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
	$13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24
)`

type PostgresStore struct {
	dbpool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, databaseDSN string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	return &PostgresStore{dbpool: pool}, nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.dbpool.Ping(ctx)
}

func (s *PostgresStore) Close() {
	s.dbpool.Close()
}

// Put appends one audit row; rows are never updated.
func (s *PostgresStore) Put(ctx context.Context, rec entities.AuditRecord) error {
	_, err := s.dbpool.Exec(ctx, insertAuditRecord,
		rec.ResourceID, rec.EventTime, rec.EventType,
		rec.OriginalBucket, rec.OriginalObjectKey, rec.OriginalSize,
		rec.OriginalWidth, rec.OriginalHeight, rec.OriginalFormat, rec.OriginalMode, rec.OriginalFileSize,
		rec.ResizedBucket, rec.ResizedObjectKey,
		rec.ResizedWidth, rec.ResizedHeight, rec.ResizedFormat, rec.ResizedMode, rec.ResizedFileSize,
		rec.ProcessingTime, rec.ReductionPercentage, rec.DimensionReduction,
		rec.EventSource, rec.AWSRegion, rec.EventVersion,
	)
	if err != nil {
		return fmt.Errorf("failed to insert audit record %s: %w", rec.ResourceID, err)
	}

	return nil
}
