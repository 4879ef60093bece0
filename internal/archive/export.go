package archive

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/tahirli/sofrachef-backend/config"
)

// Exporter copies archived snapshots to S3-compatible object storage.
type Exporter struct {
	s3Config *config.S3Config
}

// NewExporter creates an exporter backed by the given S3 configuration.
func NewExporter(s3Config *config.S3Config) *Exporter {
	return &Exporter{s3Config: s3Config}
}

// Export uploads a snapshot's JSON document and returns the object URL.
func (e *Exporter) Export(ctx context.Context, snap Snapshot) (string, error) {
	key := fmt.Sprintf("snapshots/%s.json", snap.ID)

	_, err := e.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(e.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader([]byte(snap.State)),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload snapshot to S3: %w", err)
	}

	url := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", e.s3Config.BucketName, key)
	log.Printf("Exported snapshot %s (%s) to %s", snap.ID, snap.Label, url)
	return url, nil
}
