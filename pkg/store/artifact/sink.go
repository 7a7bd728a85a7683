package artifact

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/fsms/report-atlas/pkg/models/domain"
	"github.com/fsms/report-atlas/pkg/services/config"
)

// Sink stores generated artifacts and returns where they were written.
type Sink interface {
	Put(ctx context.Context, a *domain.Artifact) (string, error)
}

// NopSink keeps nothing; artifacts are only handed back to the caller.
type NopSink struct{}

func (NopSink) Put(_ context.Context, _ *domain.Artifact) (string, error) {
	return "", nil
}

// NewSink builds the sink selected by settings.Type.
func NewSink(ctx context.Context, settings config.SinkSettings) (Sink, error) {
	switch settings.Type {
	case "", config.SinkNone:
		return NopSink{}, nil
	case config.SinkFS:
		return NewFSSink(settings.Dir)
	case config.SinkS3:
		awsCfg, err := LoadAWSConfig(ctx, settings.Profile, settings.Region)
		if err != nil {
			return nil, err
		}
		return NewS3Sink(s3.NewFromConfig(awsCfg), settings.Bucket, settings.Prefix)
	}
	return nil, fmt.Errorf("unknown sink type %q", settings.Type)
}
