package artifact

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/fsms/report-atlas/pkg/models/domain"
	"github.com/fsms/report-atlas/pkg/services/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockS3 struct {
	mock.Mock
	body []byte
}

func (m *mockS3) PutObject(ctx context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, aws.ToString(params.Bucket), aws.ToString(params.Key))
	if params.Body != nil {
		m.body, _ = io.ReadAll(params.Body)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.PutObjectOutput), args.Error(1)
}

func sampleArtifact() *domain.Artifact {
	return &domain.Artifact{
		Name:        "Inventory_Report_2025-05-07.pdf",
		ReportType:  domain.ReportInventory,
		Format:      domain.FormatPDF,
		ContentType: "application/pdf",
		Data:        []byte("%PDF-1.3 test"),
		GeneratedAt: time.Date(2025, time.May, 7, 9, 0, 0, 0, time.UTC),
	}
}

func TestFSSink_Put_WritesFile(t *testing.T) {
	// Given
	dir := filepath.Join(t.TempDir(), "exports")
	sink, err := NewFSSink(dir)
	require.NoError(t, err)

	// When
	location, err := sink.Put(context.Background(), sampleArtifact())

	// Then
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Inventory_Report_2025-05-07.pdf"), location)
	content, err := os.ReadFile(location)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3 test", string(content))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files are cleaned up")
}

func TestFSSink_Put_StripsDirectories(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewFSSink(dir)
	require.NoError(t, err)
	a := sampleArtifact()
	a.Name = "../../escape.csv"

	location, err := sink.Put(context.Background(), a)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "escape.csv"), location)
}

func TestNewFSSink_RequiresDir(t *testing.T) {
	_, err := NewFSSink("")
	assert.EqualError(t, err, "sink directory is required")
}

func TestS3Sink_Put(t *testing.T) {
	// Given
	client := new(mockS3)
	client.On("PutObject", mock.Anything, "fsms-exports", "reports/2025/05/07/Inventory_Report_2025-05-07.pdf").
		Return(&s3.PutObjectOutput{}, nil)
	sink, err := NewS3Sink(client, "fsms-exports", "reports/")
	require.NoError(t, err)

	// When
	location, err := sink.Put(context.Background(), sampleArtifact())

	// Then
	require.NoError(t, err)
	assert.Equal(t, "s3://fsms-exports/reports/2025/05/07/Inventory_Report_2025-05-07.pdf", location)
	assert.Equal(t, "%PDF-1.3 test", string(client.body))
	client.AssertExpectations(t)
}

func TestS3Sink_Put_Error(t *testing.T) {
	client := new(mockS3)
	client.On("PutObject", mock.Anything, "bucket", mock.Anything).Return(nil, errors.New("access denied"))
	sink, err := NewS3Sink(client, "bucket", "")
	require.NoError(t, err)

	_, err = sink.Put(context.Background(), sampleArtifact())

	assert.ErrorContains(t, err, "failed to upload 2025/05/07/Inventory_Report_2025-05-07.pdf: access denied")
}

func TestNewSink(t *testing.T) {
	sink, err := NewSink(context.Background(), config.SinkSettings{Type: config.SinkNone})
	require.NoError(t, err)
	location, err := sink.Put(context.Background(), sampleArtifact())
	assert.NoError(t, err)
	assert.Empty(t, location)

	fsSink, err := NewSink(context.Background(), config.SinkSettings{Type: config.SinkFS, Dir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &FSSink{}, fsSink)

	_, err = NewSink(context.Background(), config.SinkSettings{Type: "ftp"})
	assert.EqualError(t, err, `unknown sink type "ftp"`)
}
