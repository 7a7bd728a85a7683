package adapters

import (
	"github.com/fsms/report-atlas/pkg/models/api"
	"github.com/fsms/report-atlas/pkg/models/domain"
	"github.com/fsms/report-atlas/pkg/models/store"
)

func MapArtifactDomainToStore(id string, artifact *domain.Artifact, location string) store.ExportRecord {
	return store.ExportRecord{
		ID:         id,
		ReportType: artifact.ReportType,
		Format:     string(artifact.Format),
		FileName:   artifact.Name,
		SizeBytes:  int64(len(artifact.Data)),
		Partial:    artifact.Partial,
		Location:   location,
		CreatedAt:  artifact.GeneratedAt,
	}
}

func MapExportRecordStoreToApi(record store.ExportRecord) api.ExportHistoryEntry {
	return api.ExportHistoryEntry{
		ID:         record.ID,
		ReportType: record.ReportType,
		Format:     record.Format,
		FileName:   record.FileName,
		SizeBytes:  record.SizeBytes,
		Partial:    record.Partial,
		Location:   record.Location,
		CreatedAt:  record.CreatedAt,
	}
}
