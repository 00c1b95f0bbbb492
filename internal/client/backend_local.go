package client

import (
	"context"

	"github.com/MKhiriev/go-sealed-table/internal/service"
	"github.com/MKhiriev/go-sealed-table/models"
)

type localBackend struct {
	services *service.Services
}

// NewLocalBackend serves subcommands from local services.
func NewLocalBackend(services *service.Services) Backend {
	return &localBackend{services: services}
}

func (b *localBackend) Version(ctx context.Context) (string, error) {
	return b.services.AppInfoService.GetAppVersion(ctx), nil
}

func (b *localBackend) EncryptRows(ctx context.Context, rows []models.TypedRow, password string, iterations int) (string, error) {
	return b.services.TableCipherService.EncryptRows(ctx, rows, password, iterations)
}

func (b *localBackend) DecryptRows(ctx context.Context, envelope, password string, iterations int) ([]models.TypedRow, error) {
	return b.services.TableCipherService.DecryptRows(ctx, envelope, password, iterations)
}

func (b *localBackend) SealQuery(ctx context.Context, req models.SealQueryRequest) (models.SealedTableInfo, error) {
	return b.services.ArchiveService.SealQuery(ctx, req)
}

func (b *localBackend) List(ctx context.Context) ([]models.SealedTableInfo, error) {
	return b.services.ArchiveService.List(ctx)
}

func (b *localBackend) Open(ctx context.Context, id, password string) ([]models.TypedRow, error) {
	return b.services.ArchiveService.Open(ctx, id, password)
}

func (b *localBackend) Restore(ctx context.Context, id, password, targetTable string) (int64, error) {
	return b.services.ArchiveService.Restore(ctx, id, password, targetTable)
}

func (b *localBackend) Delete(ctx context.Context, id, password string) error {
	return b.services.ArchiveService.Delete(ctx, id, password)
}
