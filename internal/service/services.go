package service

import (
	"fmt"

	"github.com/MKhiriev/go-sealed-table/internal/config"
	"github.com/MKhiriev/go-sealed-table/internal/crypto"
	"github.com/MKhiriev/go-sealed-table/internal/logger"
	"github.com/MKhiriev/go-sealed-table/internal/store"
)

type Services struct {
	TableCipherService TableCipherService
	ArchiveService     ArchiveService
	AppInfoService     AppInfoService
}

// NewServices wires the services on top of storages. keyCache is optional
// and only speeds up repeated decryption under the same password.
func NewServices(storages *store.Storages, keyCache *crypto.KeyCache, cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	cipher := NewTableCipherService(crypto.NewEnvelopeService(), keyCache, cfg, logger)
	archive := NewArchiveValidationService().Wrap(NewArchiveService(cipher, storages, cfg, logger))

	return &Services{
		TableCipherService: cipher,
		ArchiveService:     archive,
		AppInfoService:     appInfo,
	}, nil
}
