package service

import (
	"context"

	"github.com/cloudflare/circl/dh/x25519"

	"github.com/MKhiriev/go-sealed-table/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// TableCipherService seals typed result sets into password-protected
// envelopes and opens them again. Envelopes travel as base64 text.
type TableCipherService interface {
	// EncryptRows serialises rows into a self-describing document and seals
	// it under password. Iterations of zero selects the configured default.
	EncryptRows(ctx context.Context, rows []models.TypedRow, password string, iterations int) (string, error)

	// DecryptRows opens envelopeText and reconstructs the typed rows. The
	// iteration count must match the one used for sealing.
	DecryptRows(ctx context.Context, envelopeText, password string, iterations int) ([]models.TypedRow, error)

	// DeriveKey pays the PBKDF2 cost once. A nil salt is replaced with a
	// fresh random one of the configured length.
	DeriveKey(ctx context.Context, password string, salt []byte, iterations int) (models.DerivedKey, error)

	EncryptRowsWithKey(ctx context.Context, rows []models.TypedRow, key models.DerivedKey) (string, error)
	DecryptRowsWithKey(ctx context.Context, envelopeText string, key models.DerivedKey) ([]models.TypedRow, error)

	// SharedKey agrees on a table key with a peer instead of a password.
	SharedKey(ctx context.Context, private x25519.Key, peerPublic, salt []byte) (models.DerivedKey, error)
}

// ArchiveService keeps sealed result sets of the source database in the
// archive database.
type ArchiveService interface {
	// SealQuery runs req.Query on the source database, seals the result set
	// and stores it together with a verifier of req.Password.
	SealQuery(ctx context.Context, req models.SealQueryRequest) (models.SealedTableInfo, error)

	// Open decrypts the sealed table id.
	Open(ctx context.Context, id, password string) ([]models.TypedRow, error)

	// Restore decrypts the sealed table id and inserts its rows into
	// targetTable of the source database.
	Restore(ctx context.Context, id, password, targetTable string) (int64, error)

	List(ctx context.Context) ([]models.SealedTableInfo, error)

	// Delete removes the sealed table id once password matches the stored
	// verifier.
	Delete(ctx context.Context, id, password string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ArchiveServiceWrapper defines middleware composition for ArchiveService.
// Implementations wrap an existing ArchiveService to add behavior such as
// logging or validating.
type ArchiveServiceWrapper interface {
	Wrap(ArchiveService) ArchiveService // returns a decorated ArchiveService applying additional behavior
}

// IDGenerator produces identifiers for new sealed tables.
type IDGenerator interface {
	Generate() string
}
