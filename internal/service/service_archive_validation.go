package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-sealed-table/internal/validators"
	"github.com/MKhiriev/go-sealed-table/models"
)

type ArchiveValidationService struct {
	inner     ArchiveService
	validator validators.Validator
}

func NewArchiveValidationService() ArchiveServiceWrapper {
	return &ArchiveValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *ArchiveValidationService) SealQuery(ctx context.Context, req models.SealQueryRequest) (models.SealedTableInfo, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.SealedTableInfo{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.SealQuery(ctx, req)
}

func (v *ArchiveValidationService) Open(ctx context.Context, id, password string) ([]models.TypedRow, error) {
	if err := validateArchiveID(id); err != nil {
		return nil, err
	}
	if err := v.validator.Validate(ctx, models.OpenArchiveRequest{Password: password}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Open(ctx, id, password)
}

func (v *ArchiveValidationService) Restore(ctx context.Context, id, password, targetTable string) (int64, error) {
	if err := validateArchiveID(id); err != nil {
		return 0, err
	}
	req := models.RestoreArchiveRequest{Password: password, TargetTable: targetTable}
	if err := v.validator.Validate(ctx, req); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Restore(ctx, id, password, targetTable)
}

func (v *ArchiveValidationService) List(ctx context.Context) ([]models.SealedTableInfo, error) {
	return v.inner.List(ctx)
}

func (v *ArchiveValidationService) Delete(ctx context.Context, id, password string) error {
	if err := validateArchiveID(id); err != nil {
		return err
	}
	if err := v.validator.Validate(ctx, models.OpenArchiveRequest{Password: password}); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Delete(ctx, id, password)
}

func (v *ArchiveValidationService) Wrap(wrapper ArchiveService) ArchiveService {
	v.inner = wrapper
	return v
}

// validateArchiveID accepts only canonical UUIDs, the form sealed table IDs
// are generated in.
func validateArchiveID(id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil || parsed.String() != id {
		return fmt.Errorf("%w: %q", ErrInvalidArchiveID, id)
	}
	return nil
}
