// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// WireField is the JSON form of a [TypedField]. Value carries the canonical
// text of the typed value; nil means SQL NULL.
type WireField struct {
	Name  string  `json:"name"`
	Type  TypeTag `json:"type"`
	Value *string `json:"value"`
}

// WireRow is the JSON form of a [TypedRow].
type WireRow []WireField

// EncryptRequest is the body of POST /api/tables/encrypt.
// Iterations may be omitted to use the server default.
type EncryptRequest struct {
	Rows       []WireRow `json:"rows"`
	Password   string    `json:"password" validate:"required"`
	Iterations int       `json:"iterations" validate:"omitempty,min=1000,max=100000"`
}

// EncryptResponse carries the base64 envelope text.
type EncryptResponse struct {
	Envelope string `json:"envelope"`
}

// DecryptRequest is the body of POST /api/tables/decrypt.
type DecryptRequest struct {
	Envelope   string `json:"envelope" validate:"required"`
	Password   string `json:"password" validate:"required"`
	Iterations int    `json:"iterations" validate:"omitempty,min=1000,max=100000"`
}

// DecryptResponse carries the reconstructed table.
type DecryptResponse struct {
	Columns []ColumnMetadata `json:"columns"`
	Rows    []WireRow        `json:"rows"`
}

// OpenArchiveRequest is the body of POST /api/archives/{id}/open and
// DELETE /api/archives/{id}.
type OpenArchiveRequest struct {
	Password string `json:"password" validate:"required"`
}

// RestoreArchiveRequest is the body of POST /api/archives/{id}/restore.
type RestoreArchiveRequest struct {
	Password    string `json:"password" validate:"required"`
	TargetTable string `json:"target_table" validate:"required"`
}

// RestoreArchiveResponse reports how many rows were written to the target.
type RestoreArchiveResponse struct {
	Restored int64 `json:"restored"`
}

// VersionResponse is returned by GET /api/version.
type VersionResponse struct {
	Version string `json:"version"`
}
