// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SealedTable is an encrypted result set persisted in the archive database.
type SealedTable struct {
	// ID is a UUIDv7 assigned when the table is sealed.
	ID string `json:"id"`

	// Name is a caller-supplied label. It is stored in clear text.
	Name string `json:"name"`

	// Envelope is the base64 envelope text holding the encrypted document.
	Envelope string `json:"-"`

	// Iterations is the PBKDF2 iteration count needed to open the envelope.
	Iterations int `json:"iterations"`

	// RowCount and ColumnCount describe the sealed result set.
	RowCount    int `json:"row_count"`
	ColumnCount int `json:"column_count"`

	// OwnerHash is an argon2id verifier of the sealing password. It lets the
	// archive authorise deletion without decrypting the envelope.
	OwnerHash string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// SealedTableInfo is the public, secret-free view of a [SealedTable].
type SealedTableInfo struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Iterations  int       `json:"iterations"`
	RowCount    int       `json:"row_count"`
	ColumnCount int       `json:"column_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// Info strips the envelope and owner hash from t.
func (t SealedTable) Info() SealedTableInfo {
	return SealedTableInfo{
		ID:          t.ID,
		Name:        t.Name,
		Iterations:  t.Iterations,
		RowCount:    t.RowCount,
		ColumnCount: t.ColumnCount,
		CreatedAt:   t.CreatedAt,
	}
}

// SealQueryRequest asks the archive to run Query against the source database
// and seal its result set under Password. Iterations may be omitted to use
// the server default.
type SealQueryRequest struct {
	Name       string `json:"name" validate:"required"`
	Query      string `json:"query" validate:"required"`
	Args       []any  `json:"args,omitempty"`
	Password   string `json:"password" validate:"required"`
	Iterations int    `json:"iterations" validate:"omitempty,min=1000,max=100000"`
}
