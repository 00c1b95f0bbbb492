package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrInvalidArchiveID  = errors.New("invalid archive id")
	ErrEmptyTargetTable  = errors.New("no target table was given")
	ErrEncryptingRows    = errors.New("error encrypting rows")
	ErrDecryptingRows    = errors.New("error decrypting rows")
	ErrSealingQuery      = errors.New("error sealing query result")
	ErrHashingPassword   = errors.New("error hashing password")
	ErrVerifyingPassword = errors.New("error verifying password")
)
