package http

import (
	"github.com/MKhiriev/go-sealed-table/internal/logger"
	"github.com/MKhiriev/go-sealed-table/internal/service"
	"github.com/MKhiriev/go-sealed-table/internal/utils"
	"github.com/MKhiriev/go-sealed-table/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator

	// hashKey enables the HashSHA256 integrity middleware when non-empty.
	hashKey string

	idGenerator *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, hashKey string, logger *logger.Logger) *Handler {
	if hashKey != "" {
		utils.InitHasherPool(hashKey)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		validator:   validators.NewRequestValidator(),
		hashKey:     hashKey,
		idGenerator: utils.NewUUIDGenerator(),
		logger:      logger,
	}
}
