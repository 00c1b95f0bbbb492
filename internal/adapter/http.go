package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-sealed-table/internal/codec"
	"github.com/MKhiriev/go-sealed-table/internal/config"
	"github.com/MKhiriev/go-sealed-table/internal/logger"
	"github.com/MKhiriev/go-sealed-table/internal/utils"
	"github.com/MKhiriev/go-sealed-table/models"
)

const (
	hashHeader = "HashSHA256"

	// GET requests are retried on transport errors and 503 responses.
	maxGetRetries  = 2
	retryBaseDelay = 100 * time.Millisecond
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	hashKey string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter].
// It normalises the base URL from adapterCfg.HTTPAddress and, when
// appCfg.HashKey is set, initialises the shared HMAC hasher pool used to
// sign and verify bodies.
//
// Returns an error if adapterCfg.HTTPAddress is empty or is not a valid URL.
func NewHTTPServerAdapter(adapterCfg config.Adapter, appCfg config.App, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	if appCfg.HashKey != "" {
		utils.InitHasherPool(appCfg.HashKey)
	}

	return &httpServerAdapter{client: client, hashKey: appCfg.HashKey, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Version implements [ServerAdapter] via GET /api/version.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	var resp models.VersionResponse
	if err := h.do(ctx, http.MethodGet, "/api/version", nil, &resp); err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	return resp.Version, nil
}

// EncryptRows implements [ServerAdapter] via POST /api/tables/encrypt.
func (h *httpServerAdapter) EncryptRows(ctx context.Context, rows []models.TypedRow, password string, iterations int) (string, error) {
	wire, err := codec.ToWire(rows)
	if err != nil {
		return "", err
	}

	var resp models.EncryptResponse
	req := models.EncryptRequest{Rows: wire, Password: password, Iterations: iterations}
	if err = h.do(ctx, http.MethodPost, "/api/tables/encrypt", req, &resp); err != nil {
		return "", fmt.Errorf("encrypt request: %w", err)
	}
	return resp.Envelope, nil
}

// DecryptRows implements [ServerAdapter] via POST /api/tables/decrypt.
func (h *httpServerAdapter) DecryptRows(ctx context.Context, envelope, password string, iterations int) ([]models.TypedRow, error) {
	var resp models.DecryptResponse
	req := models.DecryptRequest{Envelope: envelope, Password: password, Iterations: iterations}
	if err := h.do(ctx, http.MethodPost, "/api/tables/decrypt", req, &resp); err != nil {
		return nil, fmt.Errorf("decrypt request: %w", err)
	}
	return codec.FromWire(resp.Rows)
}

// SealQuery implements [ServerAdapter] via POST /api/archives.
func (h *httpServerAdapter) SealQuery(ctx context.Context, req models.SealQueryRequest) (models.SealedTableInfo, error) {
	var info models.SealedTableInfo
	if err := h.do(ctx, http.MethodPost, "/api/archives/", req, &info); err != nil {
		return models.SealedTableInfo{}, fmt.Errorf("seal query request: %w", err)
	}
	return info, nil
}

// List implements [ServerAdapter] via GET /api/archives.
func (h *httpServerAdapter) List(ctx context.Context) ([]models.SealedTableInfo, error) {
	var infos []models.SealedTableInfo
	if err := h.do(ctx, http.MethodGet, "/api/archives/", nil, &infos); err != nil {
		return nil, fmt.Errorf("list archives request: %w", err)
	}
	return infos, nil
}

// Open implements [ServerAdapter] via POST /api/archives/{id}/open.
func (h *httpServerAdapter) Open(ctx context.Context, id, password string) ([]models.TypedRow, error) {
	var resp models.DecryptResponse
	req := models.OpenArchiveRequest{Password: password}
	if err := h.do(ctx, http.MethodPost, archivePath(id)+"/open", req, &resp); err != nil {
		return nil, fmt.Errorf("open archive request: %w", err)
	}
	return codec.FromWire(resp.Rows)
}

// Restore implements [ServerAdapter] via POST /api/archives/{id}/restore.
func (h *httpServerAdapter) Restore(ctx context.Context, id, password, targetTable string) (int64, error) {
	var resp models.RestoreArchiveResponse
	req := models.RestoreArchiveRequest{Password: password, TargetTable: targetTable}
	if err := h.do(ctx, http.MethodPost, archivePath(id)+"/restore", req, &resp); err != nil {
		return 0, fmt.Errorf("restore archive request: %w", err)
	}
	return resp.Restored, nil
}

// Delete implements [ServerAdapter] via DELETE /api/archives/{id}.
func (h *httpServerAdapter) Delete(ctx context.Context, id, password string) error {
	req := models.OpenArchiveRequest{Password: password}
	if err := h.do(ctx, http.MethodDelete, archivePath(id), req, nil); err != nil {
		return fmt.Errorf("delete archive request: %w", err)
	}
	return nil
}

func archivePath(id string) string {
	return "/api/archives/" + url.PathEscape(id)
}

// do sends body as JSON and decodes a 2xx response into result. GET
// requests are retried on transport errors and 503 responses.
func (h *httpServerAdapter) do(ctx context.Context, method, path string, body, result any) error {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
	}

	send := func(ctx context.Context) (*resty.Response, error) {
		req := h.client.R().SetContext(ctx)
		if payload != nil {
			req.SetHeader("Content-Type", "application/json").SetBody(payload)
			if h.hashKey != "" {
				req.SetHeader(hashHeader, utils.SignBody(payload))
			}
		}
		return req.Execute(method, path)
	}

	var resp *resty.Response
	if method == http.MethodGet {
		backoff := retry.WithMaxRetries(maxGetRetries, retry.NewExponential(retryBaseDelay))
		err := retry.Do(ctx, backoff, func(ctx context.Context) error {
			var err error
			resp, err = send(ctx)
			if err != nil {
				h.logger.Warn().Err(err).Str("func", "*httpServerAdapter.do").Str("path", path).Msg("request failed, retrying")
				return retry.RetryableError(err)
			}
			if resp.StatusCode() == http.StatusServiceUnavailable {
				return retry.RetryableError(mapHTTPError(resp))
			}
			return nil
		})
		if err != nil {
			return err
		}
	} else {
		var err error
		if resp, err = send(ctx); err != nil {
			return err
		}
	}

	if err := mapHTTPError(resp); err != nil {
		return err
	}
	if err := h.verifyResponse(resp); err != nil {
		return err
	}

	if result == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err := json.NewDecoder(bytes.NewReader(resp.Body())).Decode(result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// verifyResponse checks the HashSHA256 header of a non-empty response body.
func (h *httpServerAdapter) verifyResponse(resp *resty.Response) error {
	if h.hashKey == "" || len(resp.Body()) == 0 {
		return nil
	}

	if !utils.VerifyBody(resp.Body(), resp.Header().Get(hashHeader)) {
		return ErrHashMismatch
	}
	return nil
}
