package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/flux-signup/internal/config"
	"github.com/MKhiriev/flux-signup/internal/logger"
	"github.com/MKhiriev/flux-signup/internal/utils"
	"github.com/MKhiriev/flux-signup/models"
	"github.com/go-resty/resty/v2"
)

const traceIDHeader = "X-Trace-ID"

type httpServerAdapter struct {
	client *utils.HTTPClient
	hasher *utils.Hasher

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout. When appCfg.HashKey is set, submitted bodies are signed with
// HMAC-SHA256 in the HashSHA256 header.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		hasher: utils.NewHasher(appCfg.HashKey),
		logger: logger,
	}, nil
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

// ValidateField implements [ServerAdapter]. It POSTs the field name and the
// full form to POST /api/signup/validate-field and returns the message from
// the response. Returns [ErrBadRequest] (wrapped) for an unknown field.
func (h *httpServerAdapter) ValidateField(ctx context.Context, field models.Field, values models.SignupValues) (string, error) {
	resp, err := h.request(ctx).
		SetBody(models.FieldValidationRequest{Field: field, Values: values}).
		Post("/api/signup/validate-field")
	if err != nil {
		return "", fmt.Errorf("validate field request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var out models.FieldValidationResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return "", fmt.Errorf("decode validate field response: %w", err)
	}

	return out.Error, nil
}

// Validate implements [ServerAdapter] via POST /api/signup/validate.
func (h *httpServerAdapter) Validate(ctx context.Context, values models.SignupValues) (models.ValidationResult, error) {
	resp, err := h.request(ctx).
		SetBody(models.ValidateRequest{Values: values}).
		Post("/api/signup/validate")
	if err != nil {
		return models.ValidationResult{}, fmt.Errorf("validate request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ValidationResult{}, err
	}

	return decodeValidationResult(resp.Body())
}

// Strength implements [ServerAdapter] via POST /api/signup/strength.
func (h *httpServerAdapter) Strength(ctx context.Context, password string) (models.PasswordStrength, error) {
	resp, err := h.request(ctx).
		SetBody(models.StrengthRequest{Password: password}).
		Post("/api/signup/strength")
	if err != nil {
		return models.PasswordStrength{}, fmt.Errorf("strength request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PasswordStrength{}, err
	}

	var out models.PasswordStrength
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.PasswordStrength{}, fmt.Errorf("decode strength response: %w", err)
	}

	return out, nil
}

// Submit implements [ServerAdapter]. The body is serialised up front so that
// the HashSHA256 header covers exactly the bytes sent to POST /api/signup.
// A 422 response body is decoded and returned alongside the error.
func (h *httpServerAdapter) Submit(ctx context.Context, values models.SignupValues) (models.ValidationResult, error) {
	body, err := json.Marshal(models.ValidateRequest{Values: values})
	if err != nil {
		return models.ValidationResult{}, fmt.Errorf("encode submit request: %w", err)
	}

	req := h.request(ctx).SetBody(body)
	if h.hasher.Enabled() {
		req.SetHeader(utils.HashHeader, h.hasher.Sign(body))
	}

	resp, err := req.Post("/api/signup")
	if err != nil {
		return models.ValidationResult{}, fmt.Errorf("submit request: %w", err)
	}

	if err = mapHTTPError(resp); err != nil {
		if !errors.Is(err, ErrUnprocessableEntity) {
			return models.ValidationResult{}, err
		}

		result, decodeErr := decodeValidationResult(resp.Body())
		if decodeErr != nil {
			return models.ValidationResult{}, errors.Join(err, decodeErr)
		}
		h.logger.Debug().Str("func", "*httpServerAdapter.Submit").
			Any("errors", result.Errors).
			Msg("server rejected signup")
		return result, err
	}

	return decodeValidationResult(resp.Body())
}

// Version implements [ServerAdapter] via GET /api/version.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

// request prepares a JSON request carrying the caller's trace ID, if any.
func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")

	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(traceIDHeader, traceID)
	}
	return req
}

func decodeValidationResult(body []byte) (models.ValidationResult, error) {
	var out models.ValidationResult
	if err := json.Unmarshal(body, &out); err != nil {
		return models.ValidationResult{}, fmt.Errorf("decode validation result: %w", err)
	}
	if out.Errors == nil {
		out.Errors = models.FormErrors{}
	}
	return out, nil
}
