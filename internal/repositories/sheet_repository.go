package repositories

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"client-directory/internal/config"
	"client-directory/internal/models"
)

var (
	ErrSheetUnavailable = errors.New("sheet source unavailable")
	errPayloadTooLarge  = errors.New("response body exceeds size limit")
	ErrEmptySheet       = errors.New("sheet payload is empty")
	ErrUnknownSheet     = errors.New("unknown sheet")
)

// maxPayloadBytes is the largest response body accepted; anything bigger fails the fetch
const maxPayloadBytes = 16 << 20

type userAgentTransport struct {
	userAgent string
	base      http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())

	req.Header.Set("Accept", "text/csv")
	if t.userAgent != "" {
		req.Header.Set("User-Agent", t.userAgent)
	}

	return t.base.RoundTrip(req)
}

// GoogleSheetSource reads tabs of a published spreadsheet through the CSV export endpoint
type GoogleSheetSource struct {
	config   *config.SheetsConfig
	client   *http.Client
	logger   *slog.Logger
	maxBytes int64
}

// NewGoogleSheetSource creates a sheet source for the configured spreadsheet
func NewGoogleSheetSource(cfg *config.SheetsConfig, logger *slog.Logger) *GoogleSheetSource {
	return NewGoogleSheetSourceWithTransport(cfg, http.DefaultTransport, logger)
}

// NewGoogleSheetSourceWithTransport creates a sheet source on top of base
func NewGoogleSheetSourceWithTransport(cfg *config.SheetsConfig, base http.RoundTripper, logger *slog.Logger) *GoogleSheetSource {
	client := &http.Client{
		Transport: &userAgentTransport{userAgent: cfg.UserAgent, base: base},
		Timeout:   cfg.FetchTimeout,
	}

	return &GoogleSheetSource{
		config:   cfg,
		client:   client,
		logger:   logger,
		maxBytes: maxPayloadBytes,
	}
}

// TabFor maps a logical sheet to the tab name in the spreadsheet
func (s *GoogleSheetSource) TabFor(sheet models.SheetName) (string, error) {
	switch sheet {
	case models.SheetClients:
		return s.config.ClientsTab, nil
	case models.SheetAccounts:
		return s.config.AccountsTab, nil
	case models.SheetBranches:
		return s.config.BranchesTab, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSheet, sheet)
}

// ExportURL returns the CSV export URL of a tab
func (s *GoogleSheetSource) ExportURL(tab string) string {
	query := url.Values{}
	query.Set("tqx", "out:csv")
	query.Set("sheet", tab)

	return fmt.Sprintf("%s/%s/gviz/tq?%s", s.config.BaseURL, url.PathEscape(s.config.SpreadsheetID), query.Encode())
}

// FetchCSV downloads the CSV text of one sheet. Transport failures and non-2xx
// responses are reported as ErrSheetUnavailable; a body with no content is
// ErrEmptySheet.
func (s *GoogleSheetSource) FetchCSV(ctx context.Context, sheet models.SheetName) (string, error) {
	tab, err := s.TabFor(sheet)
	if err != nil {
		return "", err
	}

	req, err := s.buildRequest(ctx, s.ExportURL(tab))
	if err != nil {
		return "", err
	}

	resp, body, err := s.do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrSheetUnavailable, sheet, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.logger.Warn(
			"sheet export returned non-success status",
			"sheet", string(sheet),
			"status", resp.StatusCode,
		)
		return "", fmt.Errorf("%w: %s: status %d", ErrSheetUnavailable, sheet, resp.StatusCode)
	}

	text := string(body)
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: %s", ErrEmptySheet, sheet)
	}

	return text, nil
}

func (s *GoogleSheetSource) buildRequest(ctx context.Context, rawURL string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	return req, nil
}

func (s *GoogleSheetSource) do(req *http.Request) (*http.Response, []byte, error) {
	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error(
			"sheet request failed",
			"method", req.Method,
			"url", req.URL.String(),
			"error", err,
		)
		return nil, nil, err
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, s.maxBytes+1))
	resp.Body.Close()

	if err != nil {
		return nil, nil, fmt.Errorf("read response body: %w", err)
	}
	if int64(len(body)) > s.maxBytes {
		s.logger.Error(
			"sheet response too large",
			"url", req.URL.String(),
			"limit_bytes", s.maxBytes,
		)
		return nil, nil, fmt.Errorf("%w: limit %d bytes", errPayloadTooLarge, s.maxBytes)
	}

	return resp, body, nil
}
