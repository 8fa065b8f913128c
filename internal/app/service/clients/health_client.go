package clients

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sethgrid/pester"
	"github.com/zaiboost/zaiboost/internal/app/logger"
	"go.uber.org/zap"
)

type (
	HealthClient interface {
		Check(ctx context.Context) (*HealthResponseDto, error)
	}
	HealthClientImpl struct {
		ServiceURL   string
		pesterClient *pester.Client
	}
	//easyjson:json
	HealthResponseDto struct {
		Status string  `json:"status"`
		Uptime float64 `json:"uptime"`
	}
	LoggingRoundTripper struct {
		Proxied http.RoundTripper
	}
)

const healthyStatus = "ok"

func NewHealthClient(serviceURL string, maxRetries int, timeout time.Duration) *HealthClientImpl {
	pesterClient := pester.New()

	pesterClient.Concurrency = 1
	pesterClient.MaxRetries = maxRetries
	pesterClient.Backoff = pester.ExponentialBackoff
	pesterClient.KeepLog = true
	pesterClient.Timeout = timeout
	pesterClient.Transport = &LoggingRoundTripper{Proxied: http.DefaultTransport}

	return &HealthClientImpl{
		ServiceURL:   serviceURL,
		pesterClient: pesterClient,
	}
}

// Check calls /api/health and fails unless the service reports itself ok.
func (hc *HealthClientImpl) Check(ctx context.Context) (*HealthResponseDto, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, hc.ServiceURL+"/api/health", nil)
	if err != nil {
		return nil, fmt.Errorf("error building request: %w", err)
	}
	resp, err := hc.pesterClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	dto := &HealthResponseDto{}
	if err = dto.UnmarshalJSON(body); err != nil {
		return nil, fmt.Errorf("error unmarshalling response to DTO: %w", err)
	}
	if dto.Status != healthyStatus {
		return dto, fmt.Errorf("service reports status %q", dto.Status)
	}
	return dto, nil
}

func (rt *LoggingRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	logger.Log.Debug("health request",
		zap.String("Method", r.Method),
		zap.String("Path", r.URL.String()),
	)
	response, err := rt.Proxied.RoundTrip(r)
	if err != nil {
		logger.Log.Warn("health request error", zap.Error(err))
		return nil, err
	}
	logResponse(response)
	return response, nil
}

func logResponse(response *http.Response) {
	bodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		logger.Log.Error("health response error", zap.Error(err))
		return
	}
	response.Body.Close()
	response.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
	body := string(bodyBytes)
	if len(body) == 0 {
		body = "empty body"
	}

	logger.Log.Debug("health response",
		zap.Int("Status", response.StatusCode),
		zap.Int64("Content-Length", response.ContentLength),
		zap.String("Body", body),
	)
}
