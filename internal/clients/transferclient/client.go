package transferclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"

	"github.com/naffleslabs/nft-staking-service/internal/config"
	"github.com/naffleslabs/nft-staking-service/internal/observability/metrics"
)

const transferPath = "/v1/transfers"

type Client struct {
	httpClient *http.Client
	cfg        *config.TransferConfig
}

func NewClient(cfg *config.TransferConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cfg:        cfg,
	}
}

type transferRequest struct {
	AssetID string `json:"asset_id"`
	From    string `json:"from"`
	To      string `json:"to"`
	Amount  uint64 `json:"amount"`
}

type transferResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Transfer moves one unit of the asset between two accounts. Transient
// failures (5xx, network) are retried; a definitive rejection from the
// transfer service is returned immediately.
func (c *Client) Transfer(ctx context.Context, assetID, from, to string) error {
	start := time.Now()
	err := retry.Do(
		func() error {
			return c.sendTransfer(ctx, assetID, from, to)
		},
		retry.Context(ctx),
		retry.Attempts(c.cfg.MaxRetryTimes),
		retry.Delay(c.cfg.RetryInterval),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			_, definitive := err.(*RejectedError)
			return !definitive
		}),
		retry.OnRetry(func(n uint, err error) {
			log.Ctx(ctx).Warn().
				Err(err).
				Uint("attempt", n).
				Str("assetId", assetID).
				Msg("Retrying asset transfer")
		}),
	)
	metrics.RecordTransferClientLatency(time.Since(start), "Transfer", err != nil)
	return err
}

func (c *Client) sendTransfer(ctx context.Context, assetID, from, to string) error {
	body, err := json.Marshal(transferRequest{
		AssetID: assetID,
		From:    from,
		To:      to,
		Amount:  1,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.cfg.Endpoint+transferPath, bytes.NewReader(body),
	)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("transfer service returned %d", resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var result transferResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return fmt.Errorf("failed to decode transfer response: %w", err)
	}

	if resp.StatusCode != http.StatusOK || result.Status != "completed" {
		return &RejectedError{
			AssetID: assetID,
			Reason:  result.Error,
		}
	}
	return nil
}

// RejectedError is a definitive rejection by the transfer service; retrying
// the same request cannot succeed.
type RejectedError struct {
	AssetID string
	Reason  string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("transfer of asset %s rejected: %s", e.AssetID, e.Reason)
}
