// Package payment implements the payment gateway boundary against the Momo
// wallet API. Requests are signed with HMAC-SHA256 over the alphabetically
// ordered request fields, as the gateway requires.
package payment

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ecom/backend/internal/domain/payment"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MomoAdapter implements payment.Gateway against the Momo wallet API
type MomoAdapter struct {
	config     *MomoConfig
	endpoint   string
	httpClient *http.Client
}

// NewMomoAdapter creates a new Momo adapter
func NewMomoAdapter(config *MomoConfig) (*MomoAdapter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &MomoAdapter{
		config:   config,
		endpoint: config.Endpoint(),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

type momoCreateRequest struct {
	PartnerCode string `json:"partnerCode"`
	RequestID   string `json:"requestId"`
	Amount      int64  `json:"amount"`
	OrderID     string `json:"orderId"`
	OrderInfo   string `json:"orderInfo"`
	RedirectURL string `json:"redirectUrl"`
	IPNURL      string `json:"ipnUrl"`
	RequestType string `json:"requestType"`
	ExtraData   string `json:"extraData"`
	Lang        string `json:"lang"`
	Signature   string `json:"signature"`
}

type momoCreateResponse struct {
	ResultCode int    `json:"resultCode"`
	Message    string `json:"message"`
	PayURL     string `json:"payUrl"`
}

// Initiate creates a payment order at the gateway and returns the redirect
// URL the buyer completes the payment on.
func (a *MomoAdapter) Initiate(ctx context.Context, orderID uuid.UUID, amount decimal.Decimal) (*payment.Initiation, error) {
	requestID := uuid.NewString()
	req := momoCreateRequest{
		PartnerCode: a.config.PartnerCode,
		RequestID:   requestID,
		Amount:      amount.IntPart(),
		OrderID:     orderID.String(),
		OrderInfo:   "Order " + orderID.String(),
		RedirectURL: a.config.RedirectURL,
		IPNURL:      a.config.IPNURL,
		RequestType: "captureWallet",
		ExtraData:   "",
		Lang:        "en",
	}
	req.Signature = a.sign(req)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("momo: marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("momo: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("momo: create payment: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("momo: read response: %w", err)
	}

	var created momoCreateResponse
	if err := json.Unmarshal(respBody, &created); err != nil {
		return nil, fmt.Errorf("momo: decode response: %w", err)
	}
	if created.ResultCode != 0 {
		return nil, fmt.Errorf("momo: gateway rejected payment (%d): %s", created.ResultCode, created.Message)
	}

	return &payment.Initiation{
		OrderID:   orderID,
		Amount:    amount,
		PayURL:    created.PayURL,
		RequestID: requestID,
	}, nil
}

// sign computes the HMAC-SHA256 signature over the request fields in the
// field order the gateway prescribes.
func (a *MomoAdapter) sign(req momoCreateRequest) string {
	raw := fmt.Sprintf(
		"accessKey=%s&amount=%d&extraData=%s&ipnUrl=%s&orderId=%s&orderInfo=%s&partnerCode=%s&redirectUrl=%s&requestId=%s&requestType=%s",
		a.config.AccessKey, req.Amount, req.ExtraData, req.IPNURL, req.OrderID,
		req.OrderInfo, req.PartnerCode, req.RedirectURL, req.RequestID, req.RequestType,
	)
	mac := hmac.New(sha256.New, []byte(a.config.SecretKey))
	mac.Write([]byte(raw))
	return hex.EncodeToString(mac.Sum(nil))
}
