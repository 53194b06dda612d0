package payment

import "fmt"

const (
	momoProductionEndpoint = "https://payment.momo.vn/v2/gateway/api/create"
	momoSandboxEndpoint    = "https://test-payment.momo.vn/v2/gateway/api/create"
)

// MomoConfig holds the merchant credentials for the Momo gateway
type MomoConfig struct {
	PartnerCode string
	AccessKey   string
	SecretKey   string
	RedirectURL string // where the buyer lands after paying
	IPNURL      string // where Momo posts the payment result
	Sandbox     bool
}

// Validate checks that every required credential is present
func (c *MomoConfig) Validate() error {
	if c.PartnerCode == "" {
		return fmt.Errorf("momo: partner code is required")
	}
	if c.AccessKey == "" {
		return fmt.Errorf("momo: access key is required")
	}
	if c.SecretKey == "" {
		return fmt.Errorf("momo: secret key is required")
	}
	if c.RedirectURL == "" {
		return fmt.Errorf("momo: redirect URL is required")
	}
	if c.IPNURL == "" {
		return fmt.Errorf("momo: IPN URL is required")
	}
	return nil
}

// Endpoint returns the create-payment endpoint for the configured environment
func (c *MomoConfig) Endpoint() string {
	if c.Sandbox {
		return momoSandboxEndpoint
	}
	return momoProductionEndpoint
}
