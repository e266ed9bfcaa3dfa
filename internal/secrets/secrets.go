// Package secrets generates run-scoped credentials and keeps a durable local
// record of the latest values for operator recovery.
package secrets

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
)

// Secrets record keys.
const (
	KeyProxyMasterKey = "LITELLM_MASTER_KEY"
	KeyGatewayToken   = "OPENCLAW_GATEWAY_TOKEN"
)

// tokenBytes is the entropy of each generated token; hex-encoded to 32 chars.
const tokenBytes = 16

// DefaultSecretsPath is the local secrets record written when no path is given.
const DefaultSecretsPath = "deploy-secrets.env"

// Bundle holds the two credentials generated for one run.
type Bundle struct {
	// ProxyMasterKey authenticates requests to the LiteLLM proxy.
	ProxyMasterKey string
	// GatewayToken authenticates operator access to the OpenClaw gateway.
	GatewayToken string
}

// NewToken returns a fresh random token: 16 bytes from crypto/rand encoded
// as 32 lowercase hex characters.
func NewToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// Generate produces two independent tokens.
func Generate() (*Bundle, error) {
	master, err := NewToken()
	if err != nil {
		return nil, fmt.Errorf("generate proxy master key: %w", err)
	}
	token, err := NewToken()
	if err != nil {
		return nil, fmt.Errorf("generate gateway token: %w", err)
	}
	return &Bundle{ProxyMasterKey: master, GatewayToken: token}, nil
}

// WriteFile replaces the secrets record with the bundle's values. The whole
// file is overwritten so stale credentials never linger; there is no append
// or merge.
func (b *Bundle) WriteFile(path string) error {
	content := fmt.Sprintf("%s=%s\n%s=%s\n", KeyProxyMasterKey, b.ProxyMasterKey, KeyGatewayToken, b.GatewayToken)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return fmt.Errorf("write secrets record %s: %w", path, err)
	}
	return nil
}

// ReadFile parses an existing secrets record. Both keys must be present.
func ReadFile(path string) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read secrets record %s: %w", path, err)
	}
	var b Bundle
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("malformed secrets record line %q in %s", line, path)
		}
		switch key {
		case KeyProxyMasterKey:
			b.ProxyMasterKey = value
		case KeyGatewayToken:
			b.GatewayToken = value
		}
	}
	if b.ProxyMasterKey == "" || b.GatewayToken == "" {
		return nil, fmt.Errorf("secrets record %s is missing %s or %s", path, KeyProxyMasterKey, KeyGatewayToken)
	}
	return &b, nil
}
