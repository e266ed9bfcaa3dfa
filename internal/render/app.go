package render

import (
	"encoding/json"
	"fmt"

	"github.com/openclaw/clawdeploy/domain/model"
	"github.com/openclaw/clawdeploy/internal/naming"
	"github.com/openclaw/clawdeploy/internal/secrets"
)

// Model catalog constants for the served model entries.
const (
	modelContextWindow = 128000
	modelMaxTokens     = 16384
)

// AppConfig is the root of the OpenClaw gateway configuration.
type AppConfig struct {
	Gateway AppGateway `json:"gateway"`
	Agents  AppAgents  `json:"agents"`
	Models  AppModels  `json:"models"`
}

// AppGateway configures the local gateway listener.
type AppGateway struct {
	Mode string         `json:"mode"`
	Bind string         `json:"bind"`
	Port int            `json:"port"`
	Auth AppGatewayAuth `json:"auth"`
}

// AppGatewayAuth configures token-based gateway authentication.
type AppGatewayAuth struct {
	Mode  string `json:"mode"`
	Token string `json:"token"`
}

// AppAgents holds default agent settings.
type AppAgents struct {
	Defaults AppAgentDefaults `json:"defaults"`
}

// AppAgentDefaults points agents at the deployed proxy by default.
type AppAgentDefaults struct {
	Model AppAgentModel `json:"model"`
}

// AppAgentModel selects the primary model reference for agents.
type AppAgentModel struct {
	Primary string `json:"primary"`
}

// AppModels declares the model providers merged into the gateway catalog.
type AppModels struct {
	Mode      string       `json:"mode"`
	Providers AppProviders `json:"providers"`
}

// AppProviders lists the configured providers. A struct rather than a map
// keeps serialization order fixed.
type AppProviders struct {
	LiteLLM AppProvider `json:"litellm"`
}

// AppProvider describes one OpenAI-compatible provider endpoint.
type AppProvider struct {
	BaseURL string     `json:"baseUrl"`
	APIKey  string     `json:"apiKey"`
	API     string     `json:"api"`
	Models  []AppModel `json:"models"`
}

// AppModel is one model catalog entry.
type AppModel struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Input         []string `json:"input"`
	ContextWindow int      `json:"contextWindow"`
	MaxTokens     int      `json:"maxTokens"`
}

// App renders the OpenClaw gateway configuration. The gateway listens on the
// fixed local port with token auth, and its model catalog routes through the
// proxy's in-cluster DNS name.
func App(dep model.Deployment, deploymentName string, sec *secrets.Bundle) ([]byte, error) {
	cfg := AppConfig{
		Gateway: AppGateway{
			Mode: "local",
			Bind: "lan",
			Port: naming.GatewayPort,
			Auth: AppGatewayAuth{Mode: "token", Token: sec.GatewayToken},
		},
		Agents: AppAgents{
			Defaults: AppAgentDefaults{
				Model: AppAgentModel{Primary: "litellm/" + deploymentName},
			},
		},
		Models: AppModels{
			Mode: "merge",
			Providers: AppProviders{
				LiteLLM: AppProvider{
					BaseURL: naming.ProxyInClusterURL(dep.Name),
					APIKey:  sec.ProxyMasterKey,
					API:     "openai-completions",
					Models: []AppModel{
						{
							ID:            deploymentName,
							Name:          dep.ModelName,
							Input:         []string{"text"},
							ContextWindow: modelContextWindow,
							MaxTokens:     modelMaxTokens,
						},
					},
				},
			},
		},
	}

	data, err := json.MarshalIndent(&cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal app config: %w", err)
	}
	return append(data, '\n'), nil
}
