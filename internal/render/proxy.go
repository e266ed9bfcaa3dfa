// Package render produces the two generated configuration artifacts: the
// LiteLLM proxy config (YAML) and the OpenClaw gateway config (JSON). Both
// renderers are pure: identical inputs yield byte-identical output. The
// artifacts are built as typed structures and serialized as the final step;
// no placeholder substitution is performed on text.
package render

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/openclaw/clawdeploy/domain/model"
	"github.com/openclaw/clawdeploy/internal/secrets"
)

// ProxyConfig is the root of the LiteLLM proxy configuration.
type ProxyConfig struct {
	ModelList       []ProxyModelRoute    `yaml:"model_list"`
	GeneralSettings ProxyGeneralSettings `yaml:"general_settings"`
}

// ProxyModelRoute maps a logical model name to one upstream backend.
type ProxyModelRoute struct {
	ModelName     string           `yaml:"model_name"`
	LiteLLMParams ProxyModelParams `yaml:"litellm_params"`
}

// ProxyModelParams carries the upstream connection parameters of one route.
type ProxyModelParams struct {
	Model      string `yaml:"model"`
	APIBase    string `yaml:"api_base"`
	APIKey     string `yaml:"api_key"`
	APIVersion string `yaml:"api_version"`
}

// ProxyGeneralSettings holds proxy-global settings.
type ProxyGeneralSettings struct {
	MasterKey string `yaml:"master_key"`
}

// Proxy renders the LiteLLM proxy configuration. One route is emitted per
// endpoint, all sharing the logical model name so the proxy load-balances
// across the configured backends. Trailing slashes are stripped from
// endpoint URLs before embedding.
func Proxy(endpoints []model.Endpoint, apiVersion, deploymentName string, sec *secrets.Bundle) ([]byte, error) {
	cfg := ProxyConfig{
		ModelList:       make([]ProxyModelRoute, 0, len(endpoints)),
		GeneralSettings: ProxyGeneralSettings{MasterKey: sec.ProxyMasterKey},
	}
	for _, e := range endpoints {
		cfg.ModelList = append(cfg.ModelList, ProxyModelRoute{
			ModelName: deploymentName,
			LiteLLMParams: ProxyModelParams{
				Model:      "azure/" + deploymentName,
				APIBase:    NormalizeBaseURL(e.Endpoint),
				APIKey:     e.Key,
				APIVersion: apiVersion,
			},
		})
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal proxy config: %w", err)
	}
	return data, nil
}

// NormalizeBaseURL strips any trailing slashes from an endpoint URL.
func NormalizeBaseURL(u string) string {
	return strings.TrimRight(u, "/")
}
