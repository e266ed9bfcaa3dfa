// Package deploycfg defines the schema of the JSON input file describing the
// upstream Azure OpenAI endpoints to route through the deployed proxy.
// Loading and validation helpers live in this package as well.
package deploycfg

import "github.com/openclaw/clawdeploy/domain/model"

// DefaultConfigPath is the input file read when no path is given.
const DefaultConfigPath = "azure-openai.json"

// Root is the root structure of the input file.
type Root struct {
	// APIVersion is the Azure OpenAI API version used for every endpoint.
	APIVersion string `json:"apiVersion"`
	// DeploymentName is the Azure OpenAI model deployment identifier; it is
	// also the logical model name routed by the proxy.
	DeploymentName string `json:"deploymentName"`
	// AzureOpenAI lists the upstream backends, in routing order.
	AzureOpenAI []Endpoint `json:"azureOpenAI"`
}

// Endpoint is one upstream backend entry.
type Endpoint struct {
	Name     string `json:"name"`
	Endpoint string `json:"endpoint"`
	Key      string `json:"key"`
}

// Endpoints converts the input entries to domain endpoints.
func (r *Root) Endpoints() []model.Endpoint {
	out := make([]model.Endpoint, 0, len(r.AzureOpenAI))
	for _, e := range r.AzureOpenAI {
		out = append(out, model.Endpoint{Name: e.Name, Endpoint: e.Endpoint, Key: e.Key})
	}
	return out
}
