package deploycfg

import (
	"fmt"

	"github.com/openclaw/clawdeploy/domain/model"
)

// Validate checks that every required field of the input file is populated.
func (r *Root) Validate() error {
	if r.APIVersion == "" {
		return fmt.Errorf("%w: apiVersion is required", model.ErrConfigInvalid)
	}
	if r.DeploymentName == "" {
		return fmt.Errorf("%w: deploymentName is required", model.ErrConfigInvalid)
	}
	if len(r.AzureOpenAI) == 0 {
		return fmt.Errorf("%w: azureOpenAI must list at least one endpoint", model.ErrConfigInvalid)
	}
	for i, e := range r.AzureOpenAI {
		if e.Name == "" {
			return fmt.Errorf("%w: azureOpenAI[%d].name is required", model.ErrConfigInvalid, i)
		}
		if e.Endpoint == "" {
			return fmt.Errorf("%w: azureOpenAI[%d].endpoint is required", model.ErrConfigInvalid, i)
		}
		if e.Key == "" {
			return fmt.Errorf("%w: azureOpenAI[%d].key is required", model.ErrConfigInvalid, i)
		}
	}
	return nil
}
