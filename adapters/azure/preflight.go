package azure

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
)

// armScope is the token scope probed to verify an authenticated session.
const armScope = "https://management.azure.com/.default"

// requiredTools must be on PATH before any mutation: az backs the CLI
// credential, kubectl backs the operator follow-up command.
var requiredTools = []string{"az", "kubectl"}

// Preflight verifies every external prerequisite and fails with the name of
// the missing one. It performs no mutation.
func (c *Client) Preflight(ctx context.Context) error {
	for _, tool := range requiredTools {
		if _, err := exec.LookPath(tool); err != nil {
			return fmt.Errorf("required tool %q not found in PATH", tool)
		}
	}

	// A live token proves the operator is logged in (`az login`).
	if _, err := c.cred.GetToken(ctx, policy.TokenRequestOptions{Scopes: []string{armScope}}); err != nil {
		return fmt.Errorf("no authenticated Azure session, run `az login`: %w", err)
	}
	return nil
}
