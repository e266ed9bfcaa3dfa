package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
)

// EnsureResourceGroup creates the resource group when absent and reports
// whether it was created. An existing group is left untouched.
func (c *Client) EnsureResourceGroup(ctx context.Context, name, location string) (created bool, err error) {
	ctx, cleanup := c.withOpLogger(ctx, "EnsureResourceGroup", name)
	defer func() { cleanup(err) }()

	existence, err := c.groups.CheckExistence(ctx, name, nil)
	if err != nil {
		return false, fmt.Errorf("probe resource group %s: %w", name, err)
	}
	if existence.Success {
		return false, nil
	}

	params := armresources.ResourceGroup{
		Location: to.Ptr(location),
		Tags: map[string]*string{
			"managed-by": to.Ptr("clawdeploy"),
		},
	}
	if _, err := c.groups.CreateOrUpdate(ctx, name, params, nil); err != nil {
		return false, fmt.Errorf("create resource group %s: %w", name, err)
	}
	return true, nil
}
