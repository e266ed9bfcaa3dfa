// Package azure converges the Azure side of a deployment: resource group and
// AKS managed cluster. All operations are create-if-absent; existing
// resources are never recreated or mutated.
package azure

import (
	"fmt"
	"os"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerservice/armcontainerservice"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
)

// Client holds ARM clients scoped to one subscription.
type Client struct {
	cred           azcore.TokenCredential
	subscriptionID string
	groups         *armresources.ResourceGroupsClient
	clusters       *armcontainerservice.ManagedClustersClient
}

// NewClient builds a Client authenticated via the operator's Azure CLI
// session. The subscription is taken from AZURE_SUBSCRIPTION_ID.
func NewClient() (*Client, error) {
	subscriptionID := os.Getenv("AZURE_SUBSCRIPTION_ID")
	if subscriptionID == "" {
		return nil, fmt.Errorf("AZURE_SUBSCRIPTION_ID environment variable is required")
	}

	cred, err := azidentity.NewAzureCLICredential(nil)
	if err != nil {
		return nil, fmt.Errorf("create Azure credential: %w", err)
	}

	groups, err := armresources.NewResourceGroupsClient(subscriptionID, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("create resource groups client: %w", err)
	}
	clusters, err := armcontainerservice.NewManagedClustersClient(subscriptionID, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("create AKS client: %w", err)
	}

	return &Client{
		cred:           cred,
		subscriptionID: subscriptionID,
		groups:         groups,
		clusters:       clusters,
	}, nil
}
