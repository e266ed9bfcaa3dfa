package azure

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerservice/armcontainerservice"

	"github.com/openclaw/clawdeploy/internal/pollwait"
)

// Fixed cluster shape: one system node, managed identity, no SSH material.
const (
	agentPoolName  = "nodepool1"
	agentNodeCount = 1
	agentVMSize    = "Standard_D4s_v3"
	agentMaxPods   = 30
)

// clusterReadyBudget bounds the readiness wait: 10s probes, 10 min ceiling.
var clusterReadyBudget = pollwait.Budget{Interval: 10 * time.Second, MaxAttempts: 60}

// EnsureCluster creates the AKS cluster when absent and reports whether
// creation was started. An existing cluster is left untouched; readiness is
// tracked separately by WaitClusterReady.
func (c *Client) EnsureCluster(ctx context.Context, resourceGroup, name, location string) (created bool, err error) {
	ctx, cleanup := c.withOpLogger(ctx, "EnsureCluster", name)
	defer func() { cleanup(err) }()

	_, err = c.clusters.Get(ctx, resourceGroup, name, nil)
	if err == nil {
		return false, nil
	}
	var respErr *azcore.ResponseError
	if !errors.As(err, &respErr) || respErr.StatusCode != http.StatusNotFound {
		return false, fmt.Errorf("probe AKS cluster %s: %w", name, err)
	}

	params := armcontainerservice.ManagedCluster{
		Location: to.Ptr(location),
		Tags: map[string]*string{
			"managed-by": to.Ptr("clawdeploy"),
		},
		Identity: &armcontainerservice.ManagedClusterIdentity{
			Type: to.Ptr(armcontainerservice.ResourceIdentityTypeSystemAssigned),
		},
		Properties: &armcontainerservice.ManagedClusterProperties{
			DNSPrefix: to.Ptr(name),
			AgentPoolProfiles: []*armcontainerservice.ManagedClusterAgentPoolProfile{
				{
					Name:    to.Ptr(agentPoolName),
					Count:   to.Ptr[int32](agentNodeCount),
					VMSize:  to.Ptr(agentVMSize),
					OSType:  to.Ptr(armcontainerservice.OSTypeLinux),
					Type:    to.Ptr(armcontainerservice.AgentPoolTypeVirtualMachineScaleSets),
					Mode:    to.Ptr(armcontainerservice.AgentPoolModeSystem),
					MaxPods: to.Ptr[int32](agentMaxPods),
				},
			},
			ServicePrincipalProfile: &armcontainerservice.ManagedClusterServicePrincipalProfile{
				ClientID: to.Ptr("msi"),
			},
		},
	}

	// Progress is observed through WaitClusterReady's bounded Get probes,
	// not the SDK poller.
	if _, err := c.clusters.BeginCreateOrUpdate(ctx, resourceGroup, name, params, nil); err != nil {
		return false, fmt.Errorf("start AKS cluster creation %s: %w", name, err)
	}
	return true, nil
}

// provisioningDone classifies one ARM provisioningState probe. Succeeded is
// terminal success; Failed and Canceled are terminal failures; anything else
// means still in progress.
func provisioningDone(state string) (bool, error) {
	switch state {
	case "Succeeded":
		return true, nil
	case "Failed", "Canceled":
		return false, fmt.Errorf("provisioning ended in state %s", strings.ToLower(state))
	default:
		return false, nil
	}
}

// WaitClusterReady polls the cluster's provisioningState until it reaches
// Succeeded, fails on a terminal error state, or exhausts the budget.
func (c *Client) WaitClusterReady(ctx context.Context, resourceGroup, name string) (err error) {
	ctx, cleanup := c.withOpLogger(ctx, "WaitClusterReady", name)
	defer func() { cleanup(err) }()

	probe := func(ctx context.Context) (bool, error) {
		mc, err := c.clusters.Get(ctx, resourceGroup, name, nil)
		if err != nil {
			return false, fmt.Errorf("probe AKS cluster %s: %w", name, err)
		}
		state := ""
		if mc.Properties != nil && mc.Properties.ProvisioningState != nil {
			state = *mc.Properties.ProvisioningState
		}
		return provisioningDone(state)
	}
	if err := pollwait.Wait(ctx, clusterReadyBudget, probe); err != nil {
		return fmt.Errorf("wait for AKS cluster %s: %w", name, err)
	}
	return nil
}

// Kubeconfig returns admin kubeconfig bytes for the cluster.
func (c *Client) Kubeconfig(ctx context.Context, resourceGroup, name string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	credResult, err := c.clusters.ListClusterAdminCredentials(ctx, resourceGroup, name, nil)
	if err != nil {
		return nil, fmt.Errorf("get cluster credentials for %s: %w", name, err)
	}
	if len(credResult.Kubeconfigs) == 0 || len(credResult.Kubeconfigs[0].Value) == 0 {
		return nil, fmt.Errorf("no kubeconfig found for cluster %s", name)
	}
	return credResult.Kubeconfigs[0].Value, nil
}
