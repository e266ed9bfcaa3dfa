// Package naming centralizes derivation of Azure and Kubernetes resource
// names from the deployment name. All names follow fixed patterns so that
// re-running the tool against the same deployment always converges on the
// same resources.
package naming

import "fmt"

const (
	// Namespace is the Kubernetes namespace both workloads deploy into.
	Namespace = "openclaw-ns"
	// ProxyPort is the port the LiteLLM proxy service listens on.
	ProxyPort = 4000
	// GatewayPort is the port the OpenClaw gateway listens on inside the pod.
	GatewayPort = 18789
	// GatewayServicePort is the external port of the gateway service.
	GatewayServicePort = 80
)

// ResourceGroup returns the Azure resource group name.
func ResourceGroup(name string) string { return name + "-RG" }

// Cluster returns the AKS managed cluster name.
func Cluster(name string) string { return name + "-aks" }

// ProxyDeployment returns the LiteLLM proxy Deployment name.
func ProxyDeployment(name string) string { return name + "-llmproxy" }

// ProxyService returns the LiteLLM proxy Service name.
func ProxyService(name string) string { return name + "-llmproxy-svc" }

// ProxyConfigMap returns the ConfigMap name carrying the proxy config.
func ProxyConfigMap(name string) string { return name + "-llmproxy-config" }

// GatewayDeployment returns the OpenClaw gateway Deployment name.
func GatewayDeployment(name string) string { return name + "-openclaw" }

// GatewayService returns the OpenClaw gateway Service name.
func GatewayService(name string) string { return name + "-openclaw-svc" }

// GatewayConfigMap returns the ConfigMap name carrying the gateway config.
func GatewayConfigMap(name string) string { return name + "-openclaw-config" }

// ProxyInClusterURL returns the cluster-internal base URL the gateway uses
// to reach the proxy.
func ProxyInClusterURL(name string) string {
	return fmt.Sprintf("http://%s.%s.svc.cluster.local:%d/v1", ProxyService(name), Namespace, ProxyPort)
}
