// Package deploy implements the end-to-end deployment pipeline: preflight,
// secret generation, config rendering, Azure provisioning, workload rollout,
// smoke test, and the final operator summary.
package deploy

import (
	"context"
	"io"
	"time"

	"k8s.io/apimachinery/pkg/runtime"

	"github.com/openclaw/clawdeploy/domain"
	"github.com/openclaw/clawdeploy/domain/model"
	"github.com/openclaw/clawdeploy/internal/naming"
	"github.com/openclaw/clawdeploy/internal/pollwait"
)

// Rollout and readiness budgets. The cluster has to pull both images on
// first deploy, so the gateway budget is the widest.
var (
	proxyRolloutBudget    = pollwait.Budget{Interval: 5 * time.Second, MaxAttempts: 60}
	gatewayRolloutBudget  = pollwait.Budget{Interval: 5 * time.Second, MaxAttempts: 120}
	externalAddressBudget = pollwait.Budget{Interval: 5 * time.Second, MaxAttempts: 60}
)

// Provisioner is the Azure-side port of the pipeline.
type Provisioner interface {
	Preflight(ctx context.Context) error
	EnsureResourceGroup(ctx context.Context, name, location string) (created bool, err error)
	EnsureCluster(ctx context.Context, resourceGroup, name, location string) (created bool, err error)
	WaitClusterReady(ctx context.Context, resourceGroup, name string) error
	Kubeconfig(ctx context.Context, resourceGroup, name string) ([]byte, error)
}

// ClusterClient is the Kubernetes-side port of the pipeline.
type ClusterClient interface {
	EnsureNamespace(ctx context.Context, name string) error
	ReplaceConfigMap(ctx context.Context, namespace, name string, data map[string]string) error
	ApplyObjects(ctx context.Context, objs []runtime.Object) error
	WaitDeploymentAvailable(ctx context.Context, namespace, name string, b pollwait.Budget) error
	WaitServiceExternalAddress(ctx context.Context, namespace, name string, b pollwait.Budget) (string, error)
}

// UseCase wires the ports together. Runs and Smoke are optional: a nil Runs
// skips history recording, a nil Smoke uses SmokeChatCompletion.
type UseCase struct {
	Provisioner      Provisioner
	NewClusterClient func(ctx context.Context, kubeconfig []byte) (ClusterClient, error)
	Runs             domain.RunRepository
	Out              io.Writer
	Smoke            func(ctx context.Context, baseURL, apiKey, modelName string) error
}

// Options carries one invocation's inputs. Empty file fields are filled in
// by applyDefaults from the deployment name.
type Options struct {
	Deployment      model.Deployment
	ConfigFile      string
	SecretsFile     string
	KubeconfigFile  string
	ProxyConfigFile string
	AppConfigFile   string
	ReuseSecrets    bool
	SkipSmoke       bool
}

// Local artifact names written next to the input config.
const (
	DefaultProxyConfigFile = "litellm-config.yaml"
	DefaultAppConfigFile   = "openclaw.json"
)

func (o *Options) applyDefaults() {
	if o.KubeconfigFile == "" {
		o.KubeconfigFile = o.Deployment.Name + "-kubeconfig"
	}
	if o.ProxyConfigFile == "" {
		o.ProxyConfigFile = DefaultProxyConfigFile
	}
	if o.AppConfigFile == "" {
		o.AppConfigFile = DefaultAppConfigFile
	}
}

// resourceNames bundles every derived name for one deployment.
type resourceNames struct {
	ResourceGroup    string
	Cluster          string
	ProxyDeployment  string
	ProxyService     string
	ProxyConfigMap   string
	GatewayDeploy    string
	GatewayService   string
	GatewayConfigMap string
}

func namesFor(name string) resourceNames {
	return resourceNames{
		ResourceGroup:    naming.ResourceGroup(name),
		Cluster:          naming.Cluster(name),
		ProxyDeployment:  naming.ProxyDeployment(name),
		ProxyService:     naming.ProxyService(name),
		ProxyConfigMap:   naming.ProxyConfigMap(name),
		GatewayDeploy:    naming.GatewayDeployment(name),
		GatewayService:   naming.GatewayService(name),
		GatewayConfigMap: naming.GatewayConfigMap(name),
	}
}
