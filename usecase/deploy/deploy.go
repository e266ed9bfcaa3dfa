package deploy

import (
	"context"
	"fmt"
	"os"
	"time"

	"k8s.io/apimachinery/pkg/runtime"

	"github.com/openclaw/clawdeploy/config/deploycfg"
	"github.com/openclaw/clawdeploy/domain/model"
	"github.com/openclaw/clawdeploy/internal/logging"
	"github.com/openclaw/clawdeploy/internal/naming"
	"github.com/openclaw/clawdeploy/internal/pollwait"
	"github.com/openclaw/clawdeploy/internal/render"
	"github.com/openclaw/clawdeploy/internal/secrets"
)

// Execute runs the full pipeline for one deployment. Re-running with the
// same name converges on the same Azure resources and republishes the
// workloads; only the secrets rotate unless ReuseSecrets is set.
func (u *UseCase) Execute(ctx context.Context, opts *Options) error {
	logger := logging.FromContext(ctx)

	if err := naming.ValidateDeploymentName(opts.Deployment.Name); err != nil {
		return err
	}
	opts.applyDefaults()

	// Preflight runs before anything touches disk or Azure.
	if err := u.Provisioner.Preflight(ctx); err != nil {
		return err
	}

	// Input validation precedes secret generation so a bad config never
	// rotates credentials on disk.
	cfg, err := deploycfg.Load(opts.ConfigFile)
	if err != nil {
		return err
	}

	sec, err := u.resolveSecrets(ctx, opts)
	if err != nil {
		return err
	}

	proxyYAML, err := render.Proxy(cfg.Endpoints(), cfg.APIVersion, cfg.DeploymentName, sec)
	if err != nil {
		return err
	}
	appJSON, err := render.App(opts.Deployment, cfg.DeploymentName, sec)
	if err != nil {
		return err
	}
	if err := os.WriteFile(opts.ProxyConfigFile, proxyYAML, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", opts.ProxyConfigFile, err)
	}
	if err := os.WriteFile(opts.AppConfigFile, appJSON, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", opts.AppConfigFile, err)
	}
	logger.Info(ctx, "rendered configuration artifacts",
		"proxy", opts.ProxyConfigFile, "app", opts.AppConfigFile)

	run := u.recordStart(ctx, opts)

	res, err := u.converge(ctx, opts, cfg, sec, proxyYAML, appJSON)
	u.recordFinish(ctx, run, res, err)
	if err != nil {
		return err
	}

	u.printSummary(opts, sec, res)
	return nil
}

// convergeResult carries the addresses discovered during rollout.
type convergeResult struct {
	ResourceGroup  string
	ClusterName    string
	ProxyAddress   string
	GatewayAddress string
}

func (u *UseCase) converge(ctx context.Context, opts *Options, cfg *deploycfg.Root, sec *secrets.Bundle, proxyYAML, appJSON []byte) (*convergeResult, error) {
	logger := logging.FromContext(ctx)
	name := opts.Deployment.Name
	n := namesFor(name)
	res := &convergeResult{ResourceGroup: n.ResourceGroup, ClusterName: n.Cluster}

	created, err := u.Provisioner.EnsureResourceGroup(ctx, n.ResourceGroup, opts.Deployment.Location)
	if err != nil {
		return res, err
	}
	logger.Info(ctx, "resource group ready", "name", n.ResourceGroup, "created", created)

	created, err = u.Provisioner.EnsureCluster(ctx, n.ResourceGroup, n.Cluster, opts.Deployment.Location)
	if err != nil {
		return res, err
	}
	logger.Info(ctx, "cluster ensured", "name", n.Cluster, "created", created)

	if err := u.Provisioner.WaitClusterReady(ctx, n.ResourceGroup, n.Cluster); err != nil {
		return res, err
	}

	kubeconfig, err := u.Provisioner.Kubeconfig(ctx, n.ResourceGroup, n.Cluster)
	if err != nil {
		return res, err
	}
	if err := os.WriteFile(opts.KubeconfigFile, kubeconfig, 0o600); err != nil {
		return res, fmt.Errorf("write kubeconfig %s: %w", opts.KubeconfigFile, err)
	}
	logger.Info(ctx, "kubeconfig written", "path", opts.KubeconfigFile)

	cluster, err := u.NewClusterClient(ctx, kubeconfig)
	if err != nil {
		return res, err
	}

	if err := cluster.EnsureNamespace(ctx, naming.Namespace); err != nil {
		return res, err
	}

	// The proxy must be fully available, external address included, before
	// the gateway workload is touched: the gateway's config points at the
	// proxy and a broken proxy rollout halts the pipeline here.
	res.ProxyAddress, err = deployWorkload(ctx, cluster, workload{
		ConfigMap:  n.ProxyConfigMap,
		ConfigKey:  "config.yaml",
		ConfigData: proxyYAML,
		Objects:    proxyObjects(name, sec),
		Deployment: n.ProxyDeployment,
		Service:    n.ProxyService,
		Rollout:    proxyRolloutBudget,
	})
	if err != nil {
		return res, err
	}

	res.GatewayAddress, err = deployWorkload(ctx, cluster, workload{
		ConfigMap:  n.GatewayConfigMap,
		ConfigKey:  "openclaw.json",
		ConfigData: appJSON,
		Objects:    gatewayObjects(name),
		Deployment: n.GatewayDeploy,
		Service:    n.GatewayService,
		Rollout:    gatewayRolloutBudget,
	})
	if err != nil {
		return res, err
	}

	// The smoke test never fails the run; rollout already succeeded and the
	// upstream may simply be slow to serve its first completion.
	if !opts.SkipSmoke {
		smoke := u.Smoke
		if smoke == nil {
			smoke = SmokeChatCompletion
		}
		baseURL := fmt.Sprintf("http://%s:%d", res.ProxyAddress, naming.ProxyPort)
		if err := smoke(ctx, baseURL, sec.ProxyMasterKey, cfg.DeploymentName); err != nil {
			logger.Warn(ctx, "smoke test failed", "err", err)
			u.printf("WARNING: smoke test against %s failed: %v\n", baseURL, err)
		} else {
			logger.Info(ctx, "smoke test passed", "url", baseURL)
		}
	}

	return res, nil
}

// workload bundles everything needed to publish one workload.
type workload struct {
	ConfigMap  string
	ConfigKey  string
	ConfigData []byte
	Objects    []runtime.Object
	Deployment string
	Service    string
	Rollout    pollwait.Budget
}

// deployWorkload publishes one workload end to end: config, objects, rollout
// wait, external address wait.
func deployWorkload(ctx context.Context, cluster ClusterClient, w workload) (string, error) {
	if err := cluster.ReplaceConfigMap(ctx, naming.Namespace, w.ConfigMap, map[string]string{w.ConfigKey: string(w.ConfigData)}); err != nil {
		return "", err
	}
	if err := cluster.ApplyObjects(ctx, w.Objects); err != nil {
		return "", err
	}
	if err := cluster.WaitDeploymentAvailable(ctx, naming.Namespace, w.Deployment, w.Rollout); err != nil {
		return "", err
	}
	return cluster.WaitServiceExternalAddress(ctx, naming.Namespace, w.Service, externalAddressBudget)
}

// resolveSecrets returns the credential bundle for this run. By default both
// credentials are freshly generated and the on-disk record is overwritten.
// With ReuseSecrets, an existing readable record is used instead; a missing
// or unreadable record falls back to generation.
func (u *UseCase) resolveSecrets(ctx context.Context, opts *Options) (*secrets.Bundle, error) {
	logger := logging.FromContext(ctx)
	path := opts.SecretsFile
	if path == "" {
		path = secrets.DefaultSecretsPath
		opts.SecretsFile = path
	}

	if opts.ReuseSecrets {
		sec, err := secrets.ReadFile(path)
		if err == nil {
			logger.Info(ctx, "reusing secrets record", "path", path)
			return sec, nil
		}
		logger.Warn(ctx, "secrets record not reusable, generating fresh", "path", path, "err", err)
	}

	sec, err := secrets.Generate()
	if err != nil {
		return nil, err
	}
	if err := sec.WriteFile(path); err != nil {
		return nil, err
	}
	logger.Info(ctx, "secrets record written", "path", path)
	return sec, nil
}

// Run-history recording is best effort: store failures are logged, never
// propagated.

func (u *UseCase) recordStart(ctx context.Context, opts *Options) *model.Run {
	if u.Runs == nil {
		return nil
	}
	run := &model.Run{
		DeploymentName: opts.Deployment.Name,
		Location:       opts.Deployment.Location,
		ModelName:      opts.Deployment.ModelName,
		ResourceGroup:  naming.ResourceGroup(opts.Deployment.Name),
		ClusterName:    naming.Cluster(opts.Deployment.Name),
		Status:         model.RunStatusRunning,
		StartedAt:      time.Now().UTC(),
	}
	if err := u.Runs.Create(ctx, run); err != nil {
		logging.FromContext(ctx).Warn(ctx, "record run start failed", "err", err)
		return nil
	}
	return run
}

func (u *UseCase) recordFinish(ctx context.Context, run *model.Run, res *convergeResult, runErr error) {
	if u.Runs == nil || run == nil {
		return
	}
	run.FinishedAt = time.Now().UTC()
	if runErr != nil {
		run.Status = model.RunStatusFailed
		run.Error = runErr.Error()
	} else {
		run.Status = model.RunStatusSucceeded
	}
	if res != nil && res.ProxyAddress != "" {
		run.ProxyURL = fmt.Sprintf("http://%s:%d", res.ProxyAddress, naming.ProxyPort)
	}
	if err := u.Runs.Update(ctx, run); err != nil {
		logging.FromContext(ctx).Warn(ctx, "record run finish failed", "err", err)
	}
}

func (u *UseCase) printf(format string, args ...any) {
	w := u.Out
	if w == nil {
		w = os.Stdout
	}
	fmt.Fprintf(w, format, args...)
}

// printSummary writes the operator hand-off: where everything is, the
// credentials record, and the command to reach the gateway UI.
func (u *UseCase) printSummary(opts *Options, sec *secrets.Bundle, res *convergeResult) {
	name := opts.Deployment.Name
	n := namesFor(name)

	u.printf("\nDeployment %s is ready.\n\n", name)
	u.printf("  Resource group:   %s\n", res.ResourceGroup)
	u.printf("  AKS cluster:      %s\n", res.ClusterName)
	u.printf("  Kubeconfig:       %s\n", opts.KubeconfigFile)
	u.printf("  Secrets record:   %s\n", opts.SecretsFile)
	u.printf("  Proxy endpoint:   http://%s:%d/v1\n", res.ProxyAddress, naming.ProxyPort)
	u.printf("  Gateway endpoint: http://%s:%d\n", res.GatewayAddress, naming.GatewayServicePort)
	u.printf("\nTo open the gateway UI locally:\n\n")
	u.printf("  kubectl --kubeconfig %s -n %s port-forward svc/%s %d:%d\n",
		opts.KubeconfigFile, naming.Namespace, n.GatewayService, naming.GatewayPort, naming.GatewayServicePort)
	u.printf("  open http://localhost:%d/?token=%s\n", naming.GatewayPort, sec.GatewayToken)
}
