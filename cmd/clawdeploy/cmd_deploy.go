package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/openclaw/clawdeploy/adapters/azure"
	"github.com/openclaw/clawdeploy/adapters/kube"
	"github.com/openclaw/clawdeploy/config/deploycfg"
	"github.com/openclaw/clawdeploy/domain"
	"github.com/openclaw/clawdeploy/domain/model"
	"github.com/openclaw/clawdeploy/internal/logging"
	"github.com/openclaw/clawdeploy/internal/secrets"
	"github.com/openclaw/clawdeploy/usecase/deploy"
)

// Positional argument defaults.
const (
	defaultName     = "openclaw"
	defaultLocation = "eastus2"
	defaultModel    = "gpt-5.2"
)

// newCmdDeploy returns the deploy command: provision Azure resources and roll
// out both workloads.
func newCmdDeploy() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy [NAME [LOCATION [MODEL]]]",
		Short: "Provision an AKS cluster and deploy the workloads",
		Long: `Provision a resource group and single-node AKS cluster, then deploy the
LiteLLM model proxy and the OpenClaw gateway wired together by generated
configuration. Re-running against the same NAME converges on the same
resources; secrets rotate on every run unless --reuse-secrets is given.`,
		Args: cobra.MaximumNArgs(3),
		RunE: runDeploy,
	}
	cmd.Flags().StringP("file", "f", deploycfg.DefaultConfigPath, "Azure OpenAI endpoints file (JSON)")
	cmd.Flags().String("secrets-file", secrets.DefaultSecretsPath, "Path of the local secrets record")
	cmd.Flags().String("kubeconfig", "", "Path to write the cluster kubeconfig (default NAME-kubeconfig)")
	cmd.Flags().Bool("reuse-secrets", false, "Reuse the existing secrets record instead of generating fresh credentials")
	cmd.Flags().Bool("skip-smoke", false, "Skip the post-deploy chat completion smoke test")
	return cmd
}

func runDeploy(cmd *cobra.Command, args []string) (err error) {
	dep := model.Deployment{Name: defaultName, Location: defaultLocation, ModelName: defaultModel}
	if len(args) > 0 {
		dep.Name = args[0]
	}
	if len(args) > 1 {
		dep.Location = args[1]
	}
	if len(args) > 2 {
		dep.ModelName = args[2]
	}

	ctx, cleanup := withCmdRunLogger(cmd.Context(), "deploy", dep.Name)
	defer func() { cleanup(err) }()

	configFile, _ := cmd.Flags().GetString("file")
	secretsFile, _ := cmd.Flags().GetString("secrets-file")
	kubeconfigFile, _ := cmd.Flags().GetString("kubeconfig")
	reuseSecrets, _ := cmd.Flags().GetBool("reuse-secrets")
	skipSmoke, _ := cmd.Flags().GetBool("skip-smoke")

	provisioner, err := azure.NewClient()
	if err != nil {
		return err
	}

	uc := &deploy.UseCase{
		Provisioner: provisioner,
		NewClusterClient: func(ctx context.Context, kubeconfig []byte) (deploy.ClusterClient, error) {
			return kube.NewClientFromKubeconfig(ctx, kubeconfig, &kube.Options{UserAgent: "clawdeploy/" + version})
		},
		Runs: buildRunRepository(cmd),
		Out:  cmd.OutOrStdout(),
	}

	opts := &deploy.Options{
		Deployment:     dep,
		ConfigFile:     configFile,
		SecretsFile:    secretsFile,
		KubeconfigFile: kubeconfigFile,
		ReuseSecrets:   reuseSecrets,
		SkipSmoke:      skipSmoke,
	}
	return uc.Execute(ctx, opts)
}

// buildRunRepository opens the run-history store. History is an operator
// convenience, so a store that cannot be opened only logs a warning.
func buildRunRepository(cmd *cobra.Command) domain.RunRepository {
	ctx := cmd.Context()
	dbURL, _ := cmd.Flags().GetString("db-url")
	repo, err := openRunRepository(dbURL)
	if err != nil {
		logging.FromContext(ctx).Warn(ctx, "run history disabled", "dbUrl", dbURL, "err", err)
		return nil
	}
	return repo
}
