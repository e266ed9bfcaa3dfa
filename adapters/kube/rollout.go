package kube

import (
	"context"
	"fmt"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/openclaw/clawdeploy/internal/pollwait"
)

// WaitDeploymentAvailable polls the deployment until every desired replica
// is ready and up to date, within the given budget.
func (c *Client) WaitDeploymentAvailable(ctx context.Context, namespace, name string, b pollwait.Budget) error {
	if c == nil || c.Clientset == nil {
		return fmt.Errorf("kube client is not initialized")
	}

	probe := func(ctx context.Context) (bool, error) {
		dep, err := c.Clientset.AppsV1().Deployments(namespace).Get(ctx, name, metav1.GetOptions{})
		if err != nil {
			return false, fmt.Errorf("get deployment %s/%s: %w", namespace, name, err)
		}
		desired := int32(1)
		if dep.Spec.Replicas != nil {
			desired = *dep.Spec.Replicas
		}
		ready := dep.Status.ReadyReplicas >= desired && dep.Status.UpdatedReplicas >= desired
		return ready, nil
	}
	if err := pollwait.Wait(ctx, b, probe); err != nil {
		return fmt.Errorf("wait for deployment %s/%s rollout: %w", namespace, name, err)
	}
	return nil
}

// WaitServiceExternalAddress polls a LoadBalancer service until an external
// IP or hostname is assigned, within the given budget.
func (c *Client) WaitServiceExternalAddress(ctx context.Context, namespace, name string, b pollwait.Budget) (string, error) {
	if c == nil || c.Clientset == nil {
		return "", fmt.Errorf("kube client is not initialized")
	}

	var addr string
	probe := func(ctx context.Context) (bool, error) {
		svc, err := c.Clientset.CoreV1().Services(namespace).Get(ctx, name, metav1.GetOptions{})
		if err != nil {
			return false, fmt.Errorf("get service %s/%s: %w", namespace, name, err)
		}
		for _, ing := range svc.Status.LoadBalancer.Ingress {
			if ing.IP != "" {
				addr = ing.IP
				return true, nil
			}
			if ing.Hostname != "" {
				addr = ing.Hostname
				return true, nil
			}
		}
		return false, nil
	}
	if err := pollwait.Wait(ctx, b, probe); err != nil {
		return "", fmt.Errorf("wait for service %s/%s external address: %w", namespace, name, err)
	}
	return addr, nil
}
