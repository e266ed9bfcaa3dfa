package deploy

import (
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/util/intstr"

	"github.com/openclaw/clawdeploy/internal/naming"
	"github.com/openclaw/clawdeploy/internal/secrets"
)

// Workload images. The proxy tracks the LiteLLM stable channel; the gateway
// tracks the latest OpenClaw release.
const (
	proxyImage   = "ghcr.io/berriai/litellm:main-stable"
	gatewayImage = "ghcr.io/openclaw/openclaw:latest"
)

const (
	proxyConfigMountPath   = "/etc/litellm"
	gatewayConfigMountPath = "/etc/openclaw"
)

func workloadMeta(name string, labels map[string]string) metav1.ObjectMeta {
	return metav1.ObjectMeta{
		Name:      name,
		Namespace: naming.Namespace,
		Labels:    labels,
	}
}

// proxyObjects builds the LiteLLM proxy workload: one replica mounting the
// rendered config from its ConfigMap, fronted by a LoadBalancer service on
// the proxy port. The master key is also exported as the environment
// variable LiteLLM reads natively.
func proxyObjects(deploymentName string, sec *secrets.Bundle) []runtime.Object {
	n := namesFor(deploymentName)
	labels := map[string]string{"app": n.ProxyDeployment}
	replicas := int32(1)

	dep := &appsv1.Deployment{
		TypeMeta:   metav1.TypeMeta{APIVersion: "apps/v1", Kind: "Deployment"},
		ObjectMeta: workloadMeta(n.ProxyDeployment, labels),
		Spec: appsv1.DeploymentSpec{
			Replicas: &replicas,
			Selector: &metav1.LabelSelector{MatchLabels: labels},
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{Labels: labels},
				Spec: corev1.PodSpec{
					Containers: []corev1.Container{
						{
							Name:  "litellm",
							Image: proxyImage,
							Args:  []string{"--config", proxyConfigMountPath + "/config.yaml", "--port", "4000"},
							Env: []corev1.EnvVar{
								{Name: "LITELLM_MASTER_KEY", Value: sec.ProxyMasterKey},
							},
							Ports: []corev1.ContainerPort{
								{ContainerPort: naming.ProxyPort, Name: "http"},
							},
							VolumeMounts: []corev1.VolumeMount{
								{Name: "config", MountPath: proxyConfigMountPath, ReadOnly: true},
							},
						},
					},
					Volumes: []corev1.Volume{
						{
							Name: "config",
							VolumeSource: corev1.VolumeSource{
								ConfigMap: &corev1.ConfigMapVolumeSource{
									LocalObjectReference: corev1.LocalObjectReference{Name: n.ProxyConfigMap},
								},
							},
						},
					},
				},
			},
		},
	}

	svc := &corev1.Service{
		TypeMeta:   metav1.TypeMeta{APIVersion: "v1", Kind: "Service"},
		ObjectMeta: workloadMeta(n.ProxyService, labels),
		Spec: corev1.ServiceSpec{
			Type:     corev1.ServiceTypeLoadBalancer,
			Selector: labels,
			Ports: []corev1.ServicePort{
				{
					Name:       "http",
					Port:       naming.ProxyPort,
					TargetPort: intstr.FromInt32(naming.ProxyPort),
				},
			},
		},
	}

	return []runtime.Object{dep, svc}
}

// gatewayObjects builds the OpenClaw gateway workload: one replica mounting
// the rendered config, fronted by a LoadBalancer service mapping port 80 to
// the gateway port.
func gatewayObjects(deploymentName string) []runtime.Object {
	n := namesFor(deploymentName)
	labels := map[string]string{"app": n.GatewayDeploy}
	replicas := int32(1)

	dep := &appsv1.Deployment{
		TypeMeta:   metav1.TypeMeta{APIVersion: "apps/v1", Kind: "Deployment"},
		ObjectMeta: workloadMeta(n.GatewayDeploy, labels),
		Spec: appsv1.DeploymentSpec{
			Replicas: &replicas,
			Selector: &metav1.LabelSelector{MatchLabels: labels},
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{Labels: labels},
				Spec: corev1.PodSpec{
					Containers: []corev1.Container{
						{
							Name:  "openclaw",
							Image: gatewayImage,
							Env: []corev1.EnvVar{
								{Name: "OPENCLAW_CONFIG_PATH", Value: gatewayConfigMountPath + "/openclaw.json"},
							},
							Ports: []corev1.ContainerPort{
								{ContainerPort: naming.GatewayPort, Name: "http"},
							},
							VolumeMounts: []corev1.VolumeMount{
								{Name: "config", MountPath: gatewayConfigMountPath, ReadOnly: true},
							},
						},
					},
					Volumes: []corev1.Volume{
						{
							Name: "config",
							VolumeSource: corev1.VolumeSource{
								ConfigMap: &corev1.ConfigMapVolumeSource{
									LocalObjectReference: corev1.LocalObjectReference{Name: n.GatewayConfigMap},
								},
							},
						},
					},
				},
			},
		},
	}

	svc := &corev1.Service{
		TypeMeta:   metav1.TypeMeta{APIVersion: "v1", Kind: "Service"},
		ObjectMeta: workloadMeta(n.GatewayService, labels),
		Spec: corev1.ServiceSpec{
			Type:     corev1.ServiceTypeLoadBalancer,
			Selector: labels,
			Ports: []corev1.ServicePort{
				{
					Name:       "http",
					Port:       naming.GatewayServicePort,
					TargetPort: intstr.FromInt32(naming.GatewayPort),
				},
			},
		},
	}

	return []runtime.Object{dep, svc}
}
