package deploy

import (
	"testing"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"

	"github.com/openclaw/clawdeploy/internal/secrets"
)

func TestProxyObjects(t *testing.T) {
	sec := &secrets.Bundle{
		ProxyMasterKey: "00112233445566778899aabbccddeeff",
		GatewayToken:   "ffeeddccbbaa99887766554433221100",
	}
	objs := proxyObjects("demo", sec)
	if len(objs) != 2 {
		t.Fatalf("expected deployment and service, got %d objects", len(objs))
	}

	dep, ok := objs[0].(*appsv1.Deployment)
	if !ok {
		t.Fatalf("first object is not a Deployment: %T", objs[0])
	}
	if dep.Name != "demo-llmproxy" || dep.Namespace != "openclaw-ns" {
		t.Errorf("unexpected deployment meta: %s/%s", dep.Namespace, dep.Name)
	}
	if dep.Spec.Replicas == nil || *dep.Spec.Replicas != 1 {
		t.Errorf("proxy must run a single replica")
	}
	c := dep.Spec.Template.Spec.Containers[0]
	if c.Image != proxyImage {
		t.Errorf("unexpected image: %s", c.Image)
	}
	if c.Ports[0].ContainerPort != 4000 {
		t.Errorf("unexpected container port: %d", c.Ports[0].ContainerPort)
	}
	vol := dep.Spec.Template.Spec.Volumes[0]
	if vol.ConfigMap == nil || vol.ConfigMap.Name != "demo-llmproxy-config" {
		t.Errorf("config volume does not reference the proxy ConfigMap: %+v", vol)
	}
	if len(c.Env) != 1 || c.Env[0].Name != "LITELLM_MASTER_KEY" || c.Env[0].Value != sec.ProxyMasterKey {
		t.Errorf("master key env not set: %+v", c.Env)
	}

	svc, ok := objs[1].(*corev1.Service)
	if !ok {
		t.Fatalf("second object is not a Service: %T", objs[1])
	}
	if svc.Name != "demo-llmproxy-svc" {
		t.Errorf("unexpected service name: %s", svc.Name)
	}
	if svc.Spec.Type != corev1.ServiceTypeLoadBalancer {
		t.Errorf("proxy service must be a LoadBalancer")
	}
	if svc.Spec.Ports[0].Port != 4000 || svc.Spec.Ports[0].TargetPort.IntValue() != 4000 {
		t.Errorf("unexpected service ports: %+v", svc.Spec.Ports[0])
	}
	if svc.Spec.Selector["app"] != dep.Spec.Template.Labels["app"] {
		t.Errorf("service selector does not match pod labels")
	}
}

func TestGatewayObjects(t *testing.T) {
	objs := gatewayObjects("demo")
	if len(objs) != 2 {
		t.Fatalf("expected deployment and service, got %d objects", len(objs))
	}

	dep, ok := objs[0].(*appsv1.Deployment)
	if !ok {
		t.Fatalf("first object is not a Deployment: %T", objs[0])
	}
	if dep.Name != "demo-openclaw" {
		t.Errorf("unexpected deployment name: %s", dep.Name)
	}
	c := dep.Spec.Template.Spec.Containers[0]
	if c.Image != gatewayImage {
		t.Errorf("unexpected image: %s", c.Image)
	}
	if c.Ports[0].ContainerPort != 18789 {
		t.Errorf("unexpected container port: %d", c.Ports[0].ContainerPort)
	}
	vol := dep.Spec.Template.Spec.Volumes[0]
	if vol.ConfigMap == nil || vol.ConfigMap.Name != "demo-openclaw-config" {
		t.Errorf("config volume does not reference the gateway ConfigMap: %+v", vol)
	}

	svc, ok := objs[1].(*corev1.Service)
	if !ok {
		t.Fatalf("second object is not a Service: %T", objs[1])
	}
	if svc.Name != "demo-openclaw-svc" {
		t.Errorf("unexpected service name: %s", svc.Name)
	}
	if svc.Spec.Ports[0].Port != 80 || svc.Spec.Ports[0].TargetPort.IntValue() != 18789 {
		t.Errorf("unexpected service ports: %+v", svc.Spec.Ports[0])
	}
	if svc.Spec.Selector["app"] != dep.Spec.Template.Labels["app"] {
		t.Errorf("service selector does not match pod labels")
	}
}
