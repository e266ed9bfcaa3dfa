package kube

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/openclaw/clawdeploy/internal/logging"
	meta "k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/client-go/discovery"
	"k8s.io/client-go/discovery/cached/memory"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/restmapper"
)

// fieldManager identifies this tool in server-side apply operations.
const fieldManager = "clawdeploy"

// ApplyObjects performs server-side apply for a slice of typed
// runtime.Objects. Every namespaced object must carry its namespace.
func (c *Client) ApplyObjects(ctx context.Context, objs []runtime.Object) (err error) {
	if c == nil || c.RESTConfig == nil {
		return fmt.Errorf("kube client is not initialized")
	}

	logger := logging.FromContext(ctx)
	count := 0
	defer func() {
		if err == nil {
			logger.Info(ctx, "KubeClient:ApplyObjects:OK", "applied", count)
		} else {
			logger.Warn(ctx, "KubeClient:ApplyObjects:FAILED", "applied", count, "err", err)
		}
	}()

	dc, err := discovery.NewDiscoveryClientForConfig(c.RESTConfig)
	if err != nil {
		return fmt.Errorf("create discovery client: %w", err)
	}
	mapper := restmapper.NewDeferredDiscoveryRESTMapper(memory.NewMemCacheClient(dc))
	dy, err := dynamic.NewForConfig(c.RESTConfig)
	if err != nil {
		return fmt.Errorf("create dynamic client: %w", err)
	}

	for _, obj := range objs {
		if obj == nil {
			continue
		}
		m, err := runtime.DefaultUnstructuredConverter.ToUnstructured(obj)
		if err != nil {
			return fmt.Errorf("to unstructured: %w", err)
		}
		u := &unstructured.Unstructured{Object: m}
		if err := c.applyUnstructured(ctx, u, m, dy, mapper); err != nil {
			return err
		}
		count++
	}
	return nil
}

// applyUnstructured performs SSA for one unstructured object.
func (c *Client) applyUnstructured(ctx context.Context, u *unstructured.Unstructured, raw map[string]any, dy dynamic.Interface, mapper meta.RESTMapper) error {
	if u.GetKind() == "" || u.GetAPIVersion() == "" {
		return fmt.Errorf("object missing apiVersion/kind")
	}
	if u.GetName() == "" {
		return fmt.Errorf("object %s missing metadata.name", u.GetKind())
	}
	gvk := schema.FromAPIVersionAndKind(u.GetAPIVersion(), u.GetKind())
	mapping, err := mapper.RESTMapping(gvk.GroupKind(), gvk.Version)
	if err != nil {
		return fmt.Errorf("rest mapping %s: %w", gvk.String(), err)
	}
	if mapping.Scope.Name() == meta.RESTScopeNameNamespace && u.GetNamespace() == "" {
		return fmt.Errorf("object %s/%s missing metadata.namespace", u.GetKind(), u.GetName())
	}

	body, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("marshal %s/%s: %w", u.GetKind(), u.GetName(), err)
	}

	var ri dynamic.ResourceInterface = dy.Resource(mapping.Resource)
	if ns := u.GetNamespace(); ns != "" {
		ri = dy.Resource(mapping.Resource).Namespace(ns)
	}

	force := true
	logger := logging.FromContext(ctx).With("ns", u.GetNamespace(), "kind", u.GetKind(), "name", u.GetName())
	if _, err := ri.Patch(ctx, u.GetName(), types.ApplyPatchType, body, metav1.PatchOptions{FieldManager: fieldManager, Force: &force}); err != nil {
		logger.Warn(ctx, "KubeClient:Apply:FAILED", "err", err)
		return fmt.Errorf("apply %s %s: %w", u.GetKind(), u.GetName(), err)
	}
	logger.Info(ctx, "KubeClient:Apply:OK")
	return nil
}
