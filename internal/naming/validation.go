package naming

import (
	"fmt"
	"strings"

	utilvalidation "k8s.io/apimachinery/pkg/util/validation"
)

// deploymentNameMaxLength keeps every derived name inside platform limits.
// The longest suffix is "-llmproxy-config" (16 chars) and Kubernetes object
// names derived here must stay within the 63 char DNS1123 label bound.
const deploymentNameMaxLength = 24

// ValidateDeploymentName rejects names whose derived resource names would
// violate Azure or Kubernetes length/charset constraints.
func ValidateDeploymentName(name string) error {
	if name == "" {
		return fmt.Errorf("deployment name must not be empty")
	}
	if len(name) > deploymentNameMaxLength {
		return fmt.Errorf("deployment name exceeds %d characters", deploymentNameMaxLength)
	}
	if errs := utilvalidation.IsDNS1123Label(name); len(errs) > 0 {
		return fmt.Errorf("invalid deployment name: %s", strings.Join(errs, ", "))
	}
	return nil
}
