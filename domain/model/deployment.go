package model

// Deployment is the immutable identity of one deployment run. Every Azure
// and Kubernetes resource name is derived from Name via internal/naming.
type Deployment struct {
	// Name is the deployment name (DNS1123 label), e.g. "openclaw".
	Name string
	// Location is the Azure region, e.g. "eastus2".
	Location string
	// ModelName is the operator-facing display name of the served model.
	ModelName string
}

// Endpoint is one upstream Azure OpenAI backend declared in the input file.
type Endpoint struct {
	Name     string
	Endpoint string
	Key      string
}
