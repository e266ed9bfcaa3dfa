package azure

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerservice/armcontainerservice"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
)

type staticCredential struct{}

func (staticCredential) GetToken(ctx context.Context, opts policy.TokenRequestOptions) (azcore.AccessToken, error) {
	return azcore.AccessToken{Token: "token", ExpiresOn: time.Now().Add(time.Hour)}, nil
}

// scriptedTransport answers ARM requests from a fixed response script and
// records every request it sees.
type scriptedTransport struct {
	t         *testing.T
	responses []scriptedResponse
	requests  []*http.Request
}

type scriptedResponse struct {
	status int
	body   string
}

func (s *scriptedTransport) Do(req *http.Request) (*http.Response, error) {
	s.requests = append(s.requests, req)
	if len(s.responses) == 0 {
		s.t.Fatalf("unexpected request: %s %s", req.Method, req.URL.Path)
	}
	r := s.responses[0]
	s.responses = s.responses[1:]
	return &http.Response{
		StatusCode: r.status,
		Status:     http.StatusText(r.status),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(r.body)),
		Request:    req,
	}, nil
}

func (s *scriptedTransport) methods() []string {
	out := make([]string, 0, len(s.requests))
	for _, r := range s.requests {
		out = append(out, r.Method)
	}
	return out
}

func (s *scriptedTransport) countMethod(method string) int {
	n := 0
	for _, r := range s.requests {
		if r.Method == method {
			n++
		}
	}
	return n
}

func scriptedClient(t *testing.T, responses ...scriptedResponse) (*Client, *scriptedTransport) {
	t.Helper()
	tr := &scriptedTransport{t: t, responses: responses}
	opts := &arm.ClientOptions{
		ClientOptions: policy.ClientOptions{
			Transport: tr,
			Retry:     policy.RetryOptions{MaxRetries: -1},
		},
	}
	groups, err := armresources.NewResourceGroupsClient("00000000-0000-0000-0000-000000000000", staticCredential{}, opts)
	if err != nil {
		t.Fatalf("create resource groups client: %v", err)
	}
	clusters, err := armcontainerservice.NewManagedClustersClient("00000000-0000-0000-0000-000000000000", staticCredential{}, opts)
	if err != nil {
		t.Fatalf("create AKS client: %v", err)
	}
	c := &Client{
		cred:           staticCredential{},
		subscriptionID: "00000000-0000-0000-0000-000000000000",
		groups:         groups,
		clusters:       clusters,
	}
	return c, tr
}

const notFoundBody = `{"error":{"code":"ResourceNotFound","message":"not found"}}`

func TestEnsureResourceGroup_ExistingNotRecreated(t *testing.T) {
	c, tr := scriptedClient(t, scriptedResponse{status: http.StatusNoContent})

	created, err := c.EnsureResourceGroup(context.Background(), "demo-RG", "eastus2")
	if err != nil {
		t.Fatalf("ensure resource group: %v", err)
	}
	if created {
		t.Errorf("existing resource group must not be reported created")
	}
	if n := tr.countMethod(http.MethodPut); n != 0 {
		t.Errorf("no PUT may be issued for an existing resource group, requests: %v", tr.methods())
	}
}

func TestEnsureResourceGroup_CreatedWhenAbsent(t *testing.T) {
	rgBody := `{"id":"/subscriptions/s/resourceGroups/demo-RG","name":"demo-RG","location":"eastus2"}`
	c, tr := scriptedClient(t,
		scriptedResponse{status: http.StatusNotFound},
		scriptedResponse{status: http.StatusCreated, body: rgBody},
	)

	created, err := c.EnsureResourceGroup(context.Background(), "demo-RG", "eastus2")
	if err != nil {
		t.Fatalf("ensure resource group: %v", err)
	}
	if !created {
		t.Errorf("absent resource group must be reported created")
	}
	if n := tr.countMethod(http.MethodPut); n != 1 {
		t.Errorf("exactly one create PUT expected, requests: %v", tr.methods())
	}
}

func TestEnsureCluster_ExistingNotRecreated(t *testing.T) {
	clusterBody := `{"name":"demo-aks","location":"eastus2","properties":{"provisioningState":"Succeeded"}}`
	c, tr := scriptedClient(t, scriptedResponse{status: http.StatusOK, body: clusterBody})

	created, err := c.EnsureCluster(context.Background(), "demo-RG", "demo-aks", "eastus2")
	if err != nil {
		t.Fatalf("ensure cluster: %v", err)
	}
	if created {
		t.Errorf("existing cluster must not be reported created")
	}
	if n := tr.countMethod(http.MethodPut); n != 0 {
		t.Errorf("no PUT may be issued for an existing cluster, requests: %v", tr.methods())
	}
}

func TestEnsureCluster_CreatedWhenAbsent(t *testing.T) {
	creatingBody := `{"name":"demo-aks","location":"eastus2","properties":{"provisioningState":"Creating"}}`
	c, tr := scriptedClient(t,
		scriptedResponse{status: http.StatusNotFound, body: notFoundBody},
		scriptedResponse{status: http.StatusCreated, body: creatingBody},
	)

	created, err := c.EnsureCluster(context.Background(), "demo-RG", "demo-aks", "eastus2")
	if err != nil {
		t.Fatalf("ensure cluster: %v", err)
	}
	if !created {
		t.Errorf("absent cluster must be reported created")
	}
	if n := tr.countMethod(http.MethodPut); n != 1 {
		t.Errorf("exactly one create PUT expected, requests: %v", tr.methods())
	}
}
