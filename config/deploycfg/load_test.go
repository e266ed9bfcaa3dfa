package deploycfg

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/openclaw/clawdeploy/domain/model"
)

func TestLoad_Success(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "azure-openai.json")

	content := `{
  "apiVersion": "2024-10-21",
  "deploymentName": "gpt-5.2",
  "azureOpenAI": [
    {"name": "eastus2", "endpoint": "https://east.example.com/", "key": "k1"},
    {"name": "westus", "endpoint": "https://west.example.com", "key": "k2"}
  ]
}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp json: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.APIVersion != "2024-10-21" {
		t.Errorf("unexpected apiVersion: %s", cfg.APIVersion)
	}
	if cfg.DeploymentName != "gpt-5.2" {
		t.Errorf("unexpected deploymentName: %s", cfg.DeploymentName)
	}
	if len(cfg.AzureOpenAI) != 2 {
		t.Fatalf("expected 2 endpoints, got %d", len(cfg.AzureOpenAI))
	}
	if cfg.AzureOpenAI[0].Name != "eastus2" || cfg.AzureOpenAI[0].Key != "k1" {
		t.Errorf("unexpected first endpoint: %+v", cfg.AzureOpenAI[0])
	}

	eps := cfg.Endpoints()
	if len(eps) != 2 || eps[1].Endpoint != "https://west.example.com" {
		t.Errorf("unexpected converted endpoints: %+v", eps)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	if _, err := Load("/path/does/not/exist.json"); err == nil {
		t.Fatalf("expected error for missing file, got nil")
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")

	if err := os.WriteFile(path, []byte(`{"apiVersion": `), 0o644); err != nil {
		t.Fatalf("failed to write temp json: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for invalid JSON, got nil")
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Root {
		return &Root{
			APIVersion:     "2024-10-21",
			DeploymentName: "gpt-5.2",
			AzureOpenAI:    []Endpoint{{Name: "eastus2", Endpoint: "https://e.example.com", Key: "k"}},
		}
	}

	cases := []struct {
		name   string
		mutate func(*Root)
		ok     bool
	}{
		{"valid", func(r *Root) {}, true},
		{"missing apiVersion", func(r *Root) { r.APIVersion = "" }, false},
		{"missing deploymentName", func(r *Root) { r.DeploymentName = "" }, false},
		{"empty endpoint list", func(r *Root) { r.AzureOpenAI = nil }, false},
		{"missing endpoint name", func(r *Root) { r.AzureOpenAI[0].Name = "" }, false},
		{"missing endpoint url", func(r *Root) { r.AzureOpenAI[0].Endpoint = "" }, false},
		{"missing endpoint key", func(r *Root) { r.AzureOpenAI[0].Key = "" }, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := valid()
			tc.mutate(r)
			err := r.Validate()
			if tc.ok && err != nil {
				t.Fatalf("expected valid, got %v", err)
			}
			if !tc.ok {
				if err == nil {
					t.Fatalf("expected validation error, got nil")
				}
				if !errors.Is(err, model.ErrConfigInvalid) {
					t.Fatalf("expected ErrConfigInvalid, got %v", err)
				}
			}
		})
	}
}
