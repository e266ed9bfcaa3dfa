package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewCmdDeploy_FlagDefaults(t *testing.T) {
	cmd := newCmdDeploy()

	cases := []struct {
		flag string
		want string
	}{
		{"file", "azure-openai.json"},
		{"secrets-file", "deploy-secrets.env"},
		{"kubeconfig", ""},
		{"reuse-secrets", "false"},
		{"skip-smoke", "false"},
	}
	for _, tc := range cases {
		f := cmd.Flags().Lookup(tc.flag)
		if f == nil {
			t.Errorf("flag %q not registered", tc.flag)
			continue
		}
		if f.DefValue != tc.want {
			t.Errorf("flag %q default: got %q, want %q", tc.flag, f.DefValue, tc.want)
		}
	}
}

func TestNewCmdDeploy_ArgBounds(t *testing.T) {
	cmd := newCmdDeploy()
	if err := cmd.Args(cmd, []string{"a", "b", "c", "d"}); err == nil {
		t.Error("expected error for more than 3 positional args")
	}
	if err := cmd.Args(cmd, nil); err != nil {
		t.Errorf("zero args must be accepted: %v", err)
	}
}

func TestCmdVersion(t *testing.T) {
	root := newRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetArgs([]string{"version"})
	if err := root.Execute(); err != nil {
		t.Fatalf("execute version: %v", err)
	}
	if !strings.Contains(out.String(), "clawdeploy version") {
		t.Errorf("unexpected version output: %q", out.String())
	}
	if !strings.Contains(out.String(), "commit "+commit) || !strings.Contains(out.String(), "built "+date) {
		t.Errorf("version output missing build metadata: %q", out.String())
	}
}
