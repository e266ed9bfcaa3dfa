package secrets

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
)

var tokenPattern = regexp.MustCompile(`^[0-9a-f]{32}$`)

func TestNewToken_Format(t *testing.T) {
	tok, err := NewToken()
	if err != nil {
		t.Fatalf("NewToken returned error: %v", err)
	}
	if !tokenPattern.MatchString(tok) {
		t.Errorf("token %q does not match ^[0-9a-f]{32}$", tok)
	}
}

func TestGenerate_Distinct(t *testing.T) {
	b, err := Generate()
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if !tokenPattern.MatchString(b.ProxyMasterKey) {
		t.Errorf("master key %q does not match pattern", b.ProxyMasterKey)
	}
	if !tokenPattern.MatchString(b.GatewayToken) {
		t.Errorf("gateway token %q does not match pattern", b.GatewayToken)
	}
	if b.ProxyMasterKey == b.GatewayToken {
		t.Errorf("master key and gateway token must differ")
	}
}

func TestGenerate_NonRepeating(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 8; i++ {
		b, err := Generate()
		if err != nil {
			t.Fatalf("Generate returned error: %v", err)
		}
		for _, tok := range []string{b.ProxyMasterKey, b.GatewayToken} {
			if seen[tok] {
				t.Fatalf("token %q repeated across runs", tok)
			}
			seen[tok] = true
		}
	}
}

func TestWriteFile_Overwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deploy-secrets.env")

	if err := os.WriteFile(path, []byte("STALE=junk\n"), 0o600); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	b := &Bundle{
		ProxyMasterKey: "0123456789abcdef0123456789abcdef",
		GatewayToken:   "fedcba9876543210fedcba9876543210",
	}
	if err := b.WriteFile(path); err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	want := "LITELLM_MASTER_KEY=0123456789abcdef0123456789abcdef\nOPENCLAW_GATEWAY_TOKEN=fedcba9876543210fedcba9876543210\n"
	if string(data) != want {
		t.Errorf("record content:\n%s\nwant:\n%s", data, want)
	}
}

func TestReadFile_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deploy-secrets.env")

	orig, err := Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if err := orig.WriteFile(path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile returned error: %v", err)
	}
	if *got != *orig {
		t.Errorf("round trip mismatch: got %+v want %+v", got, orig)
	}
}

func TestReadFile_MissingKey(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.env")
	if err := os.WriteFile(path, []byte("LITELLM_MASTER_KEY=abc\n"), 0o600); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	if _, err := ReadFile(path); err == nil {
		t.Fatalf("expected error for record missing gateway token, got nil")
	}
}
