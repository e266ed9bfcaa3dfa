package deploy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// smokeTimeout bounds the single completion request; the upstream model may
// be slow on a cold start.
const smokeTimeout = 60 * time.Second

// SmokeChatCompletion sends one minimal chat completion through the deployed
// proxy to prove the full path: external address, proxy auth, and the
// upstream Azure OpenAI backend.
func SmokeChatCompletion(ctx context.Context, baseURL, apiKey, modelName string) error {
	ctx, cancel := context.WithTimeout(ctx, smokeTimeout)
	defer cancel()

	payload := map[string]any{
		"model": modelName,
		"messages": []map[string]string{
			{"role": "user", "content": "Reply with the single word: ok"},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal smoke request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build smoke request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("smoke request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("smoke request returned %s: %s", resp.Status, bytes.TrimSpace(msg))
	}
	return nil
}
