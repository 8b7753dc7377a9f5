package langfuse

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// PromptConfig describes where a prompt lives in Langfuse and where it is cached on disk.
type PromptConfig struct {
	Config

	Name  string
	Label string
	// CachePath is read when Langfuse is unreachable and rewritten after each successful fetch.
	CachePath string
}

var (
	errLangfuseDisabled = errors.New("langfuse integration disabled")
	// ErrNoPrompt means neither Langfuse nor the cache file produced a prompt.
	ErrNoPrompt = errors.New("no prompt available")
)

// LoadPrompt fetches a prompt from Langfuse, falling back to the cache file.
func LoadPrompt(ctx context.Context, cfg PromptConfig) (string, error) {
	if cfg.Name != "" {
		prompt, err := fetchPrompt(ctx, cfg)
		if err == nil {
			if err := writeCache(cfg.CachePath, prompt); err != nil {
				log.Printf("[langfuse] failed to cache prompt locally: %v", err)
			}
			return prompt, nil
		}
		if !errors.Is(err, errLangfuseDisabled) {
			log.Printf("[langfuse] prompt fetch failed: %v", err)
		}
	}

	return readCache(cfg.CachePath)
}

func fetchPrompt(ctx context.Context, cfg PromptConfig) (string, error) {
	if !cfg.enabled() {
		return "", errLangfuseDisabled
	}

	endpoint, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/"))
	if err != nil {
		return "", fmt.Errorf("invalid LANGFUSE_BASE_URL: %w", err)
	}
	endpoint.Path = strings.TrimSuffix(endpoint.Path, "/") + "/api/public/v2/prompts/" + url.PathEscape(cfg.Name)
	if cfg.Label != "" {
		endpoint.RawQuery = url.Values{"label": []string{cfg.Label}}.Encode()
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return "", fmt.Errorf("create prompt request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(cfg.PublicKey, cfg.SecretKey)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call Langfuse prompt API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("Langfuse prompt API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload struct {
		Type   string          `json:"type"`
		Prompt json.RawMessage `json:"prompt"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode Langfuse prompt response: %w", err)
	}

	switch payload.Type {
	case "", "text":
		var text string
		if err := json.Unmarshal(payload.Prompt, &text); err != nil {
			return "", fmt.Errorf("parse text prompt: %w", err)
		}
		return text, nil
	case "chat":
		var messages []chatMessage
		if err := json.Unmarshal(payload.Prompt, &messages); err != nil {
			return "", fmt.Errorf("parse chat prompt: %w", err)
		}
		return flattenChat(messages), nil
	default:
		return "", fmt.Errorf("unsupported prompt type %q", payload.Type)
	}
}

type chatMessage struct {
	Type    string `json:"type"`
	Role    string `json:"role"`
	Content string `json:"content"`
	Name    string `json:"name"`
}

// flattenChat joins chat messages into one "ROLE: content" block per message.
// Placeholders are kept as {{name}}.
func flattenChat(messages []chatMessage) string {
	parts := make([]string, 0, len(messages))
	for _, msg := range messages {
		content := msg.Content
		if msg.Type == "placeholder" {
			content = ""
			if msg.Name != "" {
				content = "{{" + msg.Name + "}}"
			}
		}
		if content == "" {
			continue
		}

		role := msg.Role
		if role == "" {
			role = "message"
		}
		parts = append(parts, strings.ToUpper(role)+": "+content)
	}
	return strings.Join(parts, "\n\n")
}

func readCache(path string) (string, error) {
	if path == "" {
		return "", ErrNoPrompt
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: read local prompt file: %v", ErrNoPrompt, err)
	}
	return string(data), nil
}

func writeCache(path, prompt string) error {
	if path == "" {
		return nil
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(prompt), 0o600)
}
