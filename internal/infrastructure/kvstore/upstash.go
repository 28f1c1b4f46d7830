package kvstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/ArtytL/loh2-site/pkg/errs"
)

// UpstashStore implements Store against an Upstash-style Redis REST endpoint:
// GET {base}/get/{key}, POST {base}/set/{key}, GET {base}/del/{key} and
// POST {base}/pipeline, each returning a {"result": ...} envelope.
type UpstashStore struct {
	baseURL    string
	token      string
	httpClient *http.Client
	cb         *gobreaker.CircuitBreaker[[]byte]
}

func CreateUpstashStore(baseURL string, token string, cb *gobreaker.CircuitBreaker[[]byte]) *UpstashStore {
	return &UpstashStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout:   10 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		cb: cb,
	}
}

func (s *UpstashStore) Get(ctx context.Context, key string) ([]byte, error) {
	body, err := s.roundTrip(ctx, http.MethodGet, "get/"+url.PathEscape(key), nil)
	if err != nil {
		return nil, err
	}

	result, err := extractResult(body)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *UpstashStore) Set(ctx context.Context, key string, value string) error {
	_, err := s.roundTrip(ctx, http.MethodPost, "set/"+url.PathEscape(key), []byte(value))
	return err
}

func (s *UpstashStore) Delete(ctx context.Context, key string) (bool, error) {
	body, err := s.roundTrip(ctx, http.MethodGet, "del/"+url.PathEscape(key), nil)
	if err != nil {
		return false, err
	}

	var envelope struct {
		Result int `json:"result"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return false, fmt.Errorf("%w: decoding del response: %v", errs.ErrStorageUnavailable, err)
	}
	return envelope.Result > 0, nil
}

func (s *UpstashStore) SetMulti(ctx context.Context, pairs []Pair) error {
	if len(pairs) == 0 {
		return nil
	}

	commands := make([][]string, 0, len(pairs))
	for _, p := range pairs {
		commands = append(commands, []string{"SET", p.Key, p.Value})
	}
	payload, err := json.Marshal(commands)
	if err != nil {
		return fmt.Errorf("encoding pipeline payload: %w", err)
	}

	_, err = s.roundTrip(ctx, http.MethodPost, "pipeline", payload)
	return err
}

func (s *UpstashStore) roundTrip(ctx context.Context, method string, path string, body []byte) ([]byte, error) {
	respBody, err := s.cb.Execute(func() ([]byte, error) {
		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}

		req, err := http.NewRequestWithContext(ctx, method, fmt.Sprintf("%s/%s", s.baseURL, path), reader)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.token))
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := s.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, fmt.Errorf("kv backend returned status %d: %s", resp.StatusCode, string(respBody))
		}
		return respBody, nil
	})
	if err != nil {
		// The outcome of a timed-out write is unknown; the caller must not
		// assume it failed.
		return nil, fmt.Errorf("%w: %v", errs.ErrStorageUnavailable, err)
	}
	return respBody, nil
}

// extractResult unwraps the {"result": ...} envelope. Stored values come
// back as JSON strings; absent keys come back as null.
func extractResult(body []byte) ([]byte, error) {
	var envelope struct {
		Result json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: decoding get response: %v", errs.ErrStorageUnavailable, err)
	}

	trimmed := bytes.TrimSpace(envelope.Result)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	if trimmed[0] == '"' {
		var value string
		if err := json.Unmarshal(trimmed, &value); err != nil {
			return nil, fmt.Errorf("%w: decoding get result: %v", errs.ErrStorageUnavailable, err)
		}
		return []byte(value), nil
	}
	return trimmed, nil
}
