// Package http provides the outbound HTTP connector natives. The response
// is surfaced as a message value; the underlying client is owned here, not
// by any worker scope.
package http

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vk/relaycore/internal/ctxlog"
	"github.com/vk/relaycore/internal/native"
	"github.com/vk/relaycore/internal/value"
)

//go:embed module.hcl
var manifest []byte

// Module implements the native.Module interface for this package.
type Module struct{}

// httpClient is shared across all dispatches to reuse TCP connections.
var httpClient = &http.Client{Timeout: 30 * time.Second}

// get is the host implementation of http:get(string) -> message.
func get(ctx context.Context, call *native.Call) ([]value.Value, error) {
	url, err := call.Arg(0).AsString()
	if err != nil {
		return nil, err
	}
	logger := ctxlog.FromContext(ctx).With("url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	logger.Debug("HTTP GET finished.", "status", resp.StatusCode, "bytes", len(body))

	msg := value.NewMessage()
	msg.Headers = resp.Header.Clone()
	msg.SetHeader("Status", fmt.Sprintf("%d", resp.StatusCode))
	msg.SetBody(body)
	return []value.Value{value.MessageVal(msg)}, nil
}

// Register registers the handler and the manifest with the registry.
func (m *Module) Register(r *native.Registry) {
	r.Register(&native.Descriptor{
		Namespace: "http",
		Name:      "get",
		Args:      []value.TypeSpec{value.Spec(value.KindString)},
		Returns:   []value.TypeSpec{value.Spec(value.KindMessage)},
		Public:    true,
	}, get)

	r.RegisterManifest("http.hcl", manifest)
}
