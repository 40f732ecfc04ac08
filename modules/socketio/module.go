// Package socketio provides a socket.io connector native: connect, emit
// one event, wait for the reply event, disconnect.
package socketio

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/vk/relaycore/internal/ctxlog"
	"github.com/vk/relaycore/internal/native"
	"github.com/vk/relaycore/internal/value"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

//go:embed module.hcl
var manifest []byte

// Module implements the native.Module interface for this package.
type Module struct{}

// emitTimeout bounds one emit round trip when the caller's context has no
// earlier deadline.
const emitTimeout = 10 * time.Second

// opResult passes the reply or the connection error through one channel.
type opResult struct {
	reply string
	err   error
}

// emit is the host implementation of
// socketio:emit(string url, string event, string payload) -> string.
// It connects, emits the payload once, and returns the first reply event's
// data rendered as a string.
func emit(ctx context.Context, call *native.Call) ([]value.Value, error) {
	rawURL, err := call.Arg(0).AsString()
	if err != nil {
		return nil, err
	}
	event, err := call.Arg(1).AsString()
	if err != nil {
		return nil, err
	}
	payload, err := call.Arg(2).AsString()
	if err != nil {
		return nil, err
	}
	logger := ctxlog.FromContext(ctx).With("url", rawURL, "event", event)

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}
	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)

	opCtx, cancel := context.WithTimeout(ctx, emitTimeout)
	defer cancel()

	opts := socket.DefaultOptions()
	opts.SetPath(parsedURL.Path)
	opts.SetTransports(types.NewSet(transports.WebSocket))

	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket("/", opts)
	defer io.Disconnect()

	done := make(chan opResult, 1)

	io.On(types.EventName("connect"), func(...any) {
		logger.Debug("Socket connected.", "sid", io.Id())
		io.Emit(event, payload)
	})
	io.On(types.EventName("connect_error"), func(errs ...any) {
		if len(errs) > 0 {
			if e, ok := errs[0].(error); ok {
				done <- opResult{err: e}
				return
			}
		}
		done <- opResult{err: fmt.Errorf("connection failed")}
	})
	io.On(types.EventName(event), func(data ...any) {
		done <- opResult{reply: renderReply(data)}
	})

	io.Connect()

	select {
	case <-opCtx.Done():
		return nil, fmt.Errorf("timed out waiting for reply to '%s': %w", event, opCtx.Err())
	case res := <-done:
		if res.err != nil {
			return nil, res.err
		}
		return []value.Value{value.StringVal(res.reply)}, nil
	}
}

// renderReply flattens the reply event's first datum to a string.
func renderReply(data []any) string {
	if len(data) == 0 {
		return ""
	}
	if s, ok := data[0].(string); ok {
		return s
	}
	b, err := json.Marshal(data[0])
	if err != nil {
		return fmt.Sprintf("%v", data[0])
	}
	return string(b)
}

// Register registers the handler and the manifest with the registry.
func (m *Module) Register(r *native.Registry) {
	r.Register(&native.Descriptor{
		Namespace: "socketio",
		Name:      "emit",
		Args: []value.TypeSpec{
			value.Spec(value.KindString),
			value.Spec(value.KindString),
			value.Spec(value.KindString),
		},
		Returns: []value.TypeSpec{value.Spec(value.KindString)},
		Public:  true,
	}, emit)

	r.RegisterManifest("socketio.hcl", manifest)
}
