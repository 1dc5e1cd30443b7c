// Package publish pushes a built map to a socket.io endpoint, so that game
// servers and viewers can pick up the board without reading the source file.
package publish

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/specialistvlad/conductor/internal/citymap"
	"github.com/specialistvlad/conductor/internal/ctxlog"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

// DefaultTimeout bounds a publish when Options.Timeout is zero.
const DefaultTimeout = 10 * time.Second

// Options configures a Publisher.
type Options struct {
	URL       string
	Namespace string
	// Event is emitted with the map payload once connected.
	Event string
	// AckEvent is the server event that confirms the map was received.
	AckEvent           string
	Timeout            time.Duration
	InsecureSkipVerify bool
}

// Publisher emits maps to a single socket.io endpoint.
type Publisher struct {
	opts    Options
	baseURL string
	path    string
}

// opResult is a private struct to safely pass results through the done channel.
type opResult struct {
	ack any
	err error
}

// New validates opts and returns a Publisher.
func New(opts Options) (*Publisher, error) {
	parsedURL, err := url.Parse(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}
	switch parsedURL.Scheme {
	case "http", "https", "ws", "wss":
	default:
		return nil, fmt.Errorf("unsupported URL scheme %q", parsedURL.Scheme)
	}
	if parsedURL.Host == "" {
		return nil, errors.New("publish URL has no host")
	}
	if opts.Event == "" {
		return nil, errors.New("publish event name must not be empty")
	}
	if opts.AckEvent == "" {
		return nil, errors.New("publish ack event name must not be empty")
	}
	if opts.Namespace == "" {
		opts.Namespace = "/"
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	return &Publisher{
		opts:    opts,
		baseURL: fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host),
		path:    parsedURL.Path,
	}, nil
}

// Payload converts m into the event payload: a "cities" list with names and
// route counts, and a "routes" list with resolved endpoint names.
func Payload(m *citymap.Map) map[string]any {
	cities := make([]any, 0, m.CityCount())
	for _, c := range m.Cities() {
		cities = append(cities, map[string]any{
			"name":        c.Name,
			"route_count": c.RouteCount,
		})
	}
	routes := make([]any, 0, m.RouteCount())
	for _, v := range m.RouteViews() {
		routes = append(routes, map[string]any{
			"from":    v.From,
			"to":      v.To,
			"ferries": v.Ferries,
			"tunnel":  v.Tunnel,
			"color":   v.Color,
			"length":  v.Length,
		})
	}
	return map[string]any{
		"cities": cities,
		"routes": routes,
	}
}

// Publish connects, emits the map and waits for the acknowledgement event.
// It returns the acknowledgement's first argument, if any.
func (p *Publisher) Publish(ctx context.Context, m *citymap.Map) (any, error) {
	logger := ctxlog.FromContext(ctx).With("url", p.opts.URL, "event", p.opts.Event, "ack_event", p.opts.AckEvent)
	logger.Debug("Publish started.")
	defer logger.Debug("Publish finished.")

	var isConnected atomic.Bool
	done := make(chan opResult, 1)
	finish := func(res opResult) {
		select {
		case done <- res:
		default:
		}
	}

	opCtx, cancel := context.WithTimeout(ctx, p.opts.Timeout)
	defer cancel()

	opts := socket.DefaultOptions()
	opts.SetPath(p.path)
	if p.opts.InsecureSkipVerify {
		logger.Warn("Skipping TLS certificate verification")
		opts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))

	manager := socket.NewManager(p.baseURL, opts)
	io := manager.Socket(p.opts.Namespace, opts)
	defer func() {
		logger.Debug("Disconnecting socket client")
		io.Disconnect()
	}()

	payload := Payload(m)
	io.On(types.EventName("connect"), func(...any) {
		isConnected.Store(true)
		logger.Info("Connected, emitting map", "namespace", p.opts.Namespace, "sid", io.Id(), "cities", m.CityCount(), "routes", m.RouteCount())
		io.Emit(p.opts.Event, payload)
	})

	io.On(types.EventName("connect_error"), func(errs ...any) {
		finish(opResult{err: connectError(errs)})
	})

	io.On(types.EventName(p.opts.AckEvent), func(data ...any) {
		var ack any
		if len(data) > 0 {
			ack = data[0]
		}
		finish(opResult{ack: ack})
	})

	io.Connect()

	select {
	case <-opCtx.Done():
		if err := ctx.Err(); err != nil && !errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("publish cancelled: %w", err)
		}
		if isConnected.Load() {
			return nil, fmt.Errorf("timed out after connecting while waiting for event '%s'", p.opts.AckEvent)
		}
		return nil, errors.New("timed out while waiting for initial connection")
	case res := <-done:
		if res.err != nil {
			return nil, fmt.Errorf("publish failed: %w", res.err)
		}
		logger.Info("Map acknowledged by server")
		return res.ack, nil
	}
}

func connectError(errs []any) error {
	if len(errs) > 0 {
		if err, ok := errs[0].(error); ok {
			return err
		}
		return fmt.Errorf("connect error: %v", errs[0])
	}
	return errors.New("connect error")
}
