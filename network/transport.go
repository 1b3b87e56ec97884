package network

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/antigen/core"
)

// Transport serves the websocket endpoint and owns the peer set
type Transport struct {
	config   *Config
	peers    *PeerManager
	upgrader websocket.Upgrader

	server   *http.Server
	listener net.Listener

	running atomic.Bool
	wg      sync.WaitGroup
}

// NewTransport creates a transport with the given configuration
func NewTransport(cfg *Config) *Transport {
	t := &Transport{
		config: cfg,
		peers:  NewPeerManager(cfg),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			// Local tool; any page may observe the simulation
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
	t.server = &http.Server{
		Handler:           t.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return t
}

// SetHandlers configures message and connection callbacks
func (t *Transport) SetHandlers(onConnect func(*Peer), onDisconnect func(PeerID), onMessage func(PeerID, []byte)) {
	t.peers.SetHandlers(onConnect, onDisconnect, onMessage)
}

// Handler returns the HTTP handler serving the websocket path
func (t *Transport) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+t.config.Path, t.serveWS)
	return mux
}

func (t *Transport) serveWS(w http.ResponseWriter, r *http.Request) {
	if t.peers.PeerCount() >= t.config.MaxPeers {
		http.Error(w, ErrTooManyPeers.Error(), http.StatusServiceUnavailable)
		return
	}

	conn, err := t.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied with an HTTP error
		log.Printf("network: upgrade from %s: %v", r.RemoteAddr, err)
		return
	}

	if _, err := t.peers.AddConnection(conn); err != nil {
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseTryAgainLater, err.Error()),
			time.Now().Add(t.config.WriteTimeout))
		conn.Close()
	}
}

// Start binds the listener and serves in the background
func (t *Transport) Start() error {
	if !t.running.CompareAndSwap(false, true) {
		return nil
	}

	ln, err := net.Listen("tcp", t.config.Address)
	if err != nil {
		t.running.Store(false)
		return fmt.Errorf("listening on %s: %w", t.config.Address, err)
	}
	t.listener = ln

	t.wg.Add(1)
	core.Go(func() {
		defer t.wg.Done()
		if err := t.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("network: serve: %v", err)
		}
	})

	log.Printf("network: streaming on ws://%s%s", ln.Addr(), t.config.Path)
	return nil
}

// Addr returns the bound address, empty before Start
func (t *Transport) Addr() string {
	if t.listener == nil {
		return ""
	}
	return t.listener.Addr().String()
}

// Stop closes the listener, disconnects peers and waits for goroutines
func (t *Transport) Stop() error {
	if !t.running.CompareAndSwap(true, false) {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), t.config.WriteTimeout)
	defer cancel()
	err := t.server.Shutdown(ctx)

	// Hijacked websocket connections are not tracked by Shutdown
	t.peers.Close()
	t.wg.Wait()
	return err
}

// Send transmits to a specific peer
func (t *Transport) Send(id PeerID, frame []byte) bool {
	return t.peers.Send(id, frame)
}

// Broadcast sends to all peers
func (t *Transport) Broadcast(frame []byte) int {
	return t.peers.Broadcast(frame)
}

// PeerCount returns connected peer count
func (t *Transport) PeerCount() int {
	return t.peers.PeerCount()
}

// IsRunning returns transport state
func (t *Transport) IsRunning() bool {
	return t.running.Load()
}
