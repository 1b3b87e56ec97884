package network

import (
	"errors"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/antigen/core"
)

// PeerID uniquely identifies a connected client
type PeerID uint32

// ErrTooManyPeers is returned when MaxPeers clients are already connected
var ErrTooManyPeers = errors.New("peer limit reached")

// Peer represents one websocket client
type Peer struct {
	ID       PeerID
	Addr     string
	LastSeen atomic.Int64 // UnixNano

	conn *websocket.Conn
	cfg  *Config

	// Send queue of encoded text frames
	sendCh  chan []byte
	dropped atomic.Int64

	// Lifecycle
	closeCh   chan struct{}
	closeOnce sync.Once
}

func newPeer(id PeerID, conn *websocket.Conn, cfg *Config) *Peer {
	p := &Peer{
		ID:      id,
		Addr:    conn.RemoteAddr().String(),
		conn:    conn,
		cfg:     cfg,
		sendCh:  make(chan []byte, cfg.SendQueueSize),
		closeCh: make(chan struct{}),
	}
	p.LastSeen.Store(time.Now().UnixNano())
	return p
}

// Send queues a frame for transmission
// Returns false if the peer is closed or its queue is full; slow clients lose frames
func (p *Peer) Send(frame []byte) bool {
	select {
	case <-p.closeCh:
		return false
	default:
	}

	select {
	case p.sendCh <- frame:
		return true
	default:
		p.dropped.Add(1)
		return false
	}
}

// Dropped returns frames lost to a full queue
func (p *Peer) Dropped() int64 {
	return p.dropped.Load()
}

// Close sends a best-effort close frame and tears down the connection; idempotent
func (p *Peer) Close() {
	p.closeOnce.Do(func() {
		close(p.closeCh)
		p.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(p.cfg.WriteTimeout))
		p.conn.Close()
	})
}

// readLoop reads text frames until the connection fails
func (p *Peer) readLoop(handler func(PeerID, []byte)) {
	defer p.Close()

	p.conn.SetReadLimit(p.cfg.ReadLimit)
	p.conn.SetReadDeadline(time.Now().Add(p.cfg.PongTimeout))
	p.conn.SetPongHandler(func(string) error {
		p.LastSeen.Store(time.Now().UnixNano())
		return p.conn.SetReadDeadline(time.Now().Add(p.cfg.PongTimeout))
	})

	for {
		msgType, data, err := p.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				log.Printf("network: peer %d read: %v", p.ID, err)
			}
			return
		}
		p.LastSeen.Store(time.Now().UnixNano())
		p.conn.SetReadDeadline(time.Now().Add(p.cfg.PongTimeout))

		if msgType != websocket.TextMessage {
			continue
		}
		handler(p.ID, data)
	}
}

// writeLoop drains the send queue and keeps the connection alive with pings
func (p *Peer) writeLoop() {
	ticker := time.NewTicker(p.cfg.PingInterval)
	defer func() {
		ticker.Stop()
		p.Close()
	}()

	for {
		select {
		case <-p.closeCh:
			return

		case frame := <-p.sendCh:
			p.conn.SetWriteDeadline(time.Now().Add(p.cfg.WriteTimeout))
			if err := p.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}

		case <-ticker.C:
			if err := p.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(p.cfg.WriteTimeout)); err != nil {
				return
			}
		}
	}
}

// PeerManager tracks connected clients
type PeerManager struct {
	cfg *Config

	mu     sync.RWMutex
	peers  map[PeerID]*Peer
	nextID atomic.Uint32

	// pending counts admitted peers still running onConnect; guarded by mu
	pending int

	onConnect    func(*Peer)
	onDisconnect func(PeerID)
	onMessage    func(PeerID, []byte)

	wg sync.WaitGroup
}

// NewPeerManager creates an empty manager
func NewPeerManager(cfg *Config) *PeerManager {
	return &PeerManager{
		cfg:   cfg,
		peers: make(map[PeerID]*Peer),
	}
}

// SetHandlers configures connection and message callbacks
// onConnect runs before the peer joins broadcasts, so frames it queues arrive first
func (m *PeerManager) SetHandlers(onConnect func(*Peer), onDisconnect func(PeerID), onMessage func(PeerID, []byte)) {
	m.onConnect = onConnect
	m.onDisconnect = onDisconnect
	m.onMessage = onMessage
}

// AddConnection registers an upgraded connection and starts its loops
// The slot is reserved before onConnect so concurrent upgrades cannot exceed MaxPeers
func (m *PeerManager) AddConnection(conn *websocket.Conn) (*Peer, error) {
	m.mu.Lock()
	if len(m.peers)+m.pending >= m.cfg.MaxPeers {
		m.mu.Unlock()
		return nil, ErrTooManyPeers
	}
	m.pending++
	m.mu.Unlock()

	p := newPeer(PeerID(m.nextID.Add(1)), conn, m.cfg)
	if m.onConnect != nil {
		m.onConnect(p)
	}

	m.mu.Lock()
	m.pending--
	m.peers[p.ID] = p
	m.mu.Unlock()

	m.wg.Add(2)
	core.Go(func() {
		defer m.wg.Done()
		p.writeLoop()
	})
	core.Go(func() {
		defer m.wg.Done()
		p.readLoop(m.dispatch)
		m.remove(p.ID)
	})

	return p, nil
}

func (m *PeerManager) dispatch(id PeerID, data []byte) {
	if m.onMessage != nil {
		m.onMessage(id, data)
	}
}

func (m *PeerManager) remove(id PeerID) {
	m.mu.Lock()
	_, ok := m.peers[id]
	delete(m.peers, id)
	m.mu.Unlock()

	if ok && m.onDisconnect != nil {
		m.onDisconnect(id)
	}
}

// Send queues a frame for one peer
func (m *PeerManager) Send(id PeerID, frame []byte) bool {
	m.mu.RLock()
	p, ok := m.peers[id]
	m.mu.RUnlock()
	if !ok {
		return false
	}
	return p.Send(frame)
}

// Broadcast queues a frame for every peer and returns how many accepted it
func (m *PeerManager) Broadcast(frame []byte) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sent := 0
	for _, p := range m.peers {
		if p.Send(frame) {
			sent++
		}
	}
	return sent
}

// PeerCount returns connected peer count
func (m *PeerManager) PeerCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.peers)
}

// Close disconnects every peer and waits for their loops
func (m *PeerManager) Close() {
	m.mu.RLock()
	for _, p := range m.peers {
		p.Close()
	}
	m.mu.RUnlock()
	m.wg.Wait()
}
