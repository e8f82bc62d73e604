package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"doggyrank/internal/logger"
	"doggyrank/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait        = 10 * time.Second
	pongWait         = 60 * time.Second
	pingPeriod       = (pongWait * 9) / 10
	maxMsgSize       = 1 << 12 // 4 KB
	defaultInterval  = 1 * time.Second
	maxInterval      = 10 * time.Second
	maxIntervalMilli = 10_000
	feedBatchSize    = 100

	envelopeVotes = "votes"
)

type wsEnvelope struct {
	Type  string      `json:"type"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// voteFeed streams vote events to one websocket client.
// cursor is the seq of the last event written.
type voteFeed struct {
	conn   *websocket.Conn
	votes  service.VoteLog
	log    *logger.Logger
	cursor int64
}

// @Summary      Live vote feed
// @Description  WebSocket stream of vote events. Each tick sends {"type":"votes","data":[...]} with events newer than the last one sent. Pass ?since=<seq> to resume.
// @Tags         votes
// @Param        interval     query  string  false  "Tick interval, e.g. 2s"
// @Param        interval_ms  query  int     false  "Tick interval in milliseconds"
// @Param        since        query  int     false  "Last seen event sequence"
// @Router       /ws [get]
func (h *Handler) wsConnect(c *gin.Context) {
	interval := h.parseInterval(c)
	since := parseSince(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_upgrade_failed", "err", err)
		}
		return
	}
	defer func() { _ = conn.Close() }()

	feed := &voteFeed{conn: conn, votes: h.services.VoteLog, log: h.log, cursor: since}
	feed.run(c.Request.Context(), interval)
}

// run pushes new votes every interval until the client goes away or a write fails.
func (f *voteFeed) run(ctx context.Context, interval time.Duration) {
	f.conn.SetReadLimit(maxMsgSize)
	_ = f.conn.SetReadDeadline(time.Now().Add(pongWait))
	f.conn.SetPongHandler(func(string) error {
		return f.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	closed := make(chan struct{})
	go f.drain(closed)

	// The first batch goes out even when empty so clients know the feed is live.
	if err := f.push(ctx, true); err != nil {
		f.info("ws_write_failed_initial", err)
		return
	}

	tick := time.NewTicker(interval)
	defer tick.Stop()
	keepalive := time.NewTicker(pingPeriod)
	defer keepalive.Stop()

	for {
		select {
		case <-closed:
			return
		case <-ctx.Done():
			return
		case <-keepalive.C:
			_ = f.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := f.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				f.info("ws_ping_failed", err)
				return
			}
		case <-tick.C:
			if err := f.push(ctx, false); err != nil {
				f.info("ws_write_failed", err)
				return
			}
		}
	}
}

// drain reads until the connection closes so control frames get handled.
func (f *voteFeed) drain(closed chan<- struct{}) {
	defer close(closed)
	for {
		if _, _, err := f.conn.ReadMessage(); err != nil {
			if f.log != nil {
				f.log.Infow("ws_read_closed", "err", err)
			}
			return
		}
	}
}

// push writes events after the cursor and advances it. Empty batches are
// skipped unless always is set.
func (f *voteFeed) push(ctx context.Context, always bool) error {
	events, err := f.votes.ListAfter(ctx, f.cursor, feedBatchSize)
	if err != nil {
		if f.log != nil {
			f.log.Errorw("ws_list_votes_failed", "err", err, "since", f.cursor)
		}
		return err
	}
	if len(events) == 0 && !always {
		return nil
	}
	if n := len(events); n > 0 {
		f.cursor = events[n-1].Seq
	}
	_ = f.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return f.conn.WriteJSON(wsEnvelope{Type: envelopeVotes, Data: events})
}

// info logs from the writer goroutine, which owns cursor.
func (f *voteFeed) info(event string, err error) {
	if f.log != nil {
		f.log.Infow(event, "err", err, "since", f.cursor)
	}
}

// parseInterval reads ?interval=2s or ?interval_ms=2000, falling back to 1s when absent or out of range.
func (h *Handler) parseInterval(c *gin.Context) time.Duration {
	if s := c.Query("interval"); s != "" {
		if d, err := time.ParseDuration(s); err == nil && d > 0 && d <= maxInterval {
			return d
		}
	}
	if ms := c.Query("interval_ms"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil && v > 0 && v <= maxIntervalMilli {
			return time.Duration(v) * time.Millisecond
		}
	}
	return defaultInterval
}

// parseSince reads ?since=<seq>; anything invalid starts from the beginning.
func parseSince(c *gin.Context) int64 {
	v, err := strconv.ParseInt(c.Query("since"), 10, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
