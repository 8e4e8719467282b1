package copilot

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/louisbranch/man3/internal/services/assessor"
	"github.com/louisbranch/man3/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/man3/internal/services/web/platform/weberror"
	webtemplates "github.com/louisbranch/man3/internal/services/web/templates"
)

const (
	socketReadLimit    = 32 << 10
	socketReadTimeout  = 5 * time.Minute
	socketWriteTimeout = 5 * time.Second
	// socketQueue bounds questions waiting behind the one being answered.
	socketQueue = 4
)

// Frame types sent to socket clients.
const (
	FrameMessage = "message"
	FrameError   = "error"
)

// socketFrame is one server-to-client websocket message. HTML carries the
// rendered bubble so clients do not duplicate markup.
type socketFrame struct {
	Type    string            `json:"type"`
	Message *assessor.Message `json:"message,omitempty"`
	HTML    string            `json:"html,omitempty"`
	Error   string            `json:"error,omitempty"`
}

func newUpgrader(policy requestmeta.SchemePolicy) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  4 * 1024,
		WriteBufferSize: 16 * 1024,
		CheckOrigin: func(r *http.Request) bool {
			return r.Header.Get("Origin") == "" || requestmeta.HasSameOriginProof(r, policy)
		},
	}
}

func (h handlers) handleSocket(w http.ResponseWriter, r *http.Request) {
	upgrader := newUpgrader(h.policy)
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()
	conn.SetReadLimit(socketReadLimit)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	out := make(chan socketFrame, 2*socketQueue)
	questions := make(chan question, socketQueue)
	writerDone := make(chan struct{})

	// Writer goroutine.
	go func() {
		defer close(writerDone)
		for {
			select {
			case <-ctx.Done():
				return
			case frame := <-out:
				if err := writeFrame(conn, frame); err != nil {
					cancel()
					return
				}
			}
		}
	}()

	// Answer questions one at a time.
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case q := <-questions:
				userMsg, answer := h.service.ask(ctx, q)
				for _, msg := range []assessor.Message{userMsg, answer} {
					frame, err := messageFrame(ctx, msg)
					if err != nil {
						log.Printf("copilot socket render failed err=%v", err)
						continue
					}
					select {
					case out <- frame:
					case <-ctx.Done():
						return
					}
				}
			}
		}
	}()

	// Reader loop.
	for {
		_ = conn.SetReadDeadline(time.Now().Add(socketReadTimeout))
		_, payload, err := conn.ReadMessage()
		if err != nil {
			break
		}
		var q question
		if err := json.Unmarshal(payload, &q); err != nil {
			h.sendError(ctx, out, http.StatusText(http.StatusBadRequest))
			continue
		}
		q, err = q.normalize()
		if err != nil {
			h.sendError(ctx, out, weberror.PublicMessage(err))
			continue
		}
		select {
		case questions <- q:
		default:
			h.sendError(ctx, out, http.StatusText(http.StatusTooManyRequests))
		}
	}
	cancel()
	<-writerDone
}

func (h handlers) sendError(ctx context.Context, out chan<- socketFrame, message string) {
	select {
	case out <- socketFrame{Type: FrameError, Error: message}:
	case <-ctx.Done():
	}
}

func messageFrame(ctx context.Context, msg assessor.Message) (socketFrame, error) {
	var buf bytes.Buffer
	if err := webtemplates.CopilotMessage(msg).Render(ctx, &buf); err != nil {
		return socketFrame{}, err
	}
	return socketFrame{Type: FrameMessage, Message: &msg, HTML: buf.String()}, nil
}

func writeFrame(conn *websocket.Conn, frame socketFrame) error {
	payload, err := json.Marshal(frame)
	if err != nil {
		return err
	}
	_ = conn.SetWriteDeadline(time.Now().Add(socketWriteTimeout))
	return conn.WriteMessage(websocket.TextMessage, payload)
}
