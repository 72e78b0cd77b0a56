package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/voicethroughimage/vti/internal/assistant"
	"github.com/voicethroughimage/vti/internal/i18n"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// chatRequest is the incoming WebSocket message format.
type chatRequest struct {
	Type    string `json:"type"` // "message" or "reset"
	Content string `json:"content"`
}

// chatResponse is the outgoing WebSocket message format.
type chatResponse struct {
	Type    string `json:"type"` // "chunk", "done" or "error"
	Content string `json:"content,omitempty"`
}

func (s *Site) handleChatSocket(w http.ResponseWriter, r *http.Request) {
	sess := current(r.Context())
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn().Err(err).Msg("chat websocket upgrade")
		return
	}
	defer conn.Close()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.log.Debug().Err(err).Msg("chat websocket read")
			}
			return
		}

		var req chatRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			s.send(conn, chatResponse{Type: "error", Content: "invalid message format"})
			continue
		}

		lang := sess.Snapshot().Lang
		switch req.Type {
		case "message":
			if req.Content == "" {
				s.send(conn, chatResponse{Type: "error", Content: "content is required"})
				continue
			}
			conv := sess.Conversation(i18n.T(lang, "chat.welcome"))
			err := conv.Send(r.Context(), s.Assistant, req.Content, func(chunk string) {
				s.send(conn, chatResponse{Type: "chunk", Content: chunk})
			})
			if err != nil {
				s.log.Warn().Err(err).Msg("chat message failed")
				text := chatError(lang, err)
				if errors.Is(err, assistant.ErrBusy) || errors.Is(err, assistant.ErrEmptyMessage) {
					text = err.Error()
				}
				s.send(conn, chatResponse{Type: "error", Content: text})
				continue
			}
			s.send(conn, chatResponse{Type: "done"})
		case "reset":
			sess.ResetConversation()
			s.send(conn, chatResponse{Type: "done"})
		default:
			s.send(conn, chatResponse{Type: "error", Content: "unknown message type: " + req.Type})
		}
	}
}

func (s *Site) send(conn *websocket.Conn, resp chatResponse) {
	if err := conn.WriteJSON(resp); err != nil {
		s.log.Debug().Err(err).Msg("chat websocket write")
	}
}
