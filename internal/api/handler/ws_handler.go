package handler

import (
	"context"
	log "log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/joeljosepholawale/campustng/internal/pkg/consts"
	"github.com/joeljosepholawale/campustng/internal/pkg/redis"
	"github.com/joeljosepholawale/campustng/internal/pkg/response"
	"github.com/joeljosepholawale/campustng/internal/pkg/security"
	"github.com/joeljosepholawale/campustng/internal/service"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type WsHandler struct {
	chatSvc      service.ChatService
	communitySvc service.CommunityService
}

func NewWsHandler(chatSvc service.ChatService, communitySvc service.CommunityService) *WsHandler {
	return &WsHandler{chatSvc: chatSvc, communitySvc: communitySvc}
}

// Connect upgrades the request to a websocket and relays chat events
// published on the user's conversation and group channels.
func (s *WsHandler) Connect(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, service.UnauthorizedError)
		return
	}
	claims, err := security.ValidateToken(token)
	if err != nil {
		log.Warn("ws auth failed", "err", err)
		response.Error(c, service.UnauthorizedError)
		return
	}
	userID := claims.UserID

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error("ws upgrade failed", "err", err)
		return
	}
	defer func() {
		_ = conn.Close()
	}()

	conversations, err := s.chatSvc.ListConversations(context.Background(), userID)
	if err != nil {
		log.Error("failed to load conversations for ws", "userID", userID, "err", err)
		return
	}
	groupIDs, err := s.communitySvc.MemberGroupIDs(context.Background(), userID)
	if err != nil {
		log.Error("failed to load group memberships for ws", "userID", userID, "err", err)
		return
	}

	channels := make([]string, 0, len(conversations)+len(groupIDs))
	for _, conv := range conversations {
		channels = append(channels, consts.ChatConversationChannel+strconv.FormatUint(conv.ID, 10))
	}
	for _, groupID := range groupIDs {
		channels = append(channels, consts.ChatGroupChannel+strconv.FormatUint(groupID, 10))
	}

	pubsub := redis.Subscribe(context.Background(), channels...)
	defer func() {
		_ = pubsub.Close()
	}()

	log.Info("ws connection established", "userID", userID, "channels", len(channels))

	stopChan := make(chan struct{})

	// Read loop detects the client hanging up.
	go func() {
		for {
			_, _, err := conn.ReadMessage()
			if err != nil {
				close(stopChan)
				return
			}
		}
	}()

	redisCh := pubsub.Channel()
	for {
		select {
		case msg := <-redisCh:
			_ = conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				log.Error("ws push failed", "userID", userID, "err", err)
				return
			}
		case <-stopChan:
			log.Info("ws connection closed", "userID", userID)
			return
		}
	}
}
