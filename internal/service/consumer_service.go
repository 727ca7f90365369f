package service

import (
	"context"
	"encoding/json"
	"log"

	"project-composer-be/internal/dto"
	"project-composer-be/internal/websocket"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService reacts to workspace.saved messages: it reloads the stored
// document, swaps it into the live session and pushes the fresh snapshot to
// every subscribed socket.
type consumerService struct {
	pubSub           *gochannel.GoChannel
	topicName        string
	workspaceService IWorkspaceService
	syncService      ISyncService
	hub              *websocket.Hub
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	workspaceService IWorkspaceService,
	syncService ISyncService,
	hub *websocket.Hub,
) IConsumerService {
	return &consumerService{
		pubSub:           pubSub,
		topicName:        topicName,
		workspaceService: workspaceService,
		syncService:      syncService,
		hub:              hub,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.WorkspaceSavedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	if !cs.syncService.IsSubscribed(payload.UserId) {
		msg.Ack()
		return
	}

	snapshot, live, err := cs.workspaceService.ApplyRemoteDocument(ctx, payload.UserId)
	if err != nil {
		log.Printf("[ERROR] Failed to apply remote document for %s: %v", payload.UserId, err)
		msg.Nack() // Nack for retriable errors
		return
	}

	if live {
		cs.hub.SendWorkspace(payload.UserId, snapshot)
	}

	msg.Ack()
}
