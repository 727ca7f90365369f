package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"project-composer-be/internal/dto"
	"project-composer-be/internal/entity"
	"project-composer-be/internal/websocket"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type consumerFixture struct {
	*workspaceFixture
	sync     ISyncService
	consumer *consumerService
}

func newConsumerFixture() *consumerFixture {
	f := newWorkspaceFixture()
	syncSvc := NewSyncService(f.service, nopLogger{})
	hub := websocket.NewHub(nil, nopLogger{})
	consumer := NewConsumerService(nil, "workspace.saved", f.service, syncSvc, hub).(*consumerService)
	return &consumerFixture{
		workspaceFixture: f,
		sync:             syncSvc,
		consumer:         consumer,
	}
}

func savedMessage(t *testing.T, payload dto.WorkspaceSavedMessage) *message.Message {
	t.Helper()
	blob, err := json.Marshal(payload)
	require.NoError(t, err)
	return message.NewMessage(watermill.NewUUID(), blob)
}

func assertAcked(t *testing.T, msg *message.Message) {
	t.Helper()
	select {
	case <-msg.Acked():
	case <-msg.Nacked():
		t.Fatal("message was nacked, want ack")
	case <-time.After(time.Second):
		t.Fatal("message was neither acked nor nacked")
	}
}

func TestProcessMessageAcksMalformedPayload(t *testing.T) {
	f := newConsumerFixture()

	msg := message.NewMessage(watermill.NewUUID(), []byte("{ not json"))
	f.consumer.processMessage(context.Background(), msg)
	assertAcked(t, msg)
}

func TestProcessMessageSkipsUnsubscribedUser(t *testing.T) {
	f := newConsumerFixture()

	f.docRepo.docs[f.userId] = &entity.WorkspaceDocument{
		UserId:   f.userId,
		Projects: []*entity.ProjectInstance{reactInstance("remote")},
	}

	msg := savedMessage(t, dto.WorkspaceSavedMessage{UserId: f.userId})
	f.consumer.processMessage(context.Background(), msg)
	assertAcked(t, msg)

	// The skipped push left no trace: nothing was applied or persisted.
	blob, err := f.slotRepo.Read(context.Background(), f.userId)
	require.NoError(t, err)
	assert.Nil(t, blob)
}

func TestProcessMessageAppliesDocumentForSubscribedUser(t *testing.T) {
	f := newConsumerFixture()
	ctx := context.Background()

	_, err := f.sync.BeginSession(ctx, f.userId)
	require.NoError(t, err)

	f.docRepo.docs[f.userId] = &entity.WorkspaceDocument{
		UserId:   f.userId,
		Projects: []*entity.ProjectInstance{reactInstance("remote")},
	}

	msg := savedMessage(t, dto.WorkspaceSavedMessage{UserId: f.userId})
	f.consumer.processMessage(ctx, msg)
	assertAcked(t, msg)

	workspace, err := f.service.GetWorkspace(ctx, f.userId)
	require.NoError(t, err)
	require.Len(t, workspace.Projects, 1)
	assert.Equal(t, "remote", workspace.Projects[0].Config.ProjectName)
}

func TestProcessMessageNacksOnStoreError(t *testing.T) {
	f := newConsumerFixture()
	ctx := context.Background()

	_, err := f.sync.BeginSession(ctx, f.userId)
	require.NoError(t, err)

	f.docRepo.findErr = errors.New("store down")

	msg := savedMessage(t, dto.WorkspaceSavedMessage{UserId: f.userId})
	f.consumer.processMessage(ctx, msg)

	select {
	case <-msg.Nacked():
	case <-msg.Acked():
		t.Fatal("message was acked, want nack")
	case <-time.After(time.Second):
		t.Fatal("message was neither acked nor nacked")
	}
}
