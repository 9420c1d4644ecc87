package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Juannyboy/tablebay-stock-flow/internal/apperr"
	"github.com/Juannyboy/tablebay-stock-flow/internal/dto"
	"github.com/Juannyboy/tablebay-stock-flow/internal/infra"
	"github.com/Juannyboy/tablebay-stock-flow/internal/model"
	"github.com/Juannyboy/tablebay-stock-flow/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGateway struct {
	lastSystem string
	lastUser   string
	answer     string
	err        error
}

func (g *stubGateway) Complete(_ context.Context, system, user string) (string, error) {
	g.lastSystem = system
	g.lastUser = user
	return g.answer, g.err
}

func newAssistantService(s *memStore, gw *stubGateway, cb *infra.CircuitBreaker) service.AssistantService {
	return service.NewAssistantService(
		&stubFloorRepo{s: s},
		&stubRoomRepo{s: s},
		&stubItemRepo{s: s},
		&stubAssignmentRepo{s: s},
		&stubNeededRepo{s: s},
		gw,
		cb,
		nil, // no cache in unit tests
	)
}

func TestAskFeedsSnapshotToGateway(t *testing.T) {
	s := newMemStore()
	floor := s.seedFloor("5", "5 East")
	room := s.seedRoom(floor.ID, "501")
	item := s.seedItem("DoorFrame", 10, 1)
	s.seedAssignment(item.ID, room.ID, model.StatusInRoom)
	s.seedNeeded(room.ID, "Curtain", 2)

	gw := &stubGateway{answer: "Room 501 has one doorframe in place."}
	svc := newAssistantService(s, gw, infra.NewCircuitBreaker(infra.DefaultCBConfig()))

	resp, err := svc.Ask(context.Background(), dto.AskRequest{Question: "what is in room 501?"})
	require.NoError(t, err)
	assert.Equal(t, "Room 501 has one doorframe in place.", resp.Answer)
	assert.Equal(t, "what is in room 501?", gw.lastUser)

	// The system prompt carries the serialized dataset.
	assert.True(t, strings.Contains(gw.lastSystem, "DoorFrame"))
	assert.True(t, strings.Contains(gw.lastSystem, "501"))
	assert.True(t, strings.Contains(gw.lastSystem, "5 East"))
}

func TestAskGatewayFailureIsTransient(t *testing.T) {
	s := newMemStore()
	gw := &stubGateway{err: errors.New("upstream 502")}
	svc := newAssistantService(s, gw, infra.NewCircuitBreaker(infra.DefaultCBConfig()))

	_, err := svc.Ask(context.Background(), dto.AskRequest{Question: "anything"})
	kind, ok := apperr.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindTransient, kind)
}

func TestAskFastFailsWhenBreakerOpen(t *testing.T) {
	s := newMemStore()
	gw := &stubGateway{err: errors.New("upstream 502")}
	cb := infra.NewCircuitBreaker(infra.CircuitBreakerConfig{
		FailureThreshold: 2,
		SuccessThreshold: 1,
		OpenTimeout:      time.Minute,
	})
	svc := newAssistantService(s, gw, cb)

	for i := 0; i < 2; i++ {
		_, err := svc.Ask(context.Background(), dto.AskRequest{Question: "q"})
		require.Error(t, err)
	}
	require.Equal(t, infra.CBOpen, cb.State())

	// Breaker open: the gateway must not be called again.
	gw.lastUser = ""
	_, err := svc.Ask(context.Background(), dto.AskRequest{Question: "q"})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindTransient))
	assert.Empty(t, gw.lastUser)
}
