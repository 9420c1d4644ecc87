package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Juannyboy/tablebay-stock-flow/internal/apperr"
	"github.com/Juannyboy/tablebay-stock-flow/internal/dto"
	"github.com/Juannyboy/tablebay-stock-flow/internal/infra"
	"github.com/Juannyboy/tablebay-stock-flow/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	snapshotCacheKey = "assistant:snapshot"
	snapshotCacheTTL = 60 * time.Second
)

// ChatGateway is the outbound contract to the chat-completions service.
// Satisfied by infra.ChatClient; stubbed in tests.
type ChatGateway interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// AssistantService answers free-form questions about the stock by feeding a
// serialized snapshot of the whole dataset to the AI gateway. Advisory and
// read-only: it never writes, and its failures never touch the data paths.
type AssistantService interface {
	Ask(ctx context.Context, req dto.AskRequest) (*dto.AskResponse, error)
}

type assistantService struct {
	floors      repository.FloorRepository
	rooms       repository.RoomRepository
	items       repository.ItemRepository
	assignments repository.AssignmentRepository
	needed      repository.NeededItemRepository
	gateway     ChatGateway
	breaker     *infra.CircuitBreaker
	rdb         *redis.Client
}

func NewAssistantService(
	floors repository.FloorRepository,
	rooms repository.RoomRepository,
	items repository.ItemRepository,
	assignments repository.AssignmentRepository,
	needed repository.NeededItemRepository,
	gateway ChatGateway,
	breaker *infra.CircuitBreaker,
	rdb *redis.Client,
) AssistantService {
	return &assistantService{
		floors:      floors,
		rooms:       rooms,
		items:       items,
		assignments: assignments,
		needed:      needed,
		gateway:     gateway,
		breaker:     breaker,
		rdb:         rdb,
	}
}

const assistantInstructions = `You are a helpful stock assistant for a hotel renovation site.

IMPORTANT INSTRUCTIONS:
- Answer ANY question about rooms, floors, items, assignments, or needed items
- You can aggregate data by floor, item type, room, or any other dimension
- When asked about rooms that DON'T have something, check all rooms on that floor and find which ones are missing that item type
- Floor names like "5 east" refer to floors where display_name contains "east" and floor_number is "5"
- Item types are case-insensitive (e.g., "doorframes", "Doorframes", "DOORFRAMES" are the same)
- You can summarize, count, list, or analyze the data in any way that helps answer the user's question
- Be specific with room numbers and floor information

Answer the user's question clearly and accurately based on this data.`

func (s *assistantService) Ask(ctx context.Context, req dto.AskRequest) (*dto.AskResponse, error) {
	snapshot, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	system := fmt.Sprintf("%s\n\nCURRENT DATA:\n%s", assistantInstructions, snapshot)

	var answer string
	cbErr := s.breaker.Execute(func() error {
		var gwErr error
		answer, gwErr = s.gateway.Complete(ctx, system, req.Question)
		return gwErr
	})
	if cbErr != nil {
		if errors.Is(cbErr, infra.ErrCircuitOpen) {
			return nil, apperr.Transient("assistant is temporarily unavailable", cbErr)
		}
		return nil, apperr.Transient("assistant request failed, please retry", cbErr)
	}
	return &dto.AskResponse{Answer: answer}, nil
}

// snapshotData is the JSON context fed to the model.
type snapshotData struct {
	Floors      []snapshotFloor      `json:"floors"`
	Rooms       []snapshotRoom       `json:"rooms"`
	Items       []snapshotItem       `json:"items"`
	Assignments []snapshotAssignment `json:"assignments"`
	NeededItems []snapshotNeeded     `json:"needed_items"`
}

type snapshotFloor struct {
	FloorNumber string `json:"floor_number"`
	DisplayName string `json:"display_name"`
}

type snapshotRoom struct {
	RoomNumber   string `json:"room_number"`
	FloorNumber  string `json:"floor_number"`
	FloorDisplay string `json:"floor_display"`
}

type snapshotItem struct {
	ItemType         string  `json:"item_type"`
	Description      *string `json:"description,omitempty"`
	QuantityTotal    int     `json:"quantity_total"`
	QuantityAssigned int     `json:"quantity_assigned"`
}

type snapshotAssignment struct {
	ItemType   string `json:"item_type"`
	RoomNumber string `json:"room_number"`
	Status     string `json:"status"`
}

type snapshotNeeded struct {
	ItemType   string `json:"item_type"`
	RoomNumber string `json:"room_number"`
	Quantity   int    `json:"quantity"`
	Fulfilled  bool   `json:"fulfilled"`
}

// snapshot serializes the full dataset, cached briefly in Redis so a burst of
// questions does not re-read five tables each time.
func (s *assistantService) snapshot(ctx context.Context) (string, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, snapshotCacheKey).Result(); err == nil {
			return cached, nil
		}
	}

	floors, err := s.floors.List(ctx)
	if err != nil {
		return "", apperr.Transient("storage unavailable, please retry", err)
	}
	rooms, err := s.rooms.ListAllWithFloor(ctx)
	if err != nil {
		return "", apperr.Transient("storage unavailable, please retry", err)
	}
	items, err := s.items.List(ctx)
	if err != nil {
		return "", apperr.Transient("storage unavailable, please retry", err)
	}
	assignments, err := s.assignments.ListAllWithItem(ctx)
	if err != nil {
		return "", apperr.Transient("storage unavailable, please retry", err)
	}
	needed, err := s.needed.ListAll(ctx)
	if err != nil {
		return "", apperr.Transient("storage unavailable, please retry", err)
	}

	roomNumbers := make(map[string]string, len(rooms)) // room id → number
	data := snapshotData{}
	for _, f := range floors {
		data.Floors = append(data.Floors, snapshotFloor{FloorNumber: f.FloorNumber, DisplayName: f.DisplayName})
	}
	for i := range rooms {
		r := &rooms[i]
		roomNumbers[r.ID.String()] = r.RoomNumber
		sr := snapshotRoom{RoomNumber: r.RoomNumber}
		if r.Floor != nil {
			sr.FloorNumber = r.Floor.FloorNumber
			sr.FloorDisplay = r.Floor.DisplayName
		}
		data.Rooms = append(data.Rooms, sr)
	}
	for _, it := range items {
		data.Items = append(data.Items, snapshotItem{
			ItemType:         it.ItemType,
			Description:      it.Description,
			QuantityTotal:    it.QuantityTotal,
			QuantityAssigned: it.QuantityAssigned,
		})
	}
	for _, a := range assignments {
		sa := snapshotAssignment{
			RoomNumber: roomNumbers[a.RoomID.String()],
			Status:     string(a.Status),
		}
		if a.Item != nil {
			sa.ItemType = a.Item.ItemType
		}
		data.Assignments = append(data.Assignments, sa)
	}
	for _, n := range needed {
		data.NeededItems = append(data.NeededItems, snapshotNeeded{
			ItemType:   n.ItemType,
			RoomNumber: roomNumbers[n.RoomID.String()],
			Quantity:   n.Quantity,
			Fulfilled:  n.Fulfilled,
		})
	}

	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", apperr.Transient("snapshot serialization failed", err)
	}
	out := string(b)

	if s.rdb != nil {
		if err := s.rdb.Set(context.Background(), snapshotCacheKey, out, snapshotCacheTTL).Err(); err != nil {
			log.Debug().Err(err).Msg("assistant snapshot cache write failed")
		}
	}
	return out, nil
}
