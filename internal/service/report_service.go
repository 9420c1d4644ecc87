package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Juannyboy/tablebay-stock-flow/internal/apperr"
	"github.com/Juannyboy/tablebay-stock-flow/internal/dto"
	"github.com/Juannyboy/tablebay-stock-flow/internal/model"
	"github.com/Juannyboy/tablebay-stock-flow/internal/repository"

	"github.com/redis/go-redis/v9"
)

const (
	dashboardCacheKey = "dashboard:stats"
	dashboardCacheTTL = 30 * time.Second
)

// ReportService computes the read-side views: room completion, shortages,
// checklist progress, and the dashboard counters. Pure reads — no mutation.
//
// A room is complete iff it has at least one needed item and every missing
// quantity is zero, where missing counts only in_room assignments whose item
// type matches the request case-insensitively. The fulfilled flag is reported
// as progress metadata but does not decide completeness.
type ReportService interface {
	Completion(ctx context.Context) (*dto.CompletionReportResponse, error)
	Shortages(ctx context.Context) (*dto.ShortageReportResponse, error)
	ChecklistProgress(ctx context.Context) ([]dto.RoomChecklistProgress, error)
	Dashboard(ctx context.Context) (*dto.DashboardResponse, error)
}

type reportService struct {
	rooms       repository.RoomRepository
	floors      repository.FloorRepository
	items       repository.ItemRepository
	assignments repository.AssignmentRepository
	needed      repository.NeededItemRepository
	rdb         *redis.Client
}

func NewReportService(
	rooms repository.RoomRepository,
	floors repository.FloorRepository,
	items repository.ItemRepository,
	assignments repository.AssignmentRepository,
	needed repository.NeededItemRepository,
	rdb *redis.Client,
) ReportService {
	return &reportService{
		rooms:       rooms,
		floors:      floors,
		items:       items,
		assignments: assignments,
		needed:      needed,
		rdb:         rdb,
	}
}

func (s *reportService) Completion(ctx context.Context) (*dto.CompletionReportResponse, error) {
	rows, err := s.buildRoomReports(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.CompletionReportResponse{Rooms: rows}
	resp.TotalRooms = len(rows)
	for _, r := range rows {
		if r.IsComplete {
			resp.CompleteRooms++
		} else {
			resp.IncompleteRooms++
		}
	}
	return resp, nil
}

func (s *reportService) Shortages(ctx context.Context) (*dto.ShortageReportResponse, error) {
	rows, err := s.buildRoomReports(ctx)
	if err != nil {
		return nil, err
	}
	short := make([]dto.RoomCompletionReport, 0)
	for _, r := range rows {
		if len(r.MissingItems) > 0 {
			short = append(short, r)
		}
	}
	return &dto.ShortageReportResponse{Rooms: short}, nil
}

// buildRoomReports joins rooms, needed items, and assignments in memory —
// the result sets are small (one hotel). Only rooms with at least one needed
// item appear in the report.
func (s *reportService) buildRoomReports(ctx context.Context) ([]dto.RoomCompletionReport, error) {
	rooms, err := s.rooms.ListAllWithFloor(ctx)
	if err != nil {
		return nil, apperr.Transient("storage unavailable, please retry", err)
	}
	needed, err := s.needed.ListAll(ctx)
	if err != nil {
		return nil, apperr.Transient("storage unavailable, please retry", err)
	}
	assignments, err := s.assignments.ListAllWithItem(ctx)
	if err != nil {
		return nil, apperr.Transient("storage unavailable, please retry", err)
	}

	rows := make([]dto.RoomCompletionReport, 0, len(rooms))
	for i := range rooms {
		room := &rooms[i]

		var neededLines []dto.NeededLine
		for _, n := range needed {
			if n.RoomID != room.ID {
				continue
			}
			neededLines = append(neededLines, dto.NeededLine{
				ItemType:    n.ItemType,
				Quantity:    n.Quantity,
				Description: n.Description,
				Fulfilled:   n.Fulfilled,
			})
		}
		if len(neededLines) == 0 {
			continue
		}

		// Group this room's assignments by (item type, status) for display.
		var assignedLines []dto.AssignedLine
		for _, a := range assignments {
			if a.RoomID != room.ID || a.Item == nil {
				continue
			}
			merged := false
			for j := range assignedLines {
				if sameItemType(assignedLines[j].ItemType, a.Item.ItemType) && assignedLines[j].Status == string(a.Status) {
					assignedLines[j].Quantity++
					merged = true
					break
				}
			}
			if !merged {
				assignedLines = append(assignedLines, dto.AssignedLine{
					ItemType: a.Item.ItemType,
					Status:   string(a.Status),
					Quantity: 1,
				})
			}
		}

		// missing = max(0, needed − in_room units of the same type)
		var missing []dto.MissingLine
		for _, n := range neededLines {
			onSite := 0
			for _, a := range assignments {
				if a.RoomID != room.ID || a.Item == nil || a.Status != model.StatusInRoom {
					continue
				}
				if sameItemType(a.Item.ItemType, n.ItemType) {
					onSite++
				}
			}
			if onSite < n.Quantity {
				missing = append(missing, dto.MissingLine{
					ItemType: n.ItemType,
					Quantity: n.Quantity - onSite,
				})
			}
		}

		row := dto.RoomCompletionReport{
			RoomID:        room.ID.String(),
			RoomNumber:    room.RoomNumber,
			NeededItems:   neededLines,
			AssignedItems: assignedLines,
			MissingItems:  missing,
			IsComplete:    len(missing) == 0,
		}
		if room.Floor != nil {
			row.FloorDisplay = room.Floor.DisplayName
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *reportService) ChecklistProgress(ctx context.Context) ([]dto.RoomChecklistProgress, error) {
	rooms, err := s.rooms.ListAllWithFloor(ctx)
	if err != nil {
		return nil, apperr.Transient("storage unavailable, please retry", err)
	}
	needed, err := s.needed.ListAll(ctx)
	if err != nil {
		return nil, apperr.Transient("storage unavailable, please retry", err)
	}

	out := make([]dto.RoomChecklistProgress, 0, len(rooms))
	for i := range rooms {
		room := &rooms[i]
		progress := dto.RoomChecklistProgress{
			RoomID:     room.ID.String(),
			RoomNumber: room.RoomNumber,
			FloorID:    room.FloorID.String(),
		}
		if room.Floor != nil {
			progress.FloorDisplay = room.Floor.DisplayName
		}
		for _, n := range needed {
			if n.RoomID != room.ID {
				continue
			}
			progress.Total++
			if n.Fulfilled {
				progress.Fulfilled++
			}
		}
		out = append(out, progress)
	}
	return out, nil
}

// Dashboard serves the landing-screen counters from a short-lived Redis cache;
// the cache is read-through and best effort — a Redis failure just means a DB
// round trip.
func (s *reportService) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, dashboardCacheKey).Bytes(); err == nil {
			var resp dto.DashboardResponse
			if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
				return &resp, nil
			}
		}
	}

	floorCount, err := s.floors.Count(ctx)
	if err != nil {
		return nil, apperr.Transient("storage unavailable, please retry", err)
	}
	roomCount, err := s.rooms.Count(ctx)
	if err != nil {
		return nil, apperr.Transient("storage unavailable, please retry", err)
	}
	totalUnits, err := s.items.SumTotals(ctx)
	if err != nil {
		return nil, apperr.Transient("storage unavailable, please retry", err)
	}
	statusCounts, err := s.assignments.CountByStatus(ctx)
	if err != nil {
		return nil, apperr.Transient("storage unavailable, please retry", err)
	}

	resp := &dto.DashboardResponse{
		TotalFloors:      int(floorCount),
		TotalRooms:       int(roomCount),
		TotalUnits:       int(totalUnits),
		AssignmentCounts: statusCounts,
	}

	if s.rdb != nil {
		if b, jsonErr := json.Marshal(resp); jsonErr == nil {
			_ = s.rdb.Set(context.Background(), dashboardCacheKey, b, dashboardCacheTTL).Err()
		}
	}
	return resp, nil
}
