package availability

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/liamkavfc/SculpoDatabase/internal/logger"
	"github.com/liamkavfc/SculpoDatabase/internal/metrics"
	"github.com/liamkavfc/SculpoDatabase/internal/profile"
	"github.com/liamkavfc/SculpoDatabase/internal/timeutil"
)

var (
	ErrMissingTrainerID = errors.New("trainer id is required")
	ErrInvalidDayOfWeek = errors.New("day of week must be between 0 and 6")
	ErrInvalidTimeRange = errors.New("start time and end time must be valid HH:MM values with start before end")
	ErrMissingFields    = errors.New("trainer id, date, start time and end time are required")
)

// maxSearchDays bounds the forward scan in GetNextAvailableSlots so a
// trainer with an empty calendar cannot trigger an unbounded walk.
const maxSearchDays = 30

const defaultBlockReason = "Blocked by trainer"

type Service interface {
	SetWeeklyAvailability(ctx context.Context, trainerID string, req SetAvailabilityRequest) error
	GetTrainerAvailability(ctx context.Context, trainerID string) (*TrainerAvailability, error)
	BlockTimeSlot(ctx context.Context, trainerID string, req BlockTimeRequest) (string, error)
	UnblockTimeSlot(ctx context.Context, blockID string) error
	GetAvailabilityForRange(ctx context.Context, trainerID string, startDate, endDate time.Time, serviceID string) ([]DayAvailability, error)
	GetNextAvailableSlots(ctx context.Context, trainerID string, count int, serviceID string) ([]NextSlot, error)
}

type service struct {
	repo     Repository
	bookings BookingSource
	profiles profile.Repository
	now      func() time.Time
}

func NewService(repo Repository, bookings BookingSource, profiles profile.Repository) Service {
	return &service{repo: repo, bookings: bookings, profiles: profiles, now: time.Now}
}

func (s *service) SetWeeklyAvailability(ctx context.Context, trainerID string, req SetAvailabilityRequest) error {
	if trainerID == "" {
		return ErrMissingTrainerID
	}
	if req.DayOfWeek == nil || *req.DayOfWeek < 0 || *req.DayOfWeek > 6 {
		return ErrInvalidDayOfWeek
	}

	start, okStart := timeutil.ClockMinutes(req.StartTime)
	end, okEnd := timeutil.ClockMinutes(req.EndTime)
	if !okStart || !okEnd || start >= end {
		return ErrInvalidTimeRange
	}

	w := &WeeklyAvailability{
		TrainerID:   trainerID,
		DayOfWeek:   *req.DayOfWeek,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		IsAvailable: req.IsAvailable,
	}

	if err := s.repo.UpsertWeeklyAvailability(ctx, w); err != nil {
		logger.Error("failed to upsert weekly availability", "trainerId", trainerID, "dayOfWeek", *req.DayOfWeek, "error", err)
		return err
	}

	return nil
}

// GetTrainerAvailability returns the raw schedule. Store failures on either
// read degrade to an empty list so callers render "no schedule" instead of
// an error.
func (s *service) GetTrainerAvailability(ctx context.Context, trainerID string) (*TrainerAvailability, error) {
	if trainerID == "" {
		return nil, ErrMissingTrainerID
	}

	metrics.RecordAvailabilityQuery("schedule")

	weekly, err := s.repo.GetWeeklyAvailability(ctx, trainerID)
	if err != nil {
		logger.Error("failed to load weekly availability", "trainerId", trainerID, "error", err)
		weekly = nil
	}

	blocked, err := s.repo.GetActiveBlockedTimes(ctx, trainerID)
	if err != nil {
		logger.Error("failed to load blocked times", "trainerId", trainerID, "error", err)
		blocked = nil
	}

	if weekly == nil {
		weekly = []WeeklyAvailability{}
	}
	if blocked == nil {
		blocked = []BlockedTime{}
	}

	return &TrainerAvailability{WeeklyAvailability: weekly, BlockedTimes: blocked}, nil
}

func (s *service) BlockTimeSlot(ctx context.Context, trainerID string, req BlockTimeRequest) (string, error) {
	if trainerID == "" || req.Date == "" || req.StartTime == "" || req.EndTime == "" {
		return "", ErrMissingFields
	}

	date, ok := timeutil.Normalize(req.Date)
	if !ok {
		return "", ErrMissingFields
	}

	reason := req.Reason
	if reason == "" {
		reason = defaultBlockReason
	}

	b := &BlockedTime{
		TrainerID: trainerID,
		Date:      timeutil.StartOfDay(date),
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Reason:    reason,
	}

	id, err := s.repo.InsertBlockedTime(ctx, b)
	if err != nil {
		logger.Error("failed to insert blocked time", "trainerId", trainerID, "error", err)
		return "", err
	}

	metrics.RecordBlockedTime()
	logger.Info("blocked time created", "trainerId", trainerID, "blockId", id, "date", req.Date)
	return id, nil
}

func (s *service) UnblockTimeSlot(ctx context.Context, blockID string) error {
	if blockID == "" {
		return ErrMissingFields
	}
	return s.repo.DeactivateBlockedTime(ctx, blockID)
}

// GetAvailabilityForRange resolves each calendar day in [startDate, endDate]
// against the weekly template, active blocks and non-cancelled bookings.
// Days without an available template contribute nothing. Store failures
// degrade to an empty result. serviceID is accepted for contract
// compatibility; the engine does not filter by service.
func (s *service) GetAvailabilityForRange(ctx context.Context, trainerID string, startDate, endDate time.Time, serviceID string) ([]DayAvailability, error) {
	if trainerID == "" {
		return nil, ErrMissingTrainerID
	}
	_ = serviceID

	metrics.RecordAvailabilityQuery("range")

	weekly, err := s.repo.GetWeeklyAvailability(ctx, trainerID)
	if err != nil {
		logger.Error("failed to load weekly availability for range", "trainerId", trainerID, "error", err)
		return []DayAvailability{}, nil
	}

	blocked, err := s.repo.GetActiveBlockedTimes(ctx, trainerID)
	if err != nil {
		logger.Error("failed to load blocked times for range", "trainerId", trainerID, "error", err)
		return []DayAvailability{}, nil
	}

	bookings, err := s.bookings.QueryByTrainerAndDateRange(ctx, trainerID, timeutil.StartOfDay(startDate), timeutil.StartOfDay(endDate))
	if err != nil {
		logger.Error("failed to load bookings for range", "trainerId", trainerID, "error", err)
		return []DayAvailability{}, nil
	}

	templates := make(map[int]WeeklyAvailability, len(weekly))
	for _, w := range weekly {
		templates[w.DayOfWeek] = w
	}

	trainerName := s.trainerDisplayName(ctx, trainerID)

	var days []DayAvailability
	slots := 0
	for d := timeutil.StartOfDay(startDate); !d.After(timeutil.StartOfDay(endDate)); d = d.AddDate(0, 0, 1) {
		template, ok := templates[int(d.Weekday())]
		if !ok || !template.IsAvailable {
			continue
		}

		day := resolveDay(d, template, blocked, bookings)
		day.TrainerName = trainerName
		slots += len(day.AvailableSlots) + len(day.BusySlots)
		days = append(days, day)
	}

	metrics.RecordSlotsComputed("range", slots)
	return days, nil
}

// resolveDay subtracts the day's busy intervals from the template window.
// Every overlapping block and booking is emitted as its own busy slot even
// when they overlap each other; the available remainder is computed against
// the merged union so busy and available intervals never intersect.
func resolveDay(date time.Time, template WeeklyAvailability, blocked []BlockedTime, bookings []BookingRecord) DayAvailability {
	dayStart, _ := timeutil.ClockMinutes(template.StartTime)
	dayEnd, _ := timeutil.ClockMinutes(template.EndTime)

	var busy []TimeSlot
	var intervals []interval

	for _, b := range blocked {
		if !timeutil.SameDay(b.Date, date) {
			continue
		}
		start, okStart := timeutil.ClockMinutes(b.StartTime)
		end, okEnd := timeutil.ClockMinutes(b.EndTime)
		if !okStart || !okEnd {
			continue
		}
		iv, ok := clamp(start, end, dayStart, dayEnd)
		if !ok {
			continue
		}
		busy = append(busy, TimeSlot{
			StartTime: timeutil.MinutesToClock(iv.start),
			EndTime:   timeutil.MinutesToClock(iv.end),
			Reason:    ReasonBlocked,
		})
		intervals = append(intervals, iv)
	}

	for _, b := range bookings {
		if !b.Blocks || !timeutil.SameDay(b.BookingDate, date) {
			continue
		}
		start := b.StartTime.Hour()*60 + b.StartTime.Minute()
		end := b.EndTime.Hour()*60 + b.EndTime.Minute()
		iv, ok := clamp(start, end, dayStart, dayEnd)
		if !ok {
			continue
		}
		busy = append(busy, TimeSlot{
			StartTime: timeutil.MinutesToClock(iv.start),
			EndTime:   timeutil.MinutesToClock(iv.end),
			Reason:    ReasonBooked,
			BookingID: b.ID,
		})
		intervals = append(intervals, iv)
	}

	var available []TimeSlot
	cursor := dayStart
	for _, iv := range mergeIntervals(intervals) {
		if iv.start > cursor {
			available = append(available, TimeSlot{
				StartTime:   timeutil.MinutesToClock(cursor),
				EndTime:     timeutil.MinutesToClock(iv.start),
				IsAvailable: true,
			})
		}
		if iv.end > cursor {
			cursor = iv.end
		}
	}
	if cursor < dayEnd {
		available = append(available, TimeSlot{
			StartTime:   timeutil.MinutesToClock(cursor),
			EndTime:     timeutil.MinutesToClock(dayEnd),
			IsAvailable: true,
		})
	}

	sortSlots(available)
	sortSlots(busy)

	return DayAvailability{
		TrainerID:      template.TrainerID,
		Date:           date,
		AvailableSlots: available,
		BusySlots:      busy,
	}
}

// GetNextAvailableSlots scans forward from tomorrow for days that are
// entirely free: a day qualifies only when it has a template and carries no
// blocked times and no bookings at all, in any status. This is deliberately
// coarser than GetAvailabilityForRange; partially booked days are skipped
// whole. serviceID is accepted for contract compatibility and ignored.
func (s *service) GetNextAvailableSlots(ctx context.Context, trainerID string, count int, serviceID string) ([]NextSlot, error) {
	if trainerID == "" {
		return nil, ErrMissingTrainerID
	}
	_ = serviceID
	if count <= 0 {
		count = 1
	}

	metrics.RecordAvailabilityQuery("next")

	weekly, err := s.repo.GetWeeklyAvailability(ctx, trainerID)
	if err != nil {
		logger.Error("failed to load weekly availability for slot search", "trainerId", trainerID, "error", err)
		return []NextSlot{}, nil
	}

	blocked, err := s.repo.GetActiveBlockedTimes(ctx, trainerID)
	if err != nil {
		logger.Error("failed to load blocked times for slot search", "trainerId", trainerID, "error", err)
		return []NextSlot{}, nil
	}

	first := timeutil.StartOfDay(s.now()).AddDate(0, 0, 1)
	last := first.AddDate(0, 0, maxSearchDays-1)

	bookings, err := s.bookings.QueryByTrainerAndDateRange(ctx, trainerID, first, last)
	if err != nil {
		logger.Error("failed to load bookings for slot search", "trainerId", trainerID, "error", err)
		return []NextSlot{}, nil
	}

	templates := make(map[int]WeeklyAvailability, len(weekly))
	for _, w := range weekly {
		templates[w.DayOfWeek] = w
	}

	blockedDays := make(map[string]bool)
	for _, b := range blocked {
		blockedDays[timeutil.DateKey(b.Date)] = true
	}
	bookedDays := make(map[string]bool)
	for _, b := range bookings {
		bookedDays[timeutil.DateKey(b.BookingDate)] = true
	}

	slots := []NextSlot{}
	for d := first; !d.After(last) && len(slots) < count; d = d.AddDate(0, 0, 1) {
		template, ok := templates[int(d.Weekday())]
		if !ok || !template.IsAvailable {
			continue
		}
		key := timeutil.DateKey(d)
		if blockedDays[key] || bookedDays[key] {
			continue
		}
		slots = append(slots, NextSlot{
			Date:          d,
			StartTime:     template.StartTime,
			EndTime:       template.EndTime,
			FormattedDate: d.Format("Monday, January 2"),
			FormattedTime: template.StartTime + " - " + template.EndTime,
		})
	}

	metrics.RecordSlotsComputed("next", len(slots))
	return slots, nil
}

// trainerDisplayName resolves the trainer's name for day views. Display
// names are never required for slot correctness; a miss or store failure
// falls back to "Unknown Trainer".
func (s *service) trainerDisplayName(ctx context.Context, trainerID string) string {
	p, err := s.profiles.GetProfile(ctx, trainerID)
	if err != nil {
		logger.Error("failed to resolve trainer name", "trainerId", trainerID, "error", err)
		return "Unknown Trainer"
	}
	if p == nil {
		return "Unknown Trainer"
	}
	return p.DisplayName()
}

type interval struct {
	start int
	end   int
}

func clamp(start, end, lo, hi int) (interval, bool) {
	if start < lo {
		start = lo
	}
	if end > hi {
		end = hi
	}
	if start >= end {
		return interval{}, false
	}
	return interval{start: start, end: end}, true
}

func mergeIntervals(intervals []interval) []interval {
	if len(intervals) == 0 {
		return nil
	}
	sort.Slice(intervals, func(i, j int) bool {
		return intervals[i].start < intervals[j].start
	})

	merged := []interval{intervals[0]}
	for _, iv := range intervals[1:] {
		last := &merged[len(merged)-1]
		if iv.start <= last.end {
			if iv.end > last.end {
				last.end = iv.end
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}

// sortSlots orders by the zero-padded start string. Lexicographic order on
// "HH:MM" equals chronological order and matches the wire format callers
// already depend on.
func sortSlots(slots []TimeSlot) {
	sort.Slice(slots, func(i, j int) bool {
		return slots[i].StartTime < slots[j].StartTime
	})
}
