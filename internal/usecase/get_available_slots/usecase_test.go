package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chayanin-p/TBN-AppointmentService/internal/domain"
	"github.com/chayanin-p/TBN-AppointmentService/pkg/types"
)

type fakeScheduleRepo struct {
	templates []*domain.ScheduleTemplate
	err       error
}

func (f *fakeScheduleRepo) List(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.ScheduleTemplate, error) {
	return f.templates, f.err
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetByDate(ctx context.Context, filter domain.BookingsOnDateFilter) ([]*domain.Booking, error) {
	return f.bookings, f.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeTimeProvider struct {
	now time.Time
}

func (f fakeTimeProvider) Now() time.Time {
	return f.now
}

// 7 сентября 2026 - понедельник
var (
	monday  = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	testNow = time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
)

func newTestUseCase(scheduleRepo *fakeScheduleRepo, bookingRepo *fakeBookingRepo) *UseCase {
	uc := NewUseCase(scheduleRepo, bookingRepo, nopLogger{})
	uc.timeProvider = fakeTimeProvider{now: testNow}
	return uc
}

func weeklyTemplate(activityType string, weekday domain.Weekday, start, end types.TimeString) *domain.ScheduleTemplate {
	return &domain.ScheduleTemplate{
		ActivityType: activityType,
		Weekday:      weekday,
		StartTime:    start,
		EndTime:      end,
	}
}

func TestGenerateTimeSlots_RangeTemplate(t *testing.T) {
	templates := []*domain.ScheduleTemplate{
		weeklyTemplate("ตรวจสุขภาพ", domain.WeekdayMonday, "09:00", "12:00"),
	}

	slots := generateTimeSlots(templates, monday, 30)

	expected := []types.TimeString{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}
	assert.Equal(t, expected, slots)
}

func TestGenerateTimeSlots_SlotMustFitInsideTemplate(t *testing.T) {
	templates := []*domain.ScheduleTemplate{
		weeklyTemplate("ตรวจสุขภาพ", domain.WeekdayMonday, "09:00", "10:30"),
	}

	// 09:00-10:00 помещается, 10:00-11:00 выходит за конец шаблона
	slots := generateTimeSlots(templates, monday, 60)

	assert.Equal(t, []types.TimeString{"09:00"}, slots)
}

func TestGenerateTimeSlots_SingleTimeTemplate(t *testing.T) {
	templates := []*domain.ScheduleTemplate{
		weeklyTemplate("ฝังเข็ม", domain.WeekdayMonday, "14:00", "14:00"),
	}

	slots := generateTimeSlots(templates, monday, 90)

	assert.Equal(t, []types.TimeString{"14:00"}, slots)
}

func TestGenerateTimeSlots_WrongWeekdaySkipped(t *testing.T) {
	templates := []*domain.ScheduleTemplate{
		weeklyTemplate("ตรวจสุขภาพ", domain.WeekdayTuesday, "09:00", "12:00"),
	}

	slots := generateTimeSlots(templates, monday, 60)

	assert.Empty(t, slots)
}

func TestGenerateTimeSlots_OneOffTemplateOnlyOnItsDate(t *testing.T) {
	oneOff := weeklyTemplate("ฝังเข็ม", domain.WeekdayMonday, "10:00", "11:00")
	oneOff.Date = &monday

	slots := generateTimeSlots([]*domain.ScheduleTemplate{oneOff}, monday, 60)
	assert.Equal(t, []types.TimeString{"10:00"}, slots)

	nextMonday := monday.AddDate(0, 0, 7)
	slots = generateTimeSlots([]*domain.ScheduleTemplate{oneOff}, nextMonday, 60)
	assert.Empty(t, slots)
}

func TestGenerateTimeSlots_OverlappingTemplatesDeduplicated(t *testing.T) {
	templates := []*domain.ScheduleTemplate{
		weeklyTemplate("ตรวจสุขภาพ", domain.WeekdayMonday, "09:00", "11:00"),
		weeklyTemplate("ตรวจสุขภาพ", domain.WeekdayMonday, "10:00", "12:00"),
	}

	slots := generateTimeSlots(templates, monday, 60)

	assert.Equal(t, []types.TimeString{"09:00", "10:00", "11:00"}, slots)
}

func TestGenerateTimeSlots_MalformedTemplateSkipped(t *testing.T) {
	broken := weeklyTemplate("ตรวจสุขภาพ", domain.WeekdayMonday, "9am", "12:00")
	ok := weeklyTemplate("ตรวจสุขภาพ", domain.WeekdayMonday, "13:00", "14:00")

	slots := generateTimeSlots([]*domain.ScheduleTemplate{broken, ok}, monday, 60)

	assert.Equal(t, []types.TimeString{"13:00"}, slots)
}

func TestFilterBookedSlots_HalfOpenIntervals(t *testing.T) {
	slots := []types.TimeString{"09:00"}

	// 09:59-11:00 пересекает слот 09:00-10:00
	overlapping := []*domain.Booking{
		{StartTime: "09:59", DurationMinutes: 61, Status: domain.StatusConfirmed},
	}
	assert.Empty(t, filterBookedSlots(slots, 60, overlapping))

	// 10:00-11:00 только граничит - слот свободен
	adjacent := []*domain.Booking{
		{StartTime: "10:00", DurationMinutes: 60, Status: domain.StatusConfirmed},
	}
	assert.Equal(t, slots, filterBookedSlots(slots, 60, adjacent))
}

func TestFilterBookedSlots_CancelledBookingIgnored(t *testing.T) {
	slots := []types.TimeString{"09:00"}

	cancelled := []*domain.Booking{
		{StartTime: "09:00", DurationMinutes: 60, Status: domain.StatusCancelled},
	}

	assert.Equal(t, slots, filterBookedSlots(slots, 60, cancelled))
}

func TestUseCase_Execute_DefaultDuration(t *testing.T) {
	scheduleRepo := &fakeScheduleRepo{templates: []*domain.ScheduleTemplate{
		weeklyTemplate("ตรวจสุขภาพ", domain.WeekdayMonday, "09:00", "12:00"),
	}}
	bookingRepo := &fakeBookingRepo{}

	uc := newTestUseCase(scheduleRepo, bookingRepo)

	resp, err := uc.Execute(context.Background(), &Request{
		ActivityType: "ตรวจสุขภาพ",
		Date:         monday,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultDurationMinutes, resp.DurationMinutes)
	require.Len(t, resp.Slots, 3)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("10:00"), resp.Slots[1].StartTime)
	assert.Equal(t, types.TimeString("11:00"), resp.Slots[2].StartTime)
}

func TestUseCase_Execute_BookedSlotExcluded(t *testing.T) {
	scheduleRepo := &fakeScheduleRepo{templates: []*domain.ScheduleTemplate{
		weeklyTemplate("ตรวจสุขภาพ", domain.WeekdayMonday, "09:00", "12:00"),
	}}
	bookingRepo := &fakeBookingRepo{bookings: []*domain.Booking{
		{StartTime: "10:00", DurationMinutes: 60, Status: domain.StatusConfirmed},
	}}

	uc := newTestUseCase(scheduleRepo, bookingRepo)

	resp, err := uc.Execute(context.Background(), &Request{
		ActivityType:    "ตรวจสุขภาพ",
		Date:            monday,
		DurationMinutes: 60,
	})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("11:00"), resp.Slots[1].StartTime)
}

func TestUseCase_Execute_PastSlotsExcludedForToday(t *testing.T) {
	// testNow = вторник 2026-09-01 09:00
	scheduleRepo := &fakeScheduleRepo{templates: []*domain.ScheduleTemplate{
		weeklyTemplate("ตรวจสุขภาพ", domain.WeekdayTuesday, "08:00", "12:00"),
	}}

	uc := newTestUseCase(scheduleRepo, &fakeBookingRepo{})

	today := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{
		ActivityType:    "ตรวจสุขภาพ",
		Date:            today,
		DurationMinutes: 60,
	})

	require.NoError(t, err)
	// 08:00 и 09:00 уже не предлагаем, остаются 10:00 и 11:00
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, types.TimeString("10:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("11:00"), resp.Slots[1].StartTime)

	// На будущую дату все слоты на месте
	nextTuesday := today.AddDate(0, 0, 7)
	resp, err = uc.Execute(context.Background(), &Request{
		ActivityType:    "ตรวจสุขภาพ",
		Date:            nextTuesday,
		DurationMinutes: 60,
	})

	require.NoError(t, err)
	assert.Len(t, resp.Slots, 4)
}

func TestUseCase_Execute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(&fakeScheduleRepo{}, &fakeBookingRepo{})

	_, err := uc.Execute(context.Background(), &Request{Date: monday})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ActivityType: "ตรวจสุขภาพ"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		ActivityType:    "ตรวจสุขภาพ",
		Date:            monday,
		DurationMinutes: 2000,
	})
	assert.ErrorIs(t, err, ErrInvalidDuration)
}
