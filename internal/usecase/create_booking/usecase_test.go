package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chayanin-p/TBN-AppointmentService/internal/domain"
	activityRepo "github.com/chayanin-p/TBN-AppointmentService/internal/infra/storage/activity"
	"github.com/chayanin-p/TBN-AppointmentService/internal/integrations/googlecalendar"
)

type fakeBookingRepo struct {
	existing []*domain.Booking
	created  *domain.Booking
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	booking.ID = 101
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt
	f.created = booking
	return booking, nil
}

func (f *fakeBookingRepo) GetByDate(ctx context.Context, filter domain.BookingsOnDateFilter) ([]*domain.Booking, error) {
	return f.existing, nil
}

type fakeActivityRepo struct {
	activity *domain.ActivityType
}

func (f *fakeActivityRepo) GetByName(ctx context.Context, name string) (*domain.ActivityType, error) {
	if f.activity == nil {
		return nil, activityRepo.ErrActivityTypeNotFound
	}
	return f.activity, nil
}

type fakeCalendar struct {
	eventID    string
	createErr  error
	lastEvent  googlecalendar.EventRequest
	deletedIDs []string
}

func (f *fakeCalendar) CreateEvent(ctx context.Context, event googlecalendar.EventRequest) (string, error) {
	f.lastEvent = event
	if f.createErr != nil {
		return "", f.createErr
	}
	return f.eventID, nil
}

func (f *fakeCalendar) DeleteEvent(ctx context.Context, eventID string) error {
	f.deletedIDs = append(f.deletedIDs, eventID)
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

var (
	bookingDate = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	testNow     = time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
)

func newTestUseCase(bookingRepo *fakeBookingRepo, calendar *fakeCalendar) *UseCase {
	activities := &fakeActivityRepo{activity: &domain.ActivityType{
		ID:    1,
		Name:  "ตรวจสุขภาพ",
		Color: "#16a34a",
	}}
	uc := NewUseCase(bookingRepo, activities, calendar, fakeTxManager{}, time.UTC, nopLogger{})
	uc.timeProvider = fakeTimeProvider{now: testNow}
	return uc
}

func validRequest() *Request {
	return &Request{
		UserID:       7,
		Title:        "นัดตรวจประจำปี",
		Date:         bookingDate,
		StartTime:    "10:00",
		Duration:     "1.5 ชั่วโมง",
		ActivityType: "ตรวจสุขภาพ",
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	calendar := &fakeCalendar{eventID: "evt_1"}

	uc := newTestUseCase(bookingRepo, calendar)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, 90, resp.DurationMinutes)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, string(domain.MeetingOnline), resp.MeetingFormat)
	require.NotNil(t, resp.GoogleCalendarEventID)
	assert.Equal(t, "evt_1", *resp.GoogleCalendarEventID)

	// Событие календаря собирается из даты и времени записи
	assert.Equal(t, "นัดตรวจประจำปี", calendar.lastEvent.Title)
	assert.Equal(t, "2026-09-07T10:00:00Z", calendar.lastEvent.StartTime)
	assert.Equal(t, "2026-09-07T11:30:00Z", calendar.lastEvent.EndTime)
	assert.Equal(t, "10", calendar.lastEvent.ColorID)
}

func TestUseCase_Execute_CalendarDownBookingRejected(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	calendar := &fakeCalendar{createErr: errors.New("bridge down")}

	uc := newTestUseCase(bookingRepo, calendar)

	_, err := uc.Execute(context.Background(), validRequest())

	// Запись подтверждается только после успешного создания события в календаре
	assert.ErrorIs(t, err, ErrCalendarUnavailable)
	assert.Nil(t, bookingRepo.created)
}

func TestUseCase_Execute_PastDateRejected(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCalendar{eventID: "evt_1"})

	req := validRequest()
	req.Date = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrPastTimeSlot)
}

func TestUseCase_Execute_PastTimeTodayRejected(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	calendar := &fakeCalendar{eventID: "evt_1"}
	uc := newTestUseCase(bookingRepo, calendar)

	// testNow = 2026-09-01 09:00
	req := validRequest()
	req.Date = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	req.StartTime = "08:00"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPastTimeSlot)

	// Слот позже текущего времени в тот же день проходит
	req.StartTime = "09:30"
	_, err = uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestUseCase_Execute_SlotTaken(t *testing.T) {
	bookingRepo := &fakeBookingRepo{existing: []*domain.Booking{
		{StartTime: "10:30", DurationMinutes: 60, Status: domain.StatusConfirmed},
	}}
	calendar := &fakeCalendar{eventID: "evt_orphan"}

	uc := newTestUseCase(bookingRepo, calendar)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotTaken)
	// Событие, созданное до отката транзакции, должно быть удалено
	assert.Equal(t, []string{"evt_orphan"}, calendar.deletedIDs)
}

func TestUseCase_Execute_AdjacentBookingAllowed(t *testing.T) {
	// 08:30-10:00 граничит с запрошенным слотом 10:00-11:30
	bookingRepo := &fakeBookingRepo{existing: []*domain.Booking{
		{StartTime: "08:30", DurationMinutes: 90, Status: domain.StatusConfirmed},
	}}
	calendar := &fakeCalendar{eventID: "evt_1"}

	uc := newTestUseCase(bookingRepo, calendar)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.NoError(t, err)
}

func TestUseCase_Execute_CancelledBookingDoesNotBlock(t *testing.T) {
	bookingRepo := &fakeBookingRepo{existing: []*domain.Booking{
		{StartTime: "10:00", DurationMinutes: 90, Status: domain.StatusCancelled},
	}}
	calendar := &fakeCalendar{eventID: "evt_1"}

	uc := newTestUseCase(bookingRepo, calendar)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.NoError(t, err)
}

func TestUseCase_Execute_ActivityTypeNotFound(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeActivityRepo{}, &fakeCalendar{}, fakeTxManager{}, time.UTC, nopLogger{})
	uc.timeProvider = fakeTimeProvider{now: testNow}

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrActivityTypeNotFound)
}

func TestUseCase_Execute_CustomDuration(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	uc := newTestUseCase(bookingRepo, &fakeCalendar{eventID: "evt_1"})

	req := validRequest()
	req.Duration = ""
	req.CustomDurationValue = "45"
	req.CustomDurationUnit = string(domain.UnitMinutes)

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 45, resp.DurationMinutes)
}

func TestUseCase_Execute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCalendar{})

	req := validRequest()
	req.Title = ""
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.Duration = "เร็วๆ"
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	req = validRequest()
	req.StartTime = "23:30"
	req.Duration = "1 ชั่วโมง"
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}
