package save_schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chayanin-p/TBN-AppointmentService/internal/domain"
	scheduleRepo "github.com/chayanin-p/TBN-AppointmentService/internal/infra/storage/schedule"
	"github.com/chayanin-p/TBN-AppointmentService/pkg/types"
)

type fakeScheduleRepo struct {
	templates []*domain.ScheduleTemplate
	nextID    int64
	deleted   []int64
}

func (f *fakeScheduleRepo) Create(ctx context.Context, template *domain.ScheduleTemplate) (*domain.ScheduleTemplate, error) {
	f.nextID++
	template.ID = f.nextID
	template.CreatedDate = time.Now()
	f.templates = append(f.templates, template)
	return template, nil
}

func (f *fakeScheduleRepo) GetByID(ctx context.Context, id int64) (*domain.ScheduleTemplate, error) {
	for _, tpl := range f.templates {
		if tpl.ID == id {
			return tpl, nil
		}
	}
	return nil, scheduleRepo.ErrScheduleNotFound
}

func (f *fakeScheduleRepo) List(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.ScheduleTemplate, error) {
	return f.templates, nil
}

func (f *fakeScheduleRepo) Delete(ctx context.Context, id int64) error {
	for i, tpl := range f.templates {
		if tpl.ID == id {
			f.templates = append(f.templates[:i], f.templates[i+1:]...)
			f.deleted = append(f.deleted, id)
			return nil
		}
	}
	return scheduleRepo.ErrScheduleNotFound
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase(repo *fakeScheduleRepo) *UseCase {
	return NewUseCase(repo, fakeTxManager{}, nopLogger{})
}

func TestUseCase_Execute_CreatesTemplatePerWeekday(t *testing.T) {
	repo := &fakeScheduleRepo{}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		ActivityType: "ตรวจสุขภาพ",
		Weekdays:     []string{"จ.", "พ.", "ศ."},
		StartTime:    "09:00",
		EndTime:      "12:00",
	})

	require.NoError(t, err)
	require.Len(t, resp.Templates, 3)
	assert.Equal(t, "จ.", resp.Templates[0].Weekday)
	assert.Equal(t, "พ.", resp.Templates[1].Weekday)
	assert.Equal(t, "ศ.", resp.Templates[2].Weekday)
	assert.Len(t, repo.templates, 3)
}

func TestUseCase_Execute_OverlapRejected(t *testing.T) {
	repo := &fakeScheduleRepo{templates: []*domain.ScheduleTemplate{
		{
			ID:           1,
			ActivityType: "ตรวจสุขภาพ",
			Weekday:      domain.WeekdayMonday,
			StartTime:    "09:00",
			EndTime:      "12:00",
		},
	}, nextID: 1}
	uc := newTestUseCase(repo)

	// 10:30-13:00 пересекает существующий 09:00-12:00
	_, err := uc.Execute(context.Background(), &Request{
		ActivityType: "ฝังเข็ม",
		Weekdays:     []string{"จ."},
		StartTime:    "10:30",
		EndTime:      "13:00",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrScheduleConflict)

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "ตรวจสุขภาพ", conflict.ActivityType)
	assert.Equal(t, types.TimeString("09:00"), conflict.Range.Start)
	assert.Equal(t, types.TimeString("12:00"), conflict.Range.End)
}

func TestUseCase_Execute_AdjacentTemplateAllowed(t *testing.T) {
	repo := &fakeScheduleRepo{templates: []*domain.ScheduleTemplate{
		{
			ID:           1,
			ActivityType: "ตรวจสุขภาพ",
			Weekday:      domain.WeekdayMonday,
			StartTime:    "09:00",
			EndTime:      "12:00",
		},
	}, nextID: 1}
	uc := newTestUseCase(repo)

	// 12:00-14:00 граничит с 09:00-12:00 - полуоткрытые интервалы не пересекаются
	_, err := uc.Execute(context.Background(), &Request{
		ActivityType: "ฝังเข็ม",
		Weekdays:     []string{"จ."},
		StartTime:    "12:00",
		EndTime:      "14:00",
	})

	assert.NoError(t, err)
}

func TestUseCase_Execute_OtherWeekdayDoesNotConflict(t *testing.T) {
	repo := &fakeScheduleRepo{templates: []*domain.ScheduleTemplate{
		{
			ID:           1,
			ActivityType: "ตรวจสุขภาพ",
			Weekday:      domain.WeekdayTuesday,
			StartTime:    "09:00",
			EndTime:      "12:00",
		},
	}, nextID: 1}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		ActivityType: "ตรวจสุขภาพ",
		Weekdays:     []string{"จ."},
		StartTime:    "10:00",
		EndTime:      "11:00",
	})

	assert.NoError(t, err)
}

func TestUseCase_Execute_ReplaceDeletesOldTemplate(t *testing.T) {
	repo := &fakeScheduleRepo{templates: []*domain.ScheduleTemplate{
		{
			ID:           1,
			ActivityType: "ตรวจสุขภาพ",
			Weekday:      domain.WeekdayMonday,
			StartTime:    "09:00",
			EndTime:      "12:00",
		},
	}, nextID: 1}
	uc := newTestUseCase(repo)

	replacesID := int64(1)
	resp, err := uc.Execute(context.Background(), &Request{
		ActivityType: "ตรวจสุขภาพ",
		Weekdays:     []string{"จ."},
		StartTime:    "10:00",
		EndTime:      "13:00",
		ReplacesID:   &replacesID,
	})

	require.NoError(t, err)
	require.Len(t, resp.Templates, 1)
	assert.Equal(t, []int64{1}, repo.deleted)
	// Старый шаблон удален, новый интервал больше не конфликтует с ним
	assert.Len(t, repo.templates, 1)
}

func TestUseCase_Execute_ReplaceMissingTemplate(t *testing.T) {
	repo := &fakeScheduleRepo{}
	uc := newTestUseCase(repo)

	replacesID := int64(42)
	_, err := uc.Execute(context.Background(), &Request{
		ActivityType: "ตรวจสุขภาพ",
		Weekdays:     []string{"จ."},
		StartTime:    "10:00",
		EndTime:      "11:00",
		ReplacesID:   &replacesID,
	})

	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestUseCase_Execute_SingleTimeTemplateSkipsOverlapCheck(t *testing.T) {
	repo := &fakeScheduleRepo{templates: []*domain.ScheduleTemplate{
		{
			ID:           1,
			ActivityType: "ตรวจสุขภาพ",
			Weekday:      domain.WeekdayMonday,
			StartTime:    "09:00",
			EndTime:      "12:00",
		},
	}, nextID: 1}
	uc := newTestUseCase(repo)

	// Точечный шаблон внутри чужого интервала допустим
	_, err := uc.Execute(context.Background(), &Request{
		ActivityType: "ฝังเข็ม",
		Weekdays:     []string{"จ."},
		StartTime:    "10:00",
	})

	assert.NoError(t, err)
}

func TestUseCase_Execute_OneOffTemplate(t *testing.T) {
	repo := &fakeScheduleRepo{}
	uc := newTestUseCase(repo)

	// 7 сентября 2026 - понедельник
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{
		ActivityType: "ฝังเข็ม",
		Date:         &date,
		StartTime:    "10:00",
		EndTime:      "11:00",
	})

	require.NoError(t, err)
	require.Len(t, resp.Templates, 1)
	assert.Equal(t, "จ.", resp.Templates[0].Weekday)
	require.NotNil(t, resp.Templates[0].Date)
}

func TestUseCase_Execute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(&fakeScheduleRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		Weekdays:  []string{"จ."},
		StartTime: "10:00",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		ActivityType: "ตรวจสุขภาพ",
		StartTime:    "10:00",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		ActivityType: "ตรวจสุขภาพ",
		Weekdays:     []string{"x"},
		StartTime:    "10:00",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		ActivityType: "ตรวจสุขภาพ",
		Weekdays:     []string{"จ."},
		StartTime:    "12:00",
		EndTime:      "10:00",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
