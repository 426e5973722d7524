package activity_types

import (
	"context"

	"github.com/chayanin-p/TBN-AppointmentService/internal/service/activities/models"
)

type ActivitiesService interface {
	List(ctx context.Context) (*models.ActivityTypeListResponse, error)
	Create(ctx context.Context, req *models.CreateActivityTypeRequest) (*models.ActivityTypeResponse, error)
	Update(ctx context.Context, id int64, req *models.UpdateActivityTypeRequest) (*models.ActivityTypeResponse, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
