package models

import (
	"time"

	"github.com/chayanin-p/TBN-AppointmentService/internal/domain"
	"github.com/chayanin-p/TBN-AppointmentService/pkg/types"
)

// Request модели

// SaveNotificationRequest запрос на создание или обновление будильника
type SaveNotificationRequest struct {
	UserID     int64   `json:"userId"`
	Title      string  `json:"title"`
	Time       string  `json:"time"`                 // "09:00"
	IsEnabled  bool    `json:"isEnabled"`            // Выключенный будильник не рассылается
	RepeatDays []int   `json:"repeatDays,omitempty"` // 0=воскресенье ... 6=суббота
	Date       *string `json:"date,omitempty"`       // Разовый будильник, "2026-09-07"
}

// ToDomain конвертирует request в domain модель
func (r *SaveNotificationRequest) ToDomain() (*domain.CustomNotification, error) {
	notification := &domain.CustomNotification{
		UserID:     r.UserID,
		Title:      r.Title,
		Time:       types.TimeString(r.Time),
		IsEnabled:  r.IsEnabled,
		RepeatDays: r.RepeatDays,
	}

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return nil, err
		}
		notification.Date = &date
	}

	return notification, nil
}

// SubscribeRequest запрос на регистрацию push-подписки браузера
type SubscribeRequest struct {
	UserID   int64  `json:"userId"`
	Endpoint string `json:"endpoint"`
	P256dh   string `json:"p256dh"`
	Auth     string `json:"auth"`
}

// Response модели

// NotificationResponse ответ с данными будильника
type NotificationResponse struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"userId"`
	Title      string    `json:"title"`
	Time       string    `json:"time"`
	IsEnabled  bool      `json:"isEnabled"`
	RepeatDays []int     `json:"repeatDays,omitempty"`
	Date       *string   `json:"date,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// NotificationListResponse ответ со списком будильников
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}

// Методы конвертации

// FromDomainNotification конвертирует domain модель в DTO
func FromDomainNotification(n *domain.CustomNotification) *NotificationResponse {
	if n == nil {
		return nil
	}

	resp := &NotificationResponse{
		ID:         n.ID,
		UserID:     n.UserID,
		Title:      n.Title,
		Time:       n.Time.String(),
		IsEnabled:  n.IsEnabled,
		RepeatDays: n.RepeatDays,
		CreatedAt:  n.CreatedAt,
	}

	if n.Date != nil {
		date := n.Date.Format(domain.DateFormat)
		resp.Date = &date
	}

	return resp
}

// FromDomainNotificationList конвертирует список domain моделей в DTO
func FromDomainNotificationList(notifications []*domain.CustomNotification) *NotificationListResponse {
	result := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		result = append(result, *FromDomainNotification(n))
	}
	return &NotificationListResponse{Notifications: result}
}
