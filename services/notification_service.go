package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"mamaeEmFormaAPI/internal/notification"
	"mamaeEmFormaAPI/internal/progress"
)

var ErrInvalidDevice = errors.New("invalid device registration")

type DeviceStore interface {
	SaveDeviceToken(ctx context.Context, token notification.DeviceToken) error
	DeviceTokens(ctx context.Context, userID string) ([]notification.DeviceToken, error)
}

// NotificationService registers devices and turns progress milestones into
// push notifications.
type NotificationService struct {
	devices    DeviceStore
	dispatcher *NotificationDispatcher
}

func NewNotificationService(devices DeviceStore) *NotificationService {
	return &NotificationService{
		devices:    devices,
		dispatcher: NewNotificationDispatcher(devices, 5),
	}
}

func (s *NotificationService) SetPushProvider(provider PushNotificationProvider) {
	s.dispatcher.SetPushProvider(provider)
}

func (s *NotificationService) Stop() {
	s.dispatcher.Stop()
}

func (s *NotificationService) RegisterDevice(ctx context.Context, userID string, req notification.RegisterDeviceRequest) error {
	token := strings.TrimSpace(req.Token)
	if token == "" {
		return fmt.Errorf("%w: token is required", ErrInvalidDevice)
	}
	if !req.Platform.Valid() {
		return fmt.Errorf("%w: unknown platform %q", ErrInvalidDevice, req.Platform)
	}

	now := time.Now()
	err := s.devices.SaveDeviceToken(ctx, notification.DeviceToken{
		ID:        uuid.New(),
		UserID:    userID,
		Token:     token,
		Platform:  req.Platform,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return fmt.Errorf("failed to register device: %w", err)
	}

	log.Printf("NotificationService: registered %s device for user %s", req.Platform, userID)
	return nil
}

func (s *NotificationService) AchievementsUnlocked(ctx context.Context, userID string, unlocked []progress.Achievement) {
	for _, a := range unlocked {
		s.dispatcher.Dispatch(ctx, &notification.Notification{
			UserID: userID,
			Type:   notification.NotificationAchievement,
			Title:  "Nova conquista desbloqueada!",
			Body:   fmt.Sprintf("Você conquistou \"%s\". Continue assim!", a.Title),
			Data: map[string]any{
				"achievement_id": string(a.ID),
			},
		})
	}
}

func (s *NotificationService) CycleCompleted(ctx context.Context, userID string, cyclesCompleted int) {
	s.dispatcher.Dispatch(ctx, &notification.Notification{
		UserID: userID,
		Type:   notification.NotificationCycleDone,
		Title:  "Ciclo concluído!",
		Body:   fmt.Sprintf("Parabéns! Você completou %d ciclo(s) de 30 dias. Um novo ciclo começa hoje.", cyclesCompleted),
		Data: map[string]any{
			"cycles_completed": cyclesCompleted,
		},
	})
}
