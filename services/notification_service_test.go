package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mamaeEmFormaAPI/internal/notification"
	"mamaeEmFormaAPI/internal/progress"
	"mamaeEmFormaAPI/internal/store"
)

type sentPush struct {
	tokens []string
	title  string
	data   map[string]any
}

type recordingProvider struct {
	sent chan sentPush
}

func newRecordingProvider() *recordingProvider {
	return &recordingProvider{sent: make(chan sentPush, 10)}
}

func (p *recordingProvider) SendPush(ctx context.Context, tokens []notification.DeviceToken, title, body string, data map[string]any) error {
	var ids []string
	for _, t := range tokens {
		ids = append(ids, t.Token)
	}
	p.sent <- sentPush{tokens: ids, title: title, data: data}
	return nil
}

func (p *recordingProvider) next(t *testing.T) sentPush {
	t.Helper()
	select {
	case push := <-p.sent:
		return push
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for push")
		return sentPush{}
	}
}

func TestRegisterDeviceValidates(t *testing.T) {
	svc := NewNotificationService(store.NewMemoryStore())
	defer svc.Stop()
	ctx := context.Background()

	err := svc.RegisterDevice(ctx, "user-1", notification.RegisterDeviceRequest{Token: " ", Platform: notification.PlatformIOS})
	assert.ErrorIs(t, err, ErrInvalidDevice)

	err = svc.RegisterDevice(ctx, "user-1", notification.RegisterDeviceRequest{Token: "abc", Platform: "symbian"})
	assert.ErrorIs(t, err, ErrInvalidDevice)

	err = svc.RegisterDevice(ctx, "user-1", notification.RegisterDeviceRequest{Token: "abc", Platform: notification.PlatformAndroid})
	assert.NoError(t, err)
}

func TestAchievementUnlockIsPushed(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewNotificationService(st)
	defer svc.Stop()
	provider := newRecordingProvider()
	svc.SetPushProvider(provider)
	ctx := context.Background()

	require.NoError(t, svc.RegisterDevice(ctx, "user-1", notification.RegisterDeviceRequest{Token: "tok-1", Platform: notification.PlatformAndroid}))

	svc.AchievementsUnlocked(ctx, "user-1", []progress.Achievement{
		{ID: progress.AchievementSevenDays, Title: "7 Dias", Unlocked: true},
	})

	push := provider.next(t)
	assert.Equal(t, []string{"tok-1"}, push.tokens)
	assert.Equal(t, "Nova conquista desbloqueada!", push.title)
	assert.Equal(t, "7-days", push.data["achievement_id"])
}

func TestCycleCompletedIsPushed(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewNotificationService(st)
	defer svc.Stop()
	provider := newRecordingProvider()
	svc.SetPushProvider(provider)
	ctx := context.Background()

	require.NoError(t, svc.RegisterDevice(ctx, "user-1", notification.RegisterDeviceRequest{Token: "tok-1", Platform: notification.PlatformIOS}))

	svc.CycleCompleted(ctx, "user-1", 2)

	push := provider.next(t)
	assert.Equal(t, "Ciclo concluído!", push.title)
	assert.Equal(t, 2, push.data["cycles_completed"])
}

func TestUsersWithoutDevicesAreSkipped(t *testing.T) {
	svc := NewNotificationService(store.NewMemoryStore())
	provider := newRecordingProvider()
	svc.SetPushProvider(provider)

	svc.CycleCompleted(context.Background(), "nobody", 1)
	svc.Stop()

	assert.Empty(t, provider.sent)
}

func TestDispatchAfterStopIsDropped(t *testing.T) {
	d := NewNotificationDispatcher(store.NewMemoryStore(), 1)
	d.Stop()
	d.Stop()

	// Fill the queue so the send case cannot win the select.
	for i := 0; i < cap(d.jobQueue); i++ {
		d.jobQueue <- &notification.Notification{}
	}
	ok := d.Dispatch(context.Background(), &notification.Notification{UserID: "user-1"})
	assert.False(t, ok)
}
