package services

import (
	"context"
	"log"
	"sync"
	"time"

	"mamaeEmFormaAPI/internal/notification"
)

type PushNotificationProvider interface {
	SendPush(ctx context.Context, tokens []notification.DeviceToken, title, body string, data map[string]any) error
}

// NotificationDispatcher sends queued notifications from a small worker pool
// so request handlers never wait on FCM.
type NotificationDispatcher struct {
	devices      DeviceStore
	mu           sync.RWMutex
	pushProvider PushNotificationProvider
	workers      int
	jobQueue     chan *notification.Notification
	stopChan     chan struct{}
	stopOnce     sync.Once
	wg           sync.WaitGroup
}

func NewNotificationDispatcher(devices DeviceStore, workers int) *NotificationDispatcher {
	if workers < 1 {
		workers = 1
	}
	d := &NotificationDispatcher{
		devices:  devices,
		workers:  workers,
		jobQueue: make(chan *notification.Notification, 100),
		stopChan: make(chan struct{}),
	}
	d.startWorkers()
	return d
}

// SetPushProvider swaps the provider used by the workers. A nil provider
// makes them drop jobs.
func (d *NotificationDispatcher) SetPushProvider(provider PushNotificationProvider) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pushProvider = provider
}

func (d *NotificationDispatcher) provider() PushNotificationProvider {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.pushProvider
}

func (d *NotificationDispatcher) startWorkers() {
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker()
	}
}

func (d *NotificationDispatcher) worker() {
	defer d.wg.Done()
	for {
		select {
		case notif := <-d.jobQueue:
			d.processJob(notif)
		case <-d.stopChan:
			return
		}
	}
}

func (d *NotificationDispatcher) processJob(notif *notification.Notification) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	provider := d.provider()
	if provider == nil {
		log.Printf("Dispatcher: skipping %s for user %s, no push provider", notif.Type, notif.UserID)
		return
	}

	tokens, err := d.devices.DeviceTokens(ctx, notif.UserID)
	if err != nil {
		log.Printf("Dispatcher: failed to load device tokens for user %s: %v", notif.UserID, err)
		return
	}
	if len(tokens) == 0 {
		log.Printf("Dispatcher: skipping %s for user %s, no registered devices", notif.Type, notif.UserID)
		return
	}

	if err := provider.SendPush(ctx, tokens, notif.Title, notif.Body, notif.Data); err != nil {
		log.Printf("Dispatcher: push failed for user %s: %v", notif.UserID, err)
	}
}

// Dispatch queues a notification. It gives up when the queue stays full past
// the context deadline or five seconds, whichever comes first.
func (d *NotificationDispatcher) Dispatch(ctx context.Context, notif *notification.Notification) bool {
	timer := time.NewTimer(5 * time.Second)
	defer timer.Stop()

	select {
	case d.jobQueue <- notif:
		return true
	case <-d.stopChan:
		log.Printf("Dispatcher: dropped %s for user %s, dispatcher stopped", notif.Type, notif.UserID)
	case <-ctx.Done():
		log.Printf("Dispatcher: dropped %s for user %s: %v", notif.Type, notif.UserID, ctx.Err())
	case <-timer.C:
		log.Printf("Dispatcher: dropped %s for user %s, queue full", notif.Type, notif.UserID)
	}
	return false
}

// Stop signals the workers and waits for in-flight sends to finish. Queued but
// unstarted jobs are dropped.
func (d *NotificationDispatcher) Stop() {
	d.stopOnce.Do(func() {
		close(d.stopChan)
	})
	d.wg.Wait()
}
