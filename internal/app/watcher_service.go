// internal/app/watcher_service.go
package app

import (
	"context"
	"errors"
	"time"

	"homework_notification_bot/internal/domain/homework"
	domainTelegram "homework_notification_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
)

// StatusFetcher performs a single homework-status fetch against the remote API.
type StatusFetcher interface {
	HomeworkStatuses(ctx context.Context, fromDate int64) (any, error)
}

// WatcherService runs the fetch→validate→parse→notify pass for the single
// tracked submission. It holds the only mutable state of the process: the
// from_date window and the last delivered message/error texts used to
// suppress duplicate notifications. All state lives in memory only and is
// reset on every process start.
type WatcherService struct {
	api            StatusFetcher
	telegramClient domainTelegram.Client
	chatID         int64
	logger         *logrus.Logger
	now            func() time.Time

	lastTimestamp    int64
	lastMessage      string
	lastErrorMessage string
}

func NewWatcherService(
	api StatusFetcher,
	tc domainTelegram.Client,
	chatID int64,
	logger *logrus.Logger,
) *WatcherService {
	now := time.Now
	return &WatcherService{
		api:            api,
		telegramClient: tc,
		chatID:         chatID,
		logger:         logger,
		now:            now,
		lastTimestamp:  now().Unix(),
	}
}

// RunCycle executes one poll cycle. Every per-cycle failure is contained
// here; nothing RunCycle does can stop the loop.
func (s *WatcherService) RunCycle(ctx context.Context) {
	if err := s.processCycle(ctx); err != nil {
		s.handleCycleError(err)
	}
}

func (s *WatcherService) processCycle(ctx context.Context) error {
	s.logger.Debugf("Polling homework statuses, from_date=%d", s.lastTimestamp)

	payload, err := s.api.HomeworkStatuses(ctx, s.lastTimestamp)
	if err != nil {
		return err
	}

	resp, err := homework.CheckResponse(payload)
	if err != nil {
		return err
	}

	records := homework.Homeworks(resp)
	if len(records) == 0 {
		s.logger.Info("No new homework statuses.")
		s.lastTimestamp = s.now().Unix()
		return nil
	}

	// The API returns the freshest update first; only the first record is
	// ever inspected, matching the upstream contract.
	message, err := homework.ParseStatus(records[0])
	if err != nil {
		return err
	}

	if message == s.lastMessage {
		s.logger.Infof("Status unchanged, notification suppressed: %s", message)
		s.lastTimestamp = s.now().Unix()
		return nil
	}

	if err := s.telegramClient.SendMessage(s.chatID, message, nil); err != nil {
		return err
	}
	s.logger.Infof("Notification sent: %s", message)
	s.lastMessage = message
	s.lastTimestamp = s.now().Unix()
	return nil
}

// handleCycleError logs a per-cycle failure and reports every kind except
// transport failures to the recipient, deduplicated by error text. The
// from_date window is left untouched so the same window is retried on the
// next cycle.
func (s *WatcherService) handleCycleError(err error) {
	s.logger.Errorf("Poll cycle failed: %v", err)

	var deliveryErr *domainTelegram.DeliveryError
	if errors.As(err, &deliveryErr) {
		// Reporting a transport failure over the same transport would only
		// cascade; log and move on.
		return
	}

	text := "Сбой в работе программы: " + err.Error()
	if text == s.lastErrorMessage {
		s.logger.Debug("Error already reported, notification suppressed.")
		return
	}
	if sendErr := s.telegramClient.SendMessage(s.chatID, text, nil); sendErr != nil {
		s.logger.Errorf("Could not report error to recipient: %v", sendErr)
		return
	}
	s.logger.Infof("Error notification sent: %s", text)
	s.lastErrorMessage = text
}
