package cron

import (
	"context"

	"github.com/muhhuz-coder/volunteerBazaarFullstack-sub001/internal/services"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// StartNotificationCronJobs schedules the periodic notification cleanup.
func StartNotificationCronJobs(notificationService *services.NotificationService) {
	c := cron.New()

	// Purge expired notifications daily
	c.AddFunc("0 3 * * *", func() {
		if err := notificationService.DeleteExpired(context.Background()); err != nil {
			logrus.WithError(err).Error("DeleteExpired failed")
		}
	})

	c.Start()
}
