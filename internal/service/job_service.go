package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"fleetshare/internal/availability"
	"fleetshare/internal/entities"
)

// JobService holds the scheduled work: the morning digest of today's fleet
// schedule, mailed to the fleet manager.
type JobService struct {
	store    BookingSource
	notifier *NotifyService
	roster   []entities.Vehicle
}

func NewJobService(store BookingSource, notifier *NotifyService, roster []entities.Vehicle) *JobService {
	return &JobService{store: store, notifier: notifier, roster: roster}
}

// SendDailyDigest emails the occupancy table for today.
func (s *JobService) SendDailyDigest() error {
	today := time.Now().Format(time.DateOnly)
	logrus.Infof("Cron Job: building fleet digest for %s", today)

	statuses := availability.Occupancy(s.roster, s.store.Snapshot(), today)

	free := 0
	var lines []string
	for _, st := range statuses {
		if st.Booking == nil {
			free++
			lines = append(lines, fmt.Sprintf("%s (%s): free", st.Vehicle.Name, st.Vehicle.Plate))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s (%s): %s -> %s, %d passenger(s)",
			st.Vehicle.Name, st.Vehicle.Plate, st.Booking.UserName, st.Booking.Destination, st.Booking.Passengers))
	}

	subject := fmt.Sprintf("Fleet digest %s: %d of %d vehicles free", today, free, len(s.roster))
	body := fmt.Sprintf("Fleet schedule for %s:\n\n%s\n", today, strings.Join(lines, "\n"))

	if err := s.notifier.SendEmail(subject, body); err != nil {
		return fmt.Errorf("cron job: failed to send fleet digest: %w", err)
	}
	logrus.Infof("Cron Job: fleet digest for %s sent (%d free)", today, free)
	return nil
}
