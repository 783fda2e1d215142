package scheduler

import (
	"fmt"
	"log"
	"time"

	authrepo "github.com/suryaprakash0010/InfantCareCompass/internal/auth/repository"
	"github.com/suryaprakash0010/InfantCareCompass/internal/growth/repository"
	"github.com/suryaprakash0010/InfantCareCompass/pkg/mailer"
)

// ReminderScheduler emails parents whose next measurement reminder is due
// and advances the due date so each reminder fires once per interval.
type ReminderScheduler struct {
	reminderRepo repository.ReminderRepository
	userRepo     authrepo.UserRepository
	mail         mailer.Mailer
	frontendURL  string
	interval     time.Duration
	stopChan     chan struct{}
}

func NewReminderScheduler(
	reminderRepo repository.ReminderRepository,
	userRepo authrepo.UserRepository,
	mail mailer.Mailer,
	frontendURL string,
) *ReminderScheduler {
	return &ReminderScheduler{
		reminderRepo: reminderRepo,
		userRepo:     userRepo,
		mail:         mail,
		frontendURL:  frontendURL,
		interval:     time.Hour,
		stopChan:     make(chan struct{}),
	}
}

// Start begins the scheduler loop.
func (s *ReminderScheduler) Start() {
	log.Printf("[Scheduler] Starting growth reminder scheduler (interval: %s)", s.interval)

	go func() {
		// Run once on start so reminders missed during downtime go out.
		s.checkAndSendReminders()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.checkAndSendReminders()
			case <-s.stopChan:
				log.Println("[Scheduler] Scheduler stopped")
				return
			}
		}
	}()
}

// Stop gracefully stops the scheduler.
func (s *ReminderScheduler) Stop() {
	close(s.stopChan)
}

func (s *ReminderScheduler) checkAndSendReminders() {
	now := time.Now()

	due, err := s.reminderRepo.FindDue(now)
	if err != nil {
		log.Printf("[Scheduler] Error finding due reminders: %v", err)
		return
	}
	if len(due) == 0 {
		return
	}

	log.Printf("[Scheduler] Found %d due growth reminders", len(due))

	for i := range due {
		settings := &due[i]

		user, err := s.userRepo.FindByID(settings.UserID)
		if err != nil {
			log.Printf("[Scheduler] Error loading user %s: %v", settings.UserID, err)
			continue
		}

		if user != nil {
			subject := "Time to log your child's growth"
			body := fmt.Sprintf(
				"Hi,\n\nIt has been %d days since your last scheduled measurement. Record the latest height and weight here:\n%s/growth-tracker\n\nThe InfantCareCompass team",
				settings.IntervalDays, s.frontendURL,
			)
			if err := s.mail.Send([]string{user.Email}, subject, body); err != nil {
				log.Printf("[Scheduler] Error sending reminder to %s: %v", user.Email, err)
			}
		}

		// Advance the due date regardless of delivery success so a broken
		// mailbox doesn't cause a reminder storm.
		next := now.AddDate(0, 0, settings.IntervalDays)
		settings.NextDueAt = &next
		settings.LastSentAt = &now
		if err := s.reminderRepo.Upsert(settings); err != nil {
			log.Printf("[Scheduler] Error advancing reminder for user %s: %v", settings.UserID, err)
		}
	}
}
