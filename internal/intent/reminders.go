package intent

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pipoo-ai/pipoo/internal/scheduler"
	"github.com/pipoo-ai/pipoo/internal/store"
	"github.com/pipoo-ai/pipoo/internal/timeparse"
)

var reminderDeleteRes = []*regexp.Regexp{
	regexp.MustCompile(`delete reminder (?:number )?(\d+)`),
	regexp.MustCompile(`remove reminder (?:number )?(\d+)`),
	regexp.MustCompile(`cancel reminder (?:number )?(\d+)`),
}

// reminderCreateRes splits an utterance into a content clause and a time
// clause. The time clause keeps its joining preposition ("in 2 hours",
// "at 8 pm") so the shared time parser can resolve it.
var reminderCreateRes = []*regexp.Regexp{
	regexp.MustCompile(`(?:remind me|set (?:a )?reminder|reminder) (?:to )?(.+?) ((?:in|at|on) .+)`),
	regexp.MustCompile(`(?:remind|reminder) (?:me )?(?:to )?(.+?) ((?:in|at|on) .+)`),
}

func (r *Router) handleReminder(text string) (bool, string) {
	if containsAny(text, []string{"delete", "remove", "cancel"}) {
		for _, re := range reminderDeleteRes {
			m := re.FindStringSubmatch(text)
			if m == nil {
				continue
			}
			n, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			reminder, err := r.reminders.DeleteAt(n)
			if errors.Is(err, store.ErrOutOfRange) {
				return true, fmt.Sprintf("Reminder %d doesn't exist. You have %d reminders.", n, r.reminders.Count())
			}
			if err != nil {
				r.logger.Printf("intent: delete reminder: %v", err)
				return true, "I couldn't delete that reminder. Please try again."
			}
			return true, fmt.Sprintf("Deleted reminder: '%s'", reminder.Content)
		}
	}

	if strings.Contains(text, "clear all") || strings.Contains(text, "delete all") {
		if r.reminders.Count() == 0 {
			return true, "You don't have any reminders to clear."
		}
		count, err := r.reminders.Clear()
		if err != nil {
			r.logger.Printf("intent: clear reminders: %v", err)
			return true, "I couldn't clear your reminders. Please try again."
		}
		return true, fmt.Sprintf("Cleared all %d reminders!", count)
	}

	if containsAny(text, []string{"show", "list", "display", "view"}) {
		reminders := r.reminders.All()
		if len(reminders) == 0 {
			return true, "You don't have any reminders yet! Say 'set a reminder' to create one."
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "Your Reminders (%d total):\n\n", len(reminders))
		for i, reminder := range reminders {
			fmt.Fprintf(&sb, "%d. %s\n   Remind: %s\n   Set: %s\n\n",
				i+1, reminder.Content, reminder.WhenText, reminder.CreatedAt.Format("Jan 02, 03:04 PM"))
		}
		return true, strings.TrimSpace(sb.String())
	}

	for _, re := range reminderCreateRes {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		content := cleanContent(m[1])
		when := strings.TrimSpace(m[2])

		triggerTime, err := r.armer.Arm(content, when)
		switch {
		case errors.Is(err, timeparse.ErrNoMatch):
			return true, fmt.Sprintf("Couldn't understand the time '%s'. Try 'in 5 minutes' or 'at 8 PM'.", when)
		case errors.Is(err, scheduler.ErrPastTime):
			return true, "That time is in the past! Please set a future time."
		case err != nil:
			r.logger.Printf("intent: arm reminder: %v", err)
			return true, "I couldn't save the reminder. Please try again."
		}

		until := timeparse.Until(triggerTime.Sub(r.now()))
		return true, fmt.Sprintf("Reminder set! You now have %d reminder(s).\n'%s' - %s\nThat's at %s (%s)",
			r.reminders.Count(), content, when, triggerTime.Format("03:04 PM"), until)
	}

	return false, ""
}
