package intent

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pipoo-ai/pipoo/internal/store"
)

var noteDeleteRes = []*regexp.Regexp{
	regexp.MustCompile(`delete note (?:number )?(\d+)`),
	regexp.MustCompile(`remove note (?:number )?(\d+)`),
	regexp.MustCompile(`delete (?:the )?(\d+)(?:st|nd|rd|th)? note`),
}

var noteCreateRes = []*regexp.Regexp{
	regexp.MustCompile(`(?:create|make|write|take|add|save) (?:a |an |new )?note (?:saying |that says |about )?(.+)`),
	regexp.MustCompile(`note (?:down )?(?:that )?(.+)`),
	regexp.MustCompile(`remember (?:that )?(.+)`),
	regexp.MustCompile(`write (?:down )?(.+)`),
}

func (r *Router) handleNote(text string) (bool, string) {
	if strings.Contains(text, "delete") || strings.Contains(text, "remove") {
		for _, re := range noteDeleteRes {
			m := re.FindStringSubmatch(text)
			if m == nil {
				continue
			}
			n, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			note, err := r.notes.DeleteAt(n)
			if errors.Is(err, store.ErrOutOfRange) {
				return true, fmt.Sprintf("Note %d doesn't exist. You have %d notes.", n, r.notes.Count())
			}
			if err != nil {
				r.logger.Printf("intent: delete note: %v", err)
				return true, "I couldn't delete that note. Please try again."
			}
			return true, fmt.Sprintf("Deleted note: '%s'", note.Content)
		}
	}

	if strings.Contains(text, "clear") || strings.Contains(text, "delete all") {
		if r.notes.Count() == 0 {
			return true, "You don't have any notes to clear."
		}
		count, err := r.notes.Clear()
		if err != nil {
			r.logger.Printf("intent: clear notes: %v", err)
			return true, "I couldn't clear your notes. Please try again."
		}
		return true, fmt.Sprintf("Cleared all %d notes!", count)
	}

	if containsAny(text, []string{"show", "read", "list", "display"}) {
		notes := r.notes.All()
		if len(notes) == 0 {
			return true, "You don't have any notes yet! Say 'create a note' to make one."
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "Your Notes (%d total):\n\n", len(notes))
		for i, note := range notes {
			fmt.Fprintf(&sb, "%d. %s\n   %s\n\n", i+1, note.Content, note.CreatedAt.Format("Jan 02, 03:04 PM"))
		}
		return true, strings.TrimSpace(sb.String())
	}

	var content string
	for _, re := range noteCreateRes {
		if m := re.FindStringSubmatch(text); m != nil {
			content = cleanContent(m[1])
			break
		}
	}
	if len(content) > 3 {
		if _, err := r.notes.Add(content); err != nil {
			r.logger.Printf("intent: save note: %v", err)
			return true, "I couldn't save the note. Please try again."
		}
		return true, fmt.Sprintf("Note saved! You now have %d note(s).\n'%s'", r.notes.Count(), content)
	}

	return false, ""
}
