package intent

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// handleSystem is a stub: it acknowledges system-control requests without
// touching the OS. Real volume/brightness integration is out of scope.
func (r *Router) handleSystem(text string) (bool, string) {
	switch {
	case strings.Contains(text, "volume"):
		switch {
		case strings.Contains(text, "up"), strings.Contains(text, "increase"):
			return true, "Volume increased! (Feature requires system integration)"
		case strings.Contains(text, "down"), strings.Contains(text, "decrease"):
			return true, "Volume decreased! (Feature requires system integration)"
		case strings.Contains(text, "mute"):
			return true, "Volume muted! (Feature requires system integration)"
		}
		return true, "Volume control requires system integration."
	case strings.Contains(text, "brightness"):
		return true, "Brightness control requires system integration."
	case strings.Contains(text, "wifi"):
		return true, "Wi-Fi control requires system integration."
	default:
		return true, "Bluetooth control requires system integration."
	}
}

var folders = []struct {
	keyword string
	dir     string
	message string
}{
	{"documents", "Documents", "Opening Documents folder!"},
	{"downloads", "Downloads", "Opening Downloads folder!"},
	{"desktop", "Desktop", "Opening Desktop!"},
}

func folderKeywords() []string {
	keywords := make([]string, len(folders))
	for i, folder := range folders {
		keywords[i] = folder.keyword
	}
	return keywords
}

func (r *Router) handleFolder(text string) (bool, string) {
	if !strings.Contains(text, "open") {
		return false, ""
	}

	home, err := os.UserHomeDir()
	if err != nil {
		r.logger.Printf("intent: resolve home dir: %v", err)
		return true, "Couldn't find your home folder."
	}

	for _, folder := range folders {
		if !strings.Contains(text, folder.keyword) {
			continue
		}
		if err := r.launcher.OpenFolder(filepath.Join(home, folder.dir)); err != nil {
			r.logger.Printf("intent: open folder: %v", err)
			return true, "Couldn't open that folder."
		}
		return true, folder.message
	}
	return false, ""
}

func (r *Router) handleTime(text string) (bool, string) {
	now := r.now()

	switch {
	case strings.Contains(text, "time"):
		return true, fmt.Sprintf("The current time is %s", now.Format("03:04 PM"))
	case strings.Contains(text, "date"):
		return true, fmt.Sprintf("Today is %s", now.Format("Monday, January 02, 2006"))
	default:
		return true, fmt.Sprintf("Today is %s", now.Format("Monday"))
	}
}
