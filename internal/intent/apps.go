package intent

import (
	"fmt"
	"net/url"
	"regexp"
)

type appEntry struct {
	name     string
	triggers []string
	url      string
	message  string
}

// apps maps canonical application names to their trigger keywords. Order
// matters: the first entry with a keyword hit wins, so broad triggers like
// "browser" resolve to Chrome before anything else gets a look.
var apps = []appEntry{
	{"chrome", []string{"chrome", "google chrome", "browser"}, "", "Opening Chrome browser!"},
	{"firefox", []string{"firefox", "mozilla"}, "", "Opening Firefox!"},
	{"edge", []string{"edge", "microsoft edge"}, "", "Opening Microsoft Edge!"},
	{"notepad", []string{"notepad", "text editor"}, "", "Opening Notepad!"},
	{"calculator", []string{"calculator", "calc"}, "", "Opening Calculator!"},
	{"paint", []string{"paint", "mspaint"}, "", "Opening Paint!"},
	{"explorer", []string{"explorer", "file explorer", "files"}, "", "Opening File Explorer!"},
	{"cmd", []string{"cmd", "command prompt", "terminal"}, "", "Opening Terminal!"},
	{"youtube", []string{"youtube"}, "https://www.youtube.com", "Opening YouTube for you!"},
	{"gmail", []string{"gmail", "email", "mail"}, "https://mail.google.com", "Opening Gmail!"},
	{"spotify", []string{"spotify", "music"}, "", "Opening Spotify!"},
	{"discord", []string{"discord"}, "", "Opening Discord!"},
	{"vscode", []string{"vscode", "visual studio code", "code"}, "", "Opening VS Code!"},
	{"word", []string{"word", "microsoft word"}, "", "Opening Word!"},
	{"excel", []string{"excel", "microsoft excel"}, "", "Opening Excel!"},
	{"powerpoint", []string{"powerpoint", "ppt"}, "", "Opening PowerPoint!"},
}

func (r *Router) handleOpen(text string) (bool, string) {
	// "open downloads" names a folder, not an app; hand it over before
	// the app table gets a look.
	if containsAny(text, folderKeywords()) {
		return r.handleFolder(text)
	}

	for _, app := range apps {
		if !containsAny(text, app.triggers) {
			continue
		}

		var err error
		if app.url != "" {
			err = r.launcher.OpenURL(app.url)
		} else {
			err = r.launcher.OpenApp(app.name)
		}
		if err != nil {
			r.logger.Printf("intent: open %s: %v", app.name, err)
			return true, fmt.Sprintf("Couldn't open %s. Make sure it's installed!", app.name)
		}
		return true, app.message
	}
	return false, ""
}

var searchRes = []*regexp.Regexp{
	regexp.MustCompile(`search (?:for |about )?(.+)`),
	regexp.MustCompile(`google (.+)`),
	regexp.MustCompile(`look up (.+)`),
	regexp.MustCompile(`find (.+)`),
}

func (r *Router) handleSearch(text string) (bool, string) {
	var query string
	for _, re := range searchRes {
		if m := re.FindStringSubmatch(text); m != nil {
			query = m[1]
			break
		}
	}
	if query == "" {
		return false, ""
	}

	query = cleanQuery(query)
	searchURL := "https://www.google.com/search?q=" + url.QueryEscape(query)
	if err := r.launcher.OpenURL(searchURL); err != nil {
		r.logger.Printf("intent: search: %v", err)
		return true, "Couldn't open the browser for that search."
	}
	return true, fmt.Sprintf("Searching for '%s' on Google!", query)
}

func cleanQuery(query string) string {
	query = regexp.MustCompile(` on google| on the internet`).ReplaceAllString(query, "")
	return cleanContent(query)
}

var playRes = []struct {
	re      *regexp.Regexp
	spotify bool
}{
	{regexp.MustCompile(`play (.+?) on youtube`), false},
	{regexp.MustCompile(`play (.+?) on spotify`), true},
	{regexp.MustCompile(`play (.+)`), false},
}

func (r *Router) handlePlay(text string) (bool, string) {
	for _, p := range playRes {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		query := cleanContent(m[1])

		if p.spotify {
			searchURL := "https://open.spotify.com/search/" + url.PathEscape(query)
			if err := r.launcher.OpenURL(searchURL); err != nil {
				r.logger.Printf("intent: play: %v", err)
				return true, "Couldn't open Spotify for that."
			}
			return true, fmt.Sprintf("Searching for '%s' on Spotify!", query)
		}

		searchURL := "https://www.youtube.com/results?search_query=" + url.QueryEscape(query)
		if err := r.launcher.OpenURL(searchURL); err != nil {
			r.logger.Printf("intent: play: %v", err)
			return true, "Couldn't open YouTube for that."
		}
		return true, fmt.Sprintf("Searching for '%s' on YouTube!", query)
	}
	return false, ""
}
