// Package launcher starts applications, URLs and folders on the host OS.
// Each operation branches on GOOS: Windows goes through the shell's
// registered handlers, macOS through open/open -a, everything else
// through xdg-open or the named binary.
package launcher

import (
	"fmt"
	"log"
	"os/exec"
	"runtime"
)

// System launches things with real OS processes.
type System struct {
	goos   string
	logger *log.Logger
}

// New creates a launcher for the current OS.
func New(logger *log.Logger) *System {
	return &System{goos: runtime.GOOS, logger: logger}
}

// appCommands maps canonical app names to per-OS launch commands.
type launchSpec struct {
	windows []string
	darwin  []string
	linux   []string
}

var appCommands = map[string]launchSpec{
	"chrome":     {[]string{"cmd", "/c", "start", "chrome"}, []string{"open", "-a", "Google Chrome"}, []string{"google-chrome"}},
	"firefox":    {[]string{"cmd", "/c", "start", "firefox"}, []string{"open", "-a", "Firefox"}, []string{"firefox"}},
	"edge":       {[]string{"cmd", "/c", "start", "msedge"}, []string{"open", "-a", "Microsoft Edge"}, []string{"microsoft-edge"}},
	"notepad":    {[]string{"cmd", "/c", "start", "notepad"}, []string{"open", "-a", "TextEdit"}, []string{"gedit"}},
	"calculator": {[]string{"cmd", "/c", "start", "calc"}, []string{"open", "-a", "Calculator"}, []string{"gnome-calculator"}},
	"paint":      {[]string{"cmd", "/c", "start", "mspaint"}, []string{"open", "-a", "Preview"}, []string{"gimp"}},
	"explorer":   {[]string{"cmd", "/c", "start", "explorer"}, []string{"open", "."}, []string{"nautilus"}},
	"cmd":        {[]string{"cmd", "/c", "start", "cmd"}, []string{"open", "-a", "Terminal"}, []string{"gnome-terminal"}},
	"spotify":    {[]string{"cmd", "/c", "start", "spotify"}, []string{"open", "-a", "Spotify"}, []string{"spotify"}},
	"discord":    {[]string{"cmd", "/c", "start", "discord"}, []string{"open", "-a", "Discord"}, []string{"discord"}},
	"vscode":     {[]string{"cmd", "/c", "start", "code"}, []string{"open", "-a", "Visual Studio Code"}, []string{"code"}},
	"word":       {[]string{"cmd", "/c", "start", "winword"}, []string{"open", "-a", "Microsoft Word"}, []string{"libreoffice", "--writer"}},
	"excel":      {[]string{"cmd", "/c", "start", "excel"}, []string{"open", "-a", "Microsoft Excel"}, []string{"libreoffice", "--calc"}},
	"powerpoint": {[]string{"cmd", "/c", "start", "powerpnt"}, []string{"open", "-a", "Microsoft PowerPoint"}, []string{"libreoffice", "--impress"}},
}

// OpenApp launches the named application.
func (s *System) OpenApp(name string) error {
	spec, ok := appCommands[name]
	if !ok {
		return fmt.Errorf("no launch command for %q", name)
	}

	var argv []string
	switch s.goos {
	case "windows":
		argv = spec.windows
	case "darwin":
		argv = spec.darwin
	default:
		argv = spec.linux
	}
	return s.run(argv)
}

// OpenURL opens a URL in the default browser.
func (s *System) OpenURL(rawURL string) error {
	switch s.goos {
	case "windows":
		return s.run([]string{"rundll32", "url.dll,FileProtocolHandler", rawURL})
	case "darwin":
		return s.run([]string{"open", rawURL})
	default:
		return s.run([]string{"xdg-open", rawURL})
	}
}

// OpenFolder opens a directory in the file manager.
func (s *System) OpenFolder(path string) error {
	switch s.goos {
	case "windows":
		return s.run([]string{"explorer", path})
	case "darwin":
		return s.run([]string{"open", path})
	default:
		return s.run([]string{"xdg-open", path})
	}
}

// run starts the process without waiting for it; launched apps outlive us.
func (s *System) run(argv []string) error {
	cmd := exec.Command(argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launch %s: %w", argv[0], err)
	}
	go func() {
		if err := cmd.Wait(); err != nil {
			s.logger.Printf("launcher: %s exited: %v", argv[0], err)
		}
	}()
	return nil
}
