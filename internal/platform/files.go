package platform

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"emperror.dev/errors"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
)

// Videos directory names
const (
	VideosDirName = "Videos"
	MoviesDirName = "Movies"
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// SupportedVideoExtensions are offered by the open dialog. The first three
// are the classic set; the rest are containers both engines play.
var SupportedVideoExtensions = []string{".mp4", ".avi", ".mov", ".mkv", ".webm", ".m4v"}

// GetHomeVideosDir returns the user's videos directory, or the home
// directory when there is none
func GetHomeVideosDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get user home directory")
	}

	name := VideosDirName
	if runtime.GOOS == OSDarwin {
		name = MoviesDirName
	}

	videosDir := filepath.Join(homeDir, name)
	if info, err := os.Stat(videosDir); err == nil && info.IsDir() {
		return videosDir, nil
	}
	return homeDir, nil
}

// OpenFileInManager opens the file in the system file manager and highlights it
func OpenFileInManager(filePath string) error {
	if filePath == "" {
		return errors.New("file path is empty")
	}
	if _, err := os.Stat(filePath); err != nil {
		return errors.Wrapf(err, "file does not exist: %s", filePath)
	}

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return errors.Wrap(err, "failed to get absolute path")
	}

	switch runtime.GOOS {
	case OSDarwin:
		return openFileInFinderMacOS(absPath)
	case OSWindows:
		return openFileInExplorerWindows(absPath)
	case OSLinux:
		return openFileInManagerLinux(absPath)
	default:
		return errors.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openFileInFinderMacOS opens file in Finder on macOS with selection
func openFileInFinderMacOS(filePath string) error {
	cmd := exec.Command(OpenCommand, MacOSSelectFlag, filePath)
	return cmd.Run()
}

// openFileInExplorerWindows opens file in Explorer on Windows with selection
func openFileInExplorerWindows(filePath string) error {
	cmd := exec.Command(ExplorerCommand, WindowsSelectParam, filePath)
	return cmd.Run()
}

// openFileInManagerLinux opens directory containing file on Linux
// Note: File selection is not standardized on Linux, so we open the parent directory
func openFileInManagerLinux(filePath string) error {
	dir := filepath.Dir(filePath)

	// Try xdg-open first (most common)
	cmd := exec.Command(XDGOpenCommand, dir)
	if err := cmd.Run(); err == nil {
		return nil
	}

	// Fallback to common file managers
	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			cmd := exec.Command(fm, dir)
			return cmd.Run()
		}
	}

	return errors.New("no suitable file manager found")
}
