package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// Well-known per-user folders
const (
	DocumentsDirName = "Documents"
	DownloadsDirName = "Downloads"
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// userHomeDir is swapped in tests.
var userHomeDir = os.UserHomeDir

// GetUserProfileDir returns the current user's profile (home) directory.
// It reads USERPROFILE on Windows and HOME elsewhere.
func GetUserProfileDir() (string, error) {
	homeDir, err := userHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	if homeDir == "" {
		return "", fmt.Errorf("user home directory is not set")
	}
	return homeDir, nil
}

// GetDocumentsDir returns the user's Documents directory. The directory itself is
// not created.
func GetDocumentsDir() (string, error) {
	homeDir, err := GetUserProfileDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, DocumentsDirName), nil
}

// GetHomeDownloadsDir returns the standard Downloads directory for the user
func GetHomeDownloadsDir() (string, error) {
	homeDir, err := GetUserProfileDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, DownloadsDirName), nil
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	info, err := os.Stat(dirPath)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("not a directory: %s", dirPath)
		}
		return nil
	}
	return os.MkdirAll(dirPath, DefaultDirPermissions)
}

// OpenFolderInManager opens the directory in the system file manager
func OpenFolderInManager(dirPath string) error {
	if dirPath == "" {
		return fmt.Errorf("folder path is empty")
	}

	absPath, err := filepath.Abs(dirPath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return fmt.Errorf("folder does not exist: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a folder: %s", absPath)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, absPath).Start()
	case OSWindows:
		return exec.Command(ExplorerCommand, absPath).Start()
	case OSLinux:
		return openFolderLinux(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openFolderLinux tries xdg-open first and falls back to common file managers
func openFolderLinux(dirPath string) error {
	if _, err := exec.LookPath(XDGOpenCommand); err == nil {
		return exec.Command(XDGOpenCommand, dirPath).Start()
	}

	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return exec.Command(fm, dirPath).Start()
		}
	}

	return fmt.Errorf("no suitable file manager found")
}
