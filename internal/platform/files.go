package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
	CmdCommand      = "cmd"
	StartCommand    = "start"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
	WindowsCmdFlag     = "/c"
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// Fallback name matching. Exports follow the shopping-list-YYYY-MM-DD.txt
// pattern, but users rename them ("shopping-list-2026-08-30 groceries.txt"),
// so a missing file is retried against similarly named siblings.
const (
	MaxNameDifference = 16

	ScoreExactName        = 3
	ScoreSeparatorVariant = 2
	ScoreContainedName    = 1
)

// Separators users typically insert when renaming a file
var (
	NameSeparators = []string{"-", "_", " "}
)

// AppDirName is the folder created under the user's documents for recipe data
const AppDirName = "MealFold"

// OpenFileInManager opens the file in the system file manager and highlights it
func OpenFileInManager(filePath string) error {
	absPath, err := resolvePath(filePath)
	if err != nil {
		return err
	}

	switch runtime.GOOS {
	case OSDarwin: // macOS
		return openFileInFinderMacOS(absPath)
	case OSWindows:
		return openFileInExplorerWindows(absPath)
	case OSLinux:
		return openFileInManagerLinux(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
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

	return fmt.Errorf("no suitable file manager found")
}

// OpenFileWithDefaultApp opens the file with the default system application
func OpenFileWithDefaultApp(filePath string) error {
	absPath, err := resolvePath(filePath)
	if err != nil {
		return err
	}

	switch runtime.GOOS {
	case OSDarwin: // macOS
		cmd := exec.Command(OpenCommand, absPath)
		return cmd.Run()
	case OSWindows:
		cmd := exec.Command(CmdCommand, WindowsCmdFlag, StartCommand, "", absPath)
		return cmd.Run()
	case OSLinux:
		cmd := exec.Command(XDGOpenCommand, absPath)
		return cmd.Run()
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// resolvePath locates the file, falling back to similarly named siblings,
// and converts the result to an absolute path
func resolvePath(filePath string) (string, error) {
	foundPath, err := FindFileWithFallback(filePath)
	if err != nil {
		return "", fmt.Errorf("file does not exist: %v", err)
	}

	absPath, err := filepath.Abs(foundPath)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}
	return absPath, nil
}

// FindFileWithFallback returns filePath when the file exists. When it does
// not — typically because the user renamed an export after the fact — the
// same directory is searched for a file with the same extension whose base
// name still resembles the original: an exact match after trimming, a
// separator-prefixed or -suffixed variant, or one name contained in the
// other within a bounded length difference. The closest name wins; ties go
// to the most recently modified file.
func FindFileWithFallback(filePath string) (string, error) {
	if filePath == "" {
		return "", fmt.Errorf("file path is empty")
	}
	if _, err := os.Stat(filePath); err == nil {
		return filePath, nil
	}

	dir := filepath.Dir(filePath)
	originalName := filepath.Base(filePath)
	ext := filepath.Ext(originalName)
	base := strings.TrimSuffix(originalName, ext)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var bestPath string
	var bestScore int
	var bestModTime time.Time

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if filepath.Ext(name) != ext {
			continue
		}

		score := nameSimilarity(strings.TrimSuffix(name, ext), base)
		if score == 0 {
			continue
		}

		var modTime time.Time
		if info, infoErr := entry.Info(); infoErr == nil {
			modTime = info.ModTime()
		}
		if score > bestScore || (score == bestScore && modTime.After(bestModTime)) {
			bestPath = filepath.Join(dir, name)
			bestScore = score
			bestModTime = modTime
		}
	}

	if bestPath == "" {
		return "", fmt.Errorf("file not found: %s", filePath)
	}
	return bestPath, nil
}

// nameSimilarity scores how closely a candidate base name matches the
// original one. Zero means no plausible relation.
func nameSimilarity(candidate, original string) int {
	candidate = strings.TrimSpace(candidate)
	original = strings.TrimSpace(original)
	if candidate == "" || original == "" {
		return 0
	}
	if candidate == original {
		return ScoreExactName
	}

	for _, sep := range NameSeparators {
		if candidate == original+sep || candidate == sep+original {
			return ScoreSeparatorVariant
		}
	}

	longer, shorter := candidate, original
	if len(longer) < len(shorter) {
		longer, shorter = shorter, longer
	}
	if strings.Contains(longer, shorter) && len(longer)-len(shorter) <= MaxNameDifference {
		return ScoreContainedName
	}
	return 0
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// DefaultDataDir returns the standard location for the recipe collection,
// a folder inside the user's documents directory
func DefaultDataDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, "Documents", AppDirName), nil
}

// GetHomeDownloadsDir returns the standard Downloads directory for the user
func GetHomeDownloadsDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, "Downloads"), nil
}
