package browser

import (
	"bufio"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// chromeCookiePaths returns candidate Chrome cookie database paths for
// the given home directory. Network/Cookies is preferred over the
// legacy Cookies location.
func chromeCookiePaths(homeDir string) []string {
	var base string
	switch runtime.GOOS {
	case "darwin":
		base = filepath.Join(homeDir, "Library", "Application Support", "Google", "Chrome", "Default")
	case "windows":
		base = filepath.Join(os.Getenv("LOCALAPPDATA"), "Google", "Chrome", "User Data", "Default")
	default:
		base = filepath.Join(homeDir, ".config", "google-chrome", "Default")
	}
	return []string{
		filepath.Join(base, "Network", "Cookies"),
		filepath.Join(base, "Cookies"),
	}
}

// edgeCookiePaths returns candidate Edge cookie database paths for the
// given home directory.
func edgeCookiePaths(homeDir string) []string {
	var base string
	switch runtime.GOOS {
	case "darwin":
		base = filepath.Join(homeDir, "Library", "Application Support", "Microsoft Edge", "Default")
	case "windows":
		base = filepath.Join(os.Getenv("LOCALAPPDATA"), "Microsoft", "Edge", "User Data", "Default")
	default:
		base = filepath.Join(homeDir, ".config", "microsoft-edge", "Default")
	}
	return []string{
		filepath.Join(base, "Network", "Cookies"),
		filepath.Join(base, "Cookies"),
	}
}

// firefoxProfilesIniPaths returns candidate Firefox profiles.ini paths
// for the given home directory.
func firefoxProfilesIniPaths(homeDir string) []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{
			filepath.Join(homeDir, "Library", "Application Support", "Firefox", "profiles.ini"),
		}
	case "windows":
		return []string{
			filepath.Join(os.Getenv("APPDATA"), "Mozilla", "Firefox", "profiles.ini"),
		}
	default:
		return []string{
			filepath.Join(homeDir, ".mozilla", "firefox", "profiles.ini"),
			filepath.Join(homeDir, "snap", "firefox", "common", ".mozilla", "firefox", "profiles.ini"),
		}
	}
}

// safariCookiePaths returns candidate Safari binarycookies paths for the
// given home directory. Safari only exists on macOS; callers gate on
// runtime.GOOS separately so tests can exercise the paths anywhere.
func safariCookiePaths(homeDir string) []string {
	return []string{
		filepath.Join(homeDir, "Library", "Containers", "com.apple.Safari",
			"Data", "Library", "Cookies", "Cookies.binarycookies"),
		filepath.Join(homeDir, "Library", "Cookies", "Cookies.binarycookies"),
	}
}

// userHomeDir returns the current user's home directory, or "" when it
// cannot be determined (availability probes then simply report false).
func userHomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home
}

// parseProfilesIni parses a Firefox-style profiles.ini file and returns
// the absolute path to the default profile directory.
//
// Priority:
//  1. [Install*] section Default= key (modern Firefox)
//  2. [Profile*] section with Default=1 (older profiles)
//
// Returns an empty string (no error) if the file does not exist, cannot
// be read, or contains no identifiable default profile.
func parseProfilesIni(iniPath string) string {
	f, err := os.Open(iniPath)
	if err != nil {
		return ""
	}
	defer f.Close()

	iniDir := filepath.Dir(iniPath)

	var installDefault string
	var profileDefault string
	var inInstallSection bool
	var inProfileSection bool
	var currentPath string
	var currentIsDefault bool

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		if strings.HasPrefix(line, "[") {
			// Flush previous Profile section if it had Default=1.
			if inProfileSection && currentIsDefault && profileDefault == "" {
				profileDefault = currentPath
			}
			sectionName := strings.TrimSuffix(strings.TrimPrefix(line, "["), "]")
			inInstallSection = strings.HasPrefix(sectionName, "Install")
			inProfileSection = strings.HasPrefix(sectionName, "Profile")
			currentPath = ""
			currentIsDefault = false
			continue
		}
		k, v, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		key := strings.TrimSpace(k)
		val := strings.TrimSpace(v)
		if inInstallSection && key == "Default" && installDefault == "" {
			installDefault = filepath.Join(iniDir, filepath.FromSlash(val))
		}
		if inProfileSection {
			if key == "Path" {
				currentPath = filepath.Join(iniDir, filepath.FromSlash(val))
			}
			if key == "Default" && val == "1" {
				currentIsDefault = true
			}
		}
	}
	// Flush the last section.
	if inProfileSection && currentIsDefault && profileDefault == "" {
		profileDefault = currentPath
	}

	if installDefault != "" {
		return installDefault
	}
	return profileDefault
}
