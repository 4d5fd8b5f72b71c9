package pathutil

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestToRelative(t *testing.T) {
	tests := []struct {
		name     string
		absPath  string
		rootDir  string
		expected string
	}{
		{
			name:     "simple relative path",
			absPath:  "/home/user/packages/scorm-course/imsmanifest.xml",
			rootDir:  "/home/user/packages",
			expected: "scorm-course/imsmanifest.xml",
		},
		{
			name:     "nested relative path",
			absPath:  "/home/user/packages/scorm-course/res/index.html",
			rootDir:  "/home/user/packages",
			expected: "scorm-course/res/index.html",
		},
		{
			name:     "root level file",
			absPath:  "/home/user/packages/README.md",
			rootDir:  "/home/user/packages",
			expected: "README.md",
		},
		{
			name:     "same directory",
			absPath:  "/home/user/packages",
			rootDir:  "/home/user/packages",
			expected: ".",
		},
		{
			name:     "already relative path",
			absPath:  "imsmanifest.xml",
			rootDir:  "/home/user/packages",
			expected: "imsmanifest.xml",
		},
		{
			name:     "path outside root - fallback to absolute",
			absPath:  "/other/location/file.xml",
			rootDir:  "/home/user/packages",
			expected: "/other/location/file.xml",
		},
		{
			name:     "empty root directory",
			absPath:  "/home/user/packages/file.xml",
			rootDir:  "",
			expected: "/home/user/packages/file.xml",
		},
		{
			name:     "empty absolute path",
			absPath:  "",
			rootDir:  "/home/user/packages",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ToRelative(tt.absPath, tt.rootDir)

			if runtime.GOOS == "windows" {
				result = filepath.ToSlash(result)
				expected := filepath.ToSlash(tt.expected)
				if result != expected {
					t.Errorf("ToRelative() = %v, want %v", result, expected)
				}
			} else {
				if result != tt.expected {
					t.Errorf("ToRelative() = %v, want %v", result, tt.expected)
				}
			}
		})
	}
}
