package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeEmptyFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), DefaultDirPermissions); err != nil {
		t.Fatalf("Failed to create dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, nil, DefaultFilePermissions); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}
}

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	err := CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	err = CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestCollectFiles_RecursiveCaseInsensitive(t *testing.T) {
	root := t.TempDir()
	writeEmptyFile(t, filepath.Join(root, "Wall_BaseColor.tga"))
	writeEmptyFile(t, filepath.Join(root, "Wall_Normal.TGA"))
	writeEmptyFile(t, filepath.Join(root, "props", "Door_AO.Tga"))
	writeEmptyFile(t, filepath.Join(root, "props", "readme.txt"))
	writeEmptyFile(t, filepath.Join(root, "Wall_Preview.png"))

	files, err := CollectFiles(root, ".tga")
	if err != nil {
		t.Fatalf("CollectFiles returned error: %v", err)
	}

	if len(files) != 3 {
		t.Fatalf("Expected 3 files, got %d: %v", len(files), files)
	}

	expected := []string{
		filepath.Join(root, "Wall_BaseColor.tga"),
		filepath.Join(root, "Wall_Normal.TGA"),
		filepath.Join(root, "props", "Door_AO.Tga"),
	}
	for i, path := range expected {
		if files[i] != path {
			t.Errorf("File %d: expected %s, got %s", i, path, files[i])
		}
	}
}

func TestCollectFiles_UppercaseExtension(t *testing.T) {
	root := t.TempDir()
	writeEmptyFile(t, filepath.Join(root, "Rock_AO.tga"))

	files, err := CollectFiles(root, ".TGA")
	if err != nil {
		t.Fatalf("CollectFiles returned error: %v", err)
	}
	if len(files) != 1 {
		t.Errorf("Expected 1 file, got %d", len(files))
	}
}

func TestCollectFiles_MissingRoot(t *testing.T) {
	_, err := CollectFiles(filepath.Join(t.TempDir(), "missing"), ".tga")
	if err == nil {
		t.Fatal("Expected error for missing root, got nil")
	}
	if !strings.Contains(err.Error(), "failed to walk") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestIsDirectory(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "file.tga")
	writeEmptyFile(t, file)

	tests := []struct {
		path     string
		expected bool
	}{
		{root, true},
		{file, false},
		{filepath.Join(root, "missing"), false},
		{"", false},
		{"   ", false},
	}

	for _, test := range tests {
		if result := IsDirectory(test.path); result != test.expected {
			t.Errorf("IsDirectory(%q) = %v, expected %v", test.path, result, test.expected)
		}
	}
}

func TestGetAppConfigDir(t *testing.T) {
	dir, err := GetAppConfigDir("com.example.app")
	if err != nil {
		t.Fatalf("Failed to get config directory: %v", err)
	}

	if filepath.Base(dir) != "com.example.app" {
		t.Errorf("Expected directory to end with the app ID, got: %s", dir)
	}
	if filepath.Base(filepath.Dir(dir)) != FyneConfigDirName {
		t.Errorf("Expected app directory under %q, got: %s", FyneConfigDirName, dir)
	}
}

func TestOpenFileInManager_NonExistentFile(t *testing.T) {
	nonExistentFile := filepath.Join(t.TempDir(), "nonexistent.tga")

	err := OpenFileInManager(nonExistentFile)
	if err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}

	if !strings.Contains(err.Error(), "file does not exist:") {
		t.Errorf("Error message should contain 'file does not exist:', got: %v", err)
	}
}

func TestOpenFileWithDefaultApp_NonExistentFile(t *testing.T) {
	err := OpenFileWithDefaultApp(filepath.Join(t.TempDir(), "nonexistent.tga"))
	if err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}
}
