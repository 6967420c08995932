package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/racwn/wp-file-analyser/pkg/logging"
)

func newTestClient(t *testing.T, serverURL string) *Client {
	t.Helper()
	return NewClient(Options{
		TempDir:       filepath.Join(t.TempDir(), "wpa-temp"),
		CoreBaseURL:   serverURL + "/wordpress-",
		PluginBaseURL: serverURL + "/plugin/",
		ThemeBaseURL:  serverURL + "/theme/",
	}, logging.NewNullLogger())
}

func TestDownloadFile(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		switch r.URL.Path {
		case "/archive.zip":
			w.Write([]byte("zip-bytes"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	ctx := context.Background()

	t.Run("DownloadsToDestination", func(t *testing.T) {
		path, err := client.DownloadFile(ctx, server.URL+"/archive.zip", client.TempDir(), "archive.zip")
		if err != nil {
			t.Fatalf("DownloadFile() error = %v", err)
		}

		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("downloaded file missing: %v", err)
		}
		if string(content) != "zip-bytes" {
			t.Errorf("content = %q, want zip-bytes", content)
		}
	})

	t.Run("ExistingFileIsReusedWithoutRefetch", func(t *testing.T) {
		before := hits.Load()
		if _, err := client.DownloadFile(ctx, server.URL+"/archive.zip", client.TempDir(), "archive.zip"); err != nil {
			t.Fatalf("DownloadFile() error = %v", err)
		}
		if hits.Load() != before {
			t.Error("a pre-existing destination file must be reused, not refetched")
		}
	})

	t.Run("DirectoryAtDestinationIsNotReused", func(t *testing.T) {
		dirPath := filepath.Join(client.TempDir(), "archive-dir.zip")
		if err := os.MkdirAll(dirPath, 0755); err != nil {
			t.Fatalf("failed to create dir: %v", err)
		}

		before := hits.Load()
		_, err := client.DownloadFile(ctx, server.URL+"/archive.zip", client.TempDir(), "archive-dir.zip")
		if err == nil {
			t.Error("a directory at the destination must not pass as a cached archive")
		}
		if hits.Load() == before {
			t.Error("the download should be attempted, not skipped, when the destination is a directory")
		}
	})

	t.Run("HTTPErrorFails", func(t *testing.T) {
		if _, err := client.DownloadFile(ctx, server.URL+"/missing.zip", client.TempDir(), "missing.zip"); err == nil {
			t.Error("DownloadFile() should fail on a 404 response")
		}
		if _, err := os.Stat(filepath.Join(client.TempDir(), "missing.zip")); err == nil {
			t.Error("no file should be left behind after a failed download")
		}
	})
}

func TestDownloadCore(t *testing.T) {
	zipBytes := buildZipBytes(t, map[string]string{
		"wordpress/":          "",
		"wordpress/index.php": "<?php",
	})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/wordpress-6.4.2.zip" {
			http.NotFound(w, r)
			return
		}
		w.Write(zipBytes)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	refPath, err := client.DownloadCore(context.Background(), "6.4.2")
	if err != nil {
		t.Fatalf("DownloadCore() error = %v", err)
	}

	if filepath.Base(refPath) != "wordpress" {
		t.Errorf("refPath = %s, want a wordpress directory", refPath)
	}
	if _, err := os.Stat(filepath.Join(refPath, "index.php")); err != nil {
		t.Errorf("extracted core file missing: %v", err)
	}
}

func TestFetchPlugin(t *testing.T) {
	zipBytes := buildZipBytes(t, map[string]string{
		"photo-gallery/":           "",
		"photo-gallery/readme.txt": "Stable tag: 1.4.3\n",
	})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/plugin/photo-gallery.1.4.3.zip" {
			http.NotFound(w, r)
			return
		}
		w.Write(zipBytes)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	wpDir := t.TempDir()

	extracted, err := client.FetchPlugin(context.Background(), "photo-gallery", "1.4.3", wpDir)
	if err != nil {
		t.Fatalf("FetchPlugin() error = %v", err)
	}

	want := filepath.Join(wpDir, "wp-content", "plugins", "photo-gallery")
	if extracted != want {
		t.Errorf("extracted = %s, want %s", extracted, want)
	}
	if _, err := os.Stat(filepath.Join(want, "readme.txt")); err != nil {
		t.Errorf("extracted plugin file missing: %v", err)
	}
}

func TestCleanup(t *testing.T) {
	client := NewClient(Options{TempDir: filepath.Join(t.TempDir(), "wpa-temp")}, logging.NewNullLogger())

	if err := os.MkdirAll(client.TempDir(), 0755); err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	if err := client.Cleanup(); err != nil {
		t.Fatalf("Cleanup() error = %v", err)
	}
	if _, err := os.Stat(client.TempDir()); !os.IsNotExist(err) {
		t.Error("Cleanup() should remove the temp directory")
	}

	// removing an already-absent directory is fine
	if err := client.Cleanup(); err != nil {
		t.Errorf("Cleanup() on a missing directory error = %v", err)
	}
}

// buildZipBytes assembles an archive in a temp file and returns its bytes
func buildZipBytes(t *testing.T, entries map[string]string) []byte {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.zip")
	createZip(t, path, entries)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read fixture zip: %v", err)
	}
	return data
}
