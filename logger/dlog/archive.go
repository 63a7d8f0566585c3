package dlog

import (
	"io"
	"os"
	"time"

	"github.com/google/uuid"
)

type Archiver struct{}

// process moves the current log files into a directory named after the
// previous day and truncates the originals. Collisions with an existing
// archive directory get a random suffix instead of overwriting.
func (a *Archiver) process() {
	Log.Info("Started log archive process")

	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	archiveDir := "logs/" + yesterday
	if _, err := os.Stat(archiveDir); err == nil {
		archiveDir = archiveDir + "-" + uuid.NewString()[:8]
	}
	if err := os.MkdirAll(archiveDir, os.ModePerm); err != nil {
		Log.Error("Failed to create archive directory", "dir", archiveDir, "err", err)
		return
	}

	entries, err := os.ReadDir("logs")
	if err != nil {
		Log.Error("Failed to read log directory", "err", err)
		return
	}

	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		name := "logs/" + entry.Name()
		old, err := os.OpenFile(name, os.O_RDONLY, 0600)
		if err != nil {
			Log.Error("Failed to open log file", "fileName", name, "err", err)
			return
		}
		archived, err := os.OpenFile(archiveDir+"/"+entry.Name(), os.O_WRONLY|os.O_CREATE, 0600)
		if err != nil {
			old.Close()
			Log.Error("Failed to open archive file", "fileName", archiveDir+"/"+entry.Name(), "err", err)
			return
		}
		written, err := io.Copy(archived, old)
		old.Close()
		archived.Close()
		if err != nil {
			Log.Error("Failed to copy log file", "fileName", entry.Name(), "err", err)
			return
		}
		Log.Info("Copied log", "fileName", entry.Name(), "written", written)

		if err := os.Truncate(name, 0); err != nil {
			Log.Error("Failed to truncate log file", "fileName", name, "err", err)
			return
		}
	}
}
