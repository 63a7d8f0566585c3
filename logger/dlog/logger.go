package dlog

import (
	"log/slog"
	"os"

	"github.com/robfig/cron/v3"
	slogmulti "github.com/samber/slog-multi"
)

var Log *slog.Logger
var archiver = &Archiver{}

func init() {
	setup()
	Log = createLogger()

	schedule := os.Getenv("ARCHIVE_CRON")
	if schedule == "" {
		schedule = "0 0 * * *"
	}
	c := cron.New()
	entryID, err := c.AddFunc(schedule, archiver.process)
	if err != nil {
		panic(err)
	}
	c.Start()
	Debug("Created archive cron", "entryID", entryID)
}

func Info(msg string, args ...any) {
	Log.Info(msg, args...)
}
func Error(msg string, args ...any) {
	Log.Error(msg, args...)
}
func Warn(msg string, args ...any) {
	Log.Warn(msg, args...)
}
func Debug(msg string, args ...any) {
	Log.Debug(msg, args...)
}

func setup() {
	err := os.MkdirAll("logs", os.ModePerm)
	if err != nil {
		panic(err)
	}
}

func createLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		AddSource: true,
	}

	return slog.New(slogmulti.Fanout(
		getPrettyHandler(opts),
		getTextHandler(opts),
		getJsonHandler(opts),
	))
}

func getJsonHandler(opts *slog.HandlerOptions) slog.Handler {
	fileJson, err := os.OpenFile("logs/default.json", os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0600)
	if err != nil {
		panic(err)
	}
	return slog.NewJSONHandler(fileJson, opts)
}

func getTextHandler(opts *slog.HandlerOptions) slog.Handler {
	fileText, err := os.OpenFile("logs/default.txt", os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0600)
	if err != nil {
		panic(err)
	}
	return slog.NewTextHandler(fileText, opts)
}

func getPrettyHandler(opts *slog.HandlerOptions) slog.Handler {
	filePretty, err := os.OpenFile("logs/pretty.log", os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0600)
	if err != nil {
		panic(err)
	}
	return newPrettyHandler(&DualWriter{
		Stdout: os.Stdout,
		File:   filePretty,
	}, opts)
}
