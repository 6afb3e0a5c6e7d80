package model

import (
	"time"

	"github.com/google/uuid"
)

// TaskIDPrefix prefixes every generated task ID
const TaskIDPrefix = "task-"

// DownloadTask represents one album download request
type DownloadTask struct {
	ID         string
	AlbumID    AlbumID
	SavePath   string // save path of the settings snapshot the task runs with
	Status     TaskStatus
	LastError  string    // last error message if any
	StartedAt  time.Time // when the task was created
	FinishedAt time.Time // when the terminal callback was scheduled
}

// NewDownloadTask returns a pending task for id.
func NewDownloadTask(id AlbumID, savePath string) *DownloadTask {
	return &DownloadTask{
		ID:        GenerateTaskID(),
		AlbumID:   id,
		SavePath:  savePath,
		Status:    TaskStatusPending,
		StartedAt: time.Now(),
	}
}

// GenerateTaskID generates a unique task ID
func GenerateTaskID() string {
	return TaskIDPrefix + uuid.NewString()
}

// Finish records the terminal state of the task. A nil err marks it completed.
func (dt *DownloadTask) Finish(err error) {
	dt.FinishedAt = time.Now()
	if err != nil {
		dt.Status = TaskStatusError
		dt.LastError = err.Error()
		return
	}
	dt.Status = TaskStatusCompleted
}

// Elapsed returns how long the task ran, or has been running so far.
func (dt *DownloadTask) Elapsed() time.Duration {
	if !dt.Status.IsFinished() {
		return time.Since(dt.StartedAt)
	}
	return dt.FinishedAt.Sub(dt.StartedAt)
}
