package batch

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/krishnasree5/outliner/internal/outline"
)

func TestJobLifecycle(t *testing.T) {
	job := &Job{ID: "j1", Filename: "report.pdf", Status: StatusQueued, CreatedAt: time.Now()}

	job.SetStatus(StatusExtracting)
	if job.Snapshot().Status != StatusExtracting {
		t.Errorf("expected extracting, got %s", job.Snapshot().Status)
	}

	out := outline.Outline{Title: "Report", Entries: []outline.Entry{}}
	job.Complete(out)

	snap := job.Snapshot()
	if snap.Status != StatusCompleted {
		t.Errorf("expected completed, got %s", snap.Status)
	}
	if snap.Result == nil || snap.Result.Title != "Report" {
		t.Errorf("expected result in snapshot, got %+v", snap.Result)
	}
}

func TestJobFail(t *testing.T) {
	job := &Job{ID: "j2", Filename: "broken.pdf", Status: StatusQueued}
	job.Fail("parse pdf: bad xref")

	snap := job.Snapshot()
	if snap.Status != StatusFailed {
		t.Errorf("expected failed, got %s", snap.Status)
	}
	if snap.Error != "parse pdf: bad xref" {
		t.Errorf("unexpected error string %q", snap.Error)
	}
	if snap.Result != nil {
		t.Errorf("failed job should carry no result, got %+v", snap.Result)
	}
}

func TestJobSnapshotJSON(t *testing.T) {
	job := &Job{ID: "j3", Filename: "doc.md", Status: StatusQueued}
	data, err := json.Marshal(job.Snapshot())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"job_id":"j3","filename":"doc.md","status":"queued"}`
	if string(data) != want {
		t.Errorf("expected %s, got %s", want, data)
	}
}

func TestJobFileDataNotSerialized(t *testing.T) {
	job := &Job{ID: "j4", Filename: "doc.md", Status: StatusQueued}
	job.SetFileData([]byte("# secret contents"))

	data, err := json.Marshal(job.Snapshot())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(job.FileData()) != "# secret contents" {
		t.Error("file data lost")
	}
	if got := string(data); got != `{"job_id":"j4","filename":"doc.md","status":"queued"}` {
		t.Errorf("file data leaked into snapshot: %s", got)
	}
}

func TestJobStoreCleanup(t *testing.T) {
	store := NewJobStore(time.Minute)

	fresh := &Job{ID: "fresh", UpdatedAt: time.Now()}
	stale := &Job{ID: "stale", UpdatedAt: time.Now().Add(-2 * time.Minute)}
	store.Put(fresh)
	store.Put(stale)

	store.Cleanup()

	if store.Get("fresh") == nil {
		t.Error("fresh job evicted")
	}
	if store.Get("stale") != nil {
		t.Error("stale job not evicted")
	}
}
