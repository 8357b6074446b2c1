package db

import (
	"testing"
)

func TestRunLifecycle(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	runID, err := db.CreateRun("https://example.com/names.zip", "names.zip", "data.csv")
	if err != nil {
		t.Fatalf("CreateRun() failed: %v", err)
	}

	run, err := db.GetRunByID(runID)
	if err != nil {
		t.Fatalf("GetRunByID() failed: %v", err)
	}
	if run.Status != "pending" {
		t.Errorf("new run status = %q, want pending", run.Status)
	}
	if run.SourceURL != "https://example.com/names.zip" {
		t.Errorf("SourceURL = %q, want the fetch URL", run.SourceURL)
	}

	if err := db.FinishRun(runID, 140, 2000000); err != nil {
		t.Fatalf("FinishRun() failed: %v", err)
	}

	run, err = db.GetRunByID(runID)
	if err != nil {
		t.Fatalf("GetRunByID() failed: %v", err)
	}
	if run.Status != "complete" {
		t.Errorf("finished run status = %q, want complete", run.Status)
	}
	if run.MemberCount != 140 || run.RecordCount != 2000000 {
		t.Errorf("counts = %d/%d, want 140/2000000", run.MemberCount, run.RecordCount)
	}
}

func TestFailRun(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	runID, err := db.CreateRun("", "", "data.csv")
	if err != nil {
		t.Fatalf("CreateRun() failed: %v", err)
	}

	if err := db.FailRun(runID); err != nil {
		t.Fatalf("FailRun() failed: %v", err)
	}

	run, err := db.GetRunByID(runID)
	if err != nil {
		t.Fatalf("GetRunByID() failed: %v", err)
	}
	if run.Status != "failed" {
		t.Errorf("run status = %q, want failed", run.Status)
	}
}

func TestGetRunByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if _, err := db.GetRunByID(42); err == nil {
		t.Fatal("GetRunByID() succeeded for a missing run, want error")
	}
}

func TestListRuns(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	for i := 0; i < 3; i++ {
		if _, err := db.CreateRun("", "", "data.csv"); err != nil {
			t.Fatalf("CreateRun() failed: %v", err)
		}
	}

	runs, err := db.ListRuns(10)
	if err != nil {
		t.Fatalf("ListRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("got %d runs, want 3", len(runs))
	}

	// Newest first.
	for i := 1; i < len(runs); i++ {
		if runs[i].RunID > runs[i-1].RunID {
			t.Errorf("runs not newest-first: %d before %d", runs[i-1].RunID, runs[i].RunID)
		}
	}

	limited, err := db.ListRuns(2)
	if err != nil {
		t.Fatalf("ListRuns() failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("got %d runs with limit 2, want 2", len(limited))
	}
}
