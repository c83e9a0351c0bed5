package deps

import "testing"

func TestCheckMissingBinary(t *testing.T) {
	statuses := Check([]Requirement{{Name: "Ghost", Command: "definitely-not-a-real-binary-name"}})
	if len(statuses) != 1 {
		t.Fatalf("expected 1 status, got %d", len(statuses))
	}
	if statuses[0].Available {
		t.Fatal("expected unavailable status")
	}
	if statuses[0].Detail == "" {
		t.Fatal("expected a detail message")
	}
}

func TestCheckEmptyCommand(t *testing.T) {
	statuses := Check([]Requirement{{Name: "Empty", Command: "  "}})
	if statuses[0].Available {
		t.Fatal("expected unavailable status for empty command")
	}
	if statuses[0].Detail != "command not configured" {
		t.Fatalf("unexpected detail: %q", statuses[0].Detail)
	}
}

func TestFirstMissingSkipsOptional(t *testing.T) {
	statuses := []Status{
		{Requirement: Requirement{Name: "Probe", Optional: true}, Available: false},
		{Requirement: Requirement{Name: "Engine"}, Available: true},
	}
	if _, missing := FirstMissing(statuses); missing {
		t.Fatal("optional dependencies must not count as missing")
	}
	statuses[1].Available = false
	status, missing := FirstMissing(statuses)
	if !missing || status.Name != "Engine" {
		t.Fatalf("expected Engine reported missing, got %+v", status)
	}
}

func TestRequirements(t *testing.T) {
	reqs := Requirements("ffmpeg", "ffprobe")
	if len(reqs) != 2 {
		t.Fatalf("expected 2 requirements, got %d", len(reqs))
	}
	if reqs[0].Optional {
		t.Fatal("ffmpeg must be required")
	}
	if !reqs[1].Optional {
		t.Fatal("ffprobe must be optional")
	}
}
