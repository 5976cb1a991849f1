package ai

import "testing"

func TestInMemoryUsage_RecordAndUsage(t *testing.T) {
	u := NewInMemoryUsage()

	if err := u.Record("user-1", "quiz", 120); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if err := u.Record("user-1", "lesson", 80); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if err := u.Record("user-2", "quiz", 10); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	total, err := u.Usage("user-1")
	if err != nil {
		t.Fatalf("Usage() error = %v", err)
	}
	if total != 200 {
		t.Errorf("Usage(user-1) = %d, want 200", total)
	}

	if got := u.OperationUsage("user-1", "quiz"); got != 120 {
		t.Errorf("OperationUsage(user-1, quiz) = %d, want 120", got)
	}
}

func TestInMemoryUsage_NegativeTokens(t *testing.T) {
	u := NewInMemoryUsage()

	if err := u.Record("user-1", "quiz", -5); err == nil {
		t.Fatal("Record() should reject negative tokens")
	}
}

func TestInMemoryUsage_UnknownUser(t *testing.T) {
	u := NewInMemoryUsage()

	total, err := u.Usage("nobody")
	if err != nil {
		t.Fatalf("Usage() error = %v", err)
	}
	if total != 0 {
		t.Errorf("Usage(nobody) = %d, want 0", total)
	}
}
