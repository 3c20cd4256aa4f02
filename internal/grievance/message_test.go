package grievance

import (
	"strings"
	"testing"
)

func TestDefectMessage(t *testing.T) {
	msg := DefectMessage(3, 25)

	if !strings.HasPrefix(msg, "Dear Customer,\n") {
		t.Errorf("Expected greeting, got %q", msg)
	}
	if !strings.Contains(msg, "3 out of the 25 pens") {
		t.Errorf("Expected counts in message, got %q", msg)
	}
}
