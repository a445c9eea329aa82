package theme

import (
	"testing"

	"github.com/ldi/todo/pkg/models"
)

func TestFor(t *testing.T) {
	if For(true) != Dark {
		t.Errorf("expected dark palette")
	}
	if For(false) != Light {
		t.Errorf("expected light palette")
	}
	if Dark.Icon() != "🌙" || Light.Icon() != "🔆" {
		t.Errorf("unexpected icons %q %q", Dark.Icon(), Light.Icon())
	}
}

func TestStatusColor(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range models.Statuses {
		c := Light.StatusColor(s)
		if c != Dark.StatusColor(s) {
			t.Errorf("expected %s to share a colour across palettes", s)
		}
		if seen[string(c)] {
			t.Errorf("duplicate colour %s", c)
		}
		seen[string(c)] = true
	}

	if got := Light.StatusColor(models.TaskStatus("Unknown")); got != Light.Subtle {
		t.Errorf("expected fallback to subtle, got %s", got)
	}
}
