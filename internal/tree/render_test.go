package tree

import (
	"strings"
	"testing"
)

func TestRender_NotFitted(t *testing.T) {
	var clf *Classifier
	if got := clf.Render(); got != "(no tree fitted)" {
		t.Errorf("Render() = %q", got)
	}
}

func TestRender_TopLevelsOnly(t *testing.T) {
	X, y := separable()
	clf, err := Fit(X, y, []string{"income", "loan"}, DefaultConfig())
	if err != nil {
		t.Fatalf("fit: %v", err)
	}

	out := clf.Render()
	if !strings.Contains(out, "income <= 5.000") {
		t.Errorf("missing root split in:\n%s", out)
	}
	if !strings.Contains(out, ClassNames[0]) || !strings.Contains(out, ClassNames[1]) {
		t.Errorf("missing class names in:\n%s", out)
	}
}

func TestRender_DepthLimit(t *testing.T) {
	// A chain deeper than RenderDepth: the rendering must collapse
	// below the limit rather than print every level.
	deep := &Node{Feature: 0, Threshold: 1,
		Left: &Node{Class: 0},
		Right: &Node{Feature: 0, Threshold: 2,
			Left: &Node{Class: 0},
			Right: &Node{Feature: 0, Threshold: 3,
				Left: &Node{Class: 0},
				Right: &Node{Feature: 0, Threshold: 4,
					Left:  &Node{Class: 0},
					Right: &Node{Class: 1},
				},
			},
		},
	}
	clf := &Classifier{Root: deep, Columns: []string{"f"}}

	out := clf.Render()
	if strings.Contains(out, "<= 4.000") {
		t.Errorf("level 4 split should not render:\n%s", out)
	}
	if !strings.Contains(out, "<= 3.000") {
		t.Errorf("level 3 split should render:\n%s", out)
	}
}
