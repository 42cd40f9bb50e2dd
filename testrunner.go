package yuletree

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNoSteps is returned by LoadTestScript for a script without steps.
var ErrNoSteps = errors.New("no steps")

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	// Variant and Effect are checked by the "expect" action.
	Variant *int  `json:"variant,omitempty"`
	Effect  *bool `json:"effect,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected clicks, waits, state checks, and
// screenshots across frames for automated visual testing. Attach it to a
// Game via SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	failures  []error
}

// LoadTestScript parses a JSON test script and returns a TestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: %w", ErrNoSteps)
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "screenshot", "click", "drag", "wait", "expect":
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner. Its step method runs at the start of
// every Update.
func (g *Game) SetTestRunner(runner *TestRunner) {
	g.testRunner = runner
}

// Done reports whether all steps have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Err joins every failed "expect" step, or returns nil.
func (r *TestRunner) Err() error {
	return errors.Join(r.failures...)
}

// step advances the runner by one frame.
func (r *TestRunner) step(g *Game) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(g.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		g.Screenshot(st.Label)
	case "click":
		g.InjectClick(st.X, st.Y)
	case "drag":
		frames := st.Frames
		if frames < 2 {
			frames = 2
		}
		g.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "expect":
		r.expect(r.cursor-1, st, g.greeting.State())
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(g.injectQueue) == 0 {
		r.done = true
	}
}

func (r *TestRunner) expect(idx int, st testStep, s AppState) {
	if st.Variant != nil && s.VariantIndex != *st.Variant {
		r.failures = append(r.failures, fmt.Errorf("step %d: variant = %d, want %d", idx, s.VariantIndex, *st.Variant))
	}
	if st.Effect != nil && s.EffectActive != *st.Effect {
		r.failures = append(r.failures, fmt.Errorf("step %d: effect = %v, want %v", idx, s.EffectActive, *st.Effect))
	}
}
