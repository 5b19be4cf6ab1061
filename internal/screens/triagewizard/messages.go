package triagewizard

import "github.com/clinsaude/clin/internal/orientation"

// submitResultMsg reports the outcome of the one persistence attempt.
type submitResultMsg struct {
	Err error
}

// tipsReadyMsg delivers the generated wellness tips, or the error that
// prevented them. Tips are best-effort; the result stays visible either way.
type tipsReadyMsg struct {
	Tips *orientation.Tips
	Err  error
}
