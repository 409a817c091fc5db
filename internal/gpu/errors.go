package gpu

import (
	"fmt"
	"strings"
)

// CompileError reports a shader stage that failed to compile. It aborts the
// program's creation and carries the driver's diagnostic verbatim.
type CompileError struct {
	Stage ShaderStage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader compile failed: %s", e.Stage, strings.TrimSpace(e.Log))
}

// LinkError reports two compiled stages that failed to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("program link failed: %s", strings.TrimSpace(e.Log))
}

// ResourceNotReadyError reports a draw that referenced a texture or geometry
// before it was uploaded. There is no asynchronous upload queue to wait on,
// so this is fatal for the frame.
type ResourceNotReadyError struct {
	Resource string
}

func (e *ResourceNotReadyError) Error() string {
	return fmt.Sprintf("resource not ready: %s", e.Resource)
}
