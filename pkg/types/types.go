package types

import (
	"fmt"

	proto "github.com/Nayrode/sealci/api/proto"
)

// ActionStatus represents the lifecycle state of an action as recorded by the
// controller. It is persisted under its proto enum name
// (ACTION_STATUS_<NAME>).
type ActionStatus string

const (
	ActionStatusPending   ActionStatus = "ACTION_STATUS_PENDING"
	ActionStatusRunning   ActionStatus = "ACTION_STATUS_RUNNING"
	ActionStatusCompleted ActionStatus = "ACTION_STATUS_COMPLETED"
	ActionStatusError     ActionStatus = "ACTION_STATUS_ERROR"
)

// ParseActionStatus accepts both the persisted proto names and the bare
// human-readable names found in older rows.
func ParseActionStatus(s string) (ActionStatus, error) {
	switch s {
	case "ACTION_STATUS_PENDING", "Pending":
		return ActionStatusPending, nil
	case "ACTION_STATUS_RUNNING", "Running", "Scheduled":
		return ActionStatusRunning, nil
	case "ACTION_STATUS_COMPLETED", "Completed":
		return ActionStatusCompleted, nil
	case "ACTION_STATUS_ERROR", "Error":
		return ActionStatusError, nil
	}
	return "", fmt.Errorf("unknown action status %q", s)
}

// ActionStatusFromCompletion maps the numeric completion code carried on the
// wire (0=Pending, 1=Running, 2=Completed, 3=Error) to a status. Unknown
// codes map to Error.
func ActionStatusFromCompletion(completion proto.ActionStatus) ActionStatus {
	switch completion {
	case proto.ActionStatus_ACTION_STATUS_PENDING:
		return ActionStatusPending
	case proto.ActionStatus_ACTION_STATUS_RUNNING:
		return ActionStatusRunning
	case proto.ActionStatus_ACTION_STATUS_COMPLETED:
		return ActionStatusCompleted
	case proto.ActionStatus_ACTION_STATUS_ERROR:
		return ActionStatusError
	default:
		return ActionStatusError
	}
}

// ActionType defines how an action is executed. Container is the only
// runner today.
type ActionType string

const (
	ActionTypeContainer ActionType = "container"
)

// ParseActionType parses the persisted form of an action type.
func ParseActionType(s string) (ActionType, error) {
	switch s {
	case "container":
		return ActionTypeContainer, nil
	}
	return "", fmt.Errorf("unknown action type %q", s)
}

// ActionState is the agent-local execution state of an action, published on
// the agent's state broker. It is not a wire type.
type ActionState string

const (
	ActionStateInProgress ActionState = "in_progress"
	ActionStateCompleted  ActionState = "completed"
	ActionStateFailed     ActionState = "failed"
)

// Pipeline is an ordered group of actions created from one repository event.
// Immutable after creation except through its actions' status.
type Pipeline struct {
	ID            int64
	Name          string
	RepositoryURL string
	Actions       []*Action
}

// Action is a single container-based execution unit: image + commands + repo.
type Action struct {
	ID           int64
	PipelineID   int64
	Name         string
	Type         ActionType
	ContainerURI string
	Commands     []string
	Status       ActionStatus

	// Logs is populated only on verbose reads; nil otherwise.
	Logs []string
}

// LogEntry is one appended line of action output.
type LogEntry struct {
	ID       int64
	ActionID int64
	Data     string
}
