package kling

import (
	"encoding/json"
	"fmt"

	"github.com/haivivi/kling/pkg/jsontime"
)

// Model names.
const (
	ModelV1   = "kling-v1"
	ModelV1_5 = "kling-v1-5"
	ModelV1_6 = "kling-v1-6"
	ModelV2   = "kling-v2-master"
)

// Generation modes.
const (
	ModeStandard     = "std"
	ModeProfessional = "pro"
)

// Request defaults.
const (
	DefaultModel       = ModelV1_5
	DefaultDuration    = "5"
	DefaultAspectRatio = "16:9"
	DefaultMode        = ModeStandard
)

// TaskType selects the task family in status and list paths.
type TaskType string

const (
	TaskTypeText2Video  TaskType = "text2video"
	TaskTypeImage2Video TaskType = "image2video"
)

// DefaultTaskType is used when no task type is given.
const DefaultTaskType = TaskTypeText2Video

// ParseTaskType validates a task type name. An empty name yields DefaultTaskType.
func ParseTaskType(s string) (TaskType, error) {
	switch TaskType(s) {
	case "":
		return DefaultTaskType, nil
	case TaskTypeText2Video, TaskTypeImage2Video:
		return TaskType(s), nil
	default:
		return "", fmt.Errorf("unknown task type %q (want %s or %s)", s, TaskTypeText2Video, TaskTypeImage2Video)
	}
}

// TextToVideoRequest is the body of a text-to-video task.
type TextToVideoRequest struct {
	Model          string   `json:"model_name" yaml:"model_name"`
	Prompt         string   `json:"prompt" yaml:"prompt"`
	NegativePrompt string   `json:"negative_prompt,omitempty" yaml:"negative_prompt,omitempty"`
	CFGScale       *float64 `json:"cfg_scale,omitempty" yaml:"cfg_scale,omitempty"`
	Duration       string   `json:"duration" yaml:"duration"`
	AspectRatio    string   `json:"aspect_ratio" yaml:"aspect_ratio"`
	Mode           string   `json:"mode" yaml:"mode"`
	CallbackURL    string   `json:"callback_url,omitempty" yaml:"callback_url,omitempty"`
	ExternalTaskID string   `json:"external_task_id,omitempty" yaml:"external_task_id,omitempty"`
}

// applyDefaults fills empty fields with the documented defaults.
func (r *TextToVideoRequest) applyDefaults() {
	if r.Model == "" {
		r.Model = DefaultModel
	}
	if r.Duration == "" {
		r.Duration = DefaultDuration
	}
	if r.AspectRatio == "" {
		r.AspectRatio = DefaultAspectRatio
	}
	if r.Mode == "" {
		r.Mode = DefaultMode
	}
}

// ImageToVideoRequest is the body of an image-to-video task.
//
// Image is passed through as given; it may be a URL or base64 data.
type ImageToVideoRequest struct {
	Model          string   `json:"model_name" yaml:"model_name"`
	Image          string   `json:"image" yaml:"image"`
	ImageTail      string   `json:"image_tail,omitempty" yaml:"image_tail,omitempty"`
	Prompt         string   `json:"prompt" yaml:"prompt"`
	NegativePrompt string   `json:"negative_prompt,omitempty" yaml:"negative_prompt,omitempty"`
	CFGScale       *float64 `json:"cfg_scale,omitempty" yaml:"cfg_scale,omitempty"`
	Duration       string   `json:"duration" yaml:"duration"`
	Mode           string   `json:"mode" yaml:"mode"`
	CallbackURL    string   `json:"callback_url,omitempty" yaml:"callback_url,omitempty"`
	ExternalTaskID string   `json:"external_task_id,omitempty" yaml:"external_task_id,omitempty"`
}

func (r *ImageToVideoRequest) applyDefaults() {
	if r.Model == "" {
		r.Model = DefaultModel
	}
	if r.Duration == "" {
		r.Duration = DefaultDuration
	}
	if r.Mode == "" {
		r.Mode = DefaultMode
	}
}

// ListTasksRequest pages through previously created tasks.
// Zero values are left to the server defaults.
type ListTasksRequest struct {
	PageNum  int
	PageSize int
}

// Envelope is the common wrapper of API responses. Client methods return the
// raw body; Envelope is a convenience view for callers that want to peek.
type Envelope struct {
	Code      int             `json:"code"`
	Message   string          `json:"message"`
	RequestID string          `json:"request_id"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// TaskInfo is the task portion of create and status responses.
type TaskInfo struct {
	TaskID        string         `json:"task_id"`
	TaskStatus    string         `json:"task_status"`
	TaskStatusMsg string         `json:"task_status_msg,omitempty"`
	CreatedAt     jsontime.Milli `json:"created_at"`
	UpdatedAt     jsontime.Milli `json:"updated_at"`
}

// ParseEnvelope decodes the common response wrapper.
func ParseEnvelope(raw json.RawMessage) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	return &env, nil
}

// OK reports whether the API signalled success.
func (e *Envelope) OK() bool {
	return e.Code == 0
}

// Task decodes Data as a single task. It returns nil when Data is not an
// object carrying a task_id, as with account or list responses.
func (e *Envelope) Task() *TaskInfo {
	if len(e.Data) == 0 || e.Data[0] != '{' {
		return nil
	}
	var info TaskInfo
	if err := json.Unmarshal(e.Data, &info); err != nil || info.TaskID == "" {
		return nil
	}
	return &info
}
