package kling

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// VideoService provides video generation operations.
type VideoService struct {
	client *Client
}

// newVideoService creates a new video service.
func newVideoService(client *Client) *VideoService {
	return &VideoService{client: client}
}

// CreateTextToVideo creates a text-to-video generation task.
//
// Empty model, duration, aspect ratio and mode fields are filled with
// DefaultModel, DefaultDuration, DefaultAspectRatio and DefaultMode. The
// request is not otherwise validated.
//
// Example:
//
//	resp, err := client.Video.CreateTextToVideo(ctx, &kling.TextToVideoRequest{
//	    Prompt: "a cat surfing",
//	})
func (s *VideoService) CreateTextToVideo(ctx context.Context, req *TextToVideoRequest) (json.RawMessage, error) {
	var body TextToVideoRequest
	if req != nil {
		body = *req
	}
	body.applyDefaults()
	return s.client.http.request(ctx, http.MethodPost, "/v1/videos/"+string(TaskTypeText2Video), &body)
}

// CreateImageToVideo creates an image-to-video generation task.
//
// The image is used as the first frame and is passed through unvalidated.
func (s *VideoService) CreateImageToVideo(ctx context.Context, req *ImageToVideoRequest) (json.RawMessage, error) {
	var body ImageToVideoRequest
	if req != nil {
		body = *req
	}
	body.applyDefaults()
	return s.client.http.request(ctx, http.MethodPost, "/v1/videos/"+string(TaskTypeImage2Video), &body)
}

// GetTaskStatus queries a single task. An empty task type means text2video.
func (s *VideoService) GetTaskStatus(ctx context.Context, taskID string, taskType TaskType) (json.RawMessage, error) {
	if taskType == "" {
		taskType = DefaultTaskType
	}
	path := "/v1/videos/" + url.PathEscape(string(taskType)) + "/" + url.PathEscape(taskID)
	return s.client.http.request(ctx, http.MethodGet, path, nil)
}

// ListTasks pages through tasks of one type. req may be nil.
func (s *VideoService) ListTasks(ctx context.Context, taskType TaskType, req *ListTasksRequest) (json.RawMessage, error) {
	if taskType == "" {
		taskType = DefaultTaskType
	}
	return s.client.http.request(ctx, http.MethodGet, "/v1/videos/"+url.PathEscape(string(taskType)), req)
}
