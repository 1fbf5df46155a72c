// Package kling provides a Go client for the Kling video generation API.
//
// # Basic Usage
//
//	client := kling.NewClient(accessKey, secretKey)
//
//	// Text-to-video with default model, duration, aspect ratio and mode
//	resp, err := client.Video.CreateTextToVideo(ctx, &kling.TextToVideoRequest{
//	    Prompt: "a cat surfing",
//	})
//
//	// Poll a task
//	resp, err := client.Video.GetTaskStatus(ctx, taskID, kling.TaskTypeText2Video)
//
//	// Account info
//	resp, err := client.Account.GetInfo(ctx)
//
// # Authentication
//
// Every request carries a freshly signed HS256 JWT whose issuer is the access
// key, valid from five seconds before signing until thirty minutes after.
// Tokens are not cached.
//
// # Responses
//
// Methods return the response body as json.RawMessage regardless of the HTTP
// status code. Only transport failures and non-JSON bodies are errors; the
// latter are reported as *Error:
//
//	resp, err := client.Account.GetInfo(ctx)
//	if e, ok := kling.AsError(err); ok {
//	    // e.HTTPStatus, e.Body
//	}
//
// ParseEnvelope gives a typed view of the common {code, message, request_id,
// data} wrapper when a caller needs one.
package kling
