// Package main provides the Kling CLI tool.
//
// Usage:
//
//	kling [flags] <command> [args]
//
// Commands:
//
//	account                       - Get account info
//	video <prompt>                - Create text-to-video
//	image2video <image> <prompt>  - Create image-to-video
//	status <task_id>              - Check task status
//	tasks                         - List tasks
//	config path|view              - Show credentials location
//
// Credentials are read from ~/.config/kling/credentials.json.
package main

import (
	"os"

	"github.com/haivivi/kling/cmd/kling/commands"
)

func main() {
	os.Exit(commands.Execute())
}
