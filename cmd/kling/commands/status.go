package commands

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/haivivi/kling/pkg/kling"
)

func (a *app) statusCommand() *cobra.Command {
	const synopsis = "kling status <task_id>"
	var taskType string

	cmd := &cobra.Command{
		Use:   "status <task_id>",
		Short: "Check task status",
		Long: `Query a generation task and print the API response.

The task type selects the status path. It defaults to text2video; tasks
created with image2video need --type image2video.

Examples:
  kling status 8a2e4b1c
  kling status 8a2e4b1c --type image2video
  kling status 8a2e4b1c --jq .data.task_status`,
		Args: requireArgs(1, synopsis),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, err := kling.ParseTaskType(taskType)
			if err != nil {
				return newUsageError(synopsis, "%v", err)
			}
			taskID := args[0]

			a.logger().Debug("get task status", "task_id", taskID, "type", typ)

			return a.call(cmd, "get task status", func(ctx context.Context, c *kling.Client) (json.RawMessage, error) {
				return c.Video.GetTaskStatus(ctx, taskID, typ)
			})
		},
	}

	cmd.Flags().StringVarP(&taskType, "type", "t", string(kling.DefaultTaskType), "task type: text2video or image2video")
	return cmd
}

func (a *app) tasksCommand() *cobra.Command {
	const synopsis = "kling tasks [--type text2video|image2video] [--page N] [--page-size N]"
	var (
		taskType string
		req      kling.ListTasksRequest
	)

	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "List tasks",
		Long: `List generation tasks of one type, newest first.

Examples:
  kling tasks
  kling tasks --type image2video --page 2 --page-size 50`,
		Args: noArgs(synopsis),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, err := kling.ParseTaskType(taskType)
			if err != nil {
				return newUsageError(synopsis, "%v", err)
			}

			return a.call(cmd, "list tasks", func(ctx context.Context, c *kling.Client) (json.RawMessage, error) {
				return c.Video.ListTasks(ctx, typ, &req)
			})
		},
	}

	cmd.Flags().StringVarP(&taskType, "type", "t", string(kling.DefaultTaskType), "task type: text2video or image2video")
	cmd.Flags().IntVar(&req.PageNum, "page", 1, "page number, from 1")
	cmd.Flags().IntVar(&req.PageSize, "page-size", 30, "tasks per page, up to 500")
	return cmd
}
