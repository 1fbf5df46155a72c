package commands

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/haivivi/kling/pkg/kling"
)

func (a *app) accountCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "account",
		Short: "Get account info",
		Args:  noArgs("kling account"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.call(cmd, "get account info", func(ctx context.Context, c *kling.Client) (json.RawMessage, error) {
				return c.Account.GetInfo(ctx)
			})
		},
	}
}
