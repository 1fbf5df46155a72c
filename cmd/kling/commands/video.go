package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/haivivi/kling/pkg/cli"
	"github.com/haivivi/kling/pkg/encoding"
	"github.com/haivivi/kling/pkg/kling"
)

// videoFlags are the generation parameters shared by video and image2video.
type videoFlags struct {
	inputFile      string
	model          string
	duration       string
	aspectRatio    string
	mode           string
	negativePrompt string
	cfgScale       float64
	callbackURL    string
	externalTaskID string
	imageTail      string
}

func (f *videoFlags) register(cmd *cobra.Command, withAspectRatio, withImageTail bool) {
	fl := cmd.Flags()
	fl.StringVarP(&f.inputFile, "file", "f", "", "request file (YAML or JSON, - for stdin)")
	fl.StringVar(&f.model, "model", kling.DefaultModel, "model name")
	fl.StringVar(&f.duration, "duration", kling.DefaultDuration, "video duration in seconds (5 or 10)")
	fl.StringVar(&f.mode, "mode", kling.DefaultMode, "generation mode: std or pro")
	fl.StringVar(&f.negativePrompt, "negative-prompt", "", "negative prompt")
	fl.Float64Var(&f.cfgScale, "cfg-scale", 0.5, "prompt adherence, 0 to 1")
	fl.StringVar(&f.callbackURL, "callback-url", "", "URL notified when the task changes state")
	fl.StringVar(&f.externalTaskID, "external-task-id", "", "caller-defined task id")
	if withAspectRatio {
		fl.StringVar(&f.aspectRatio, "aspect-ratio", kling.DefaultAspectRatio, "aspect ratio: 16:9, 9:16 or 1:1")
	}
	if withImageTail {
		fl.StringVar(&f.imageTail, "image-tail", "", "last frame image (URL, base64 or @file)")
	}
}

// override copies a flag value into dst when the flag was given explicitly
// or dst is still empty, so request files win over flag defaults only.
func override(cmd *cobra.Command, name, value string, dst *string) {
	if cmd.Flags().Changed(name) || *dst == "" {
		*dst = value
	}
}

// resolveImage replaces an @path image reference with the file's base64
// content. Other values are sent as given.
func resolveImage(ref string) (string, error) {
	path, ok := strings.CutPrefix(ref, "@")
	if !ok {
		return ref, nil
	}
	data, err := encoding.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	return data.String(), nil
}

func (a *app) videoCommand() *cobra.Command {
	const synopsis = "kling video <prompt>"
	var f videoFlags

	cmd := &cobra.Command{
		Use:     "video <prompt>",
		Aliases: []string{"t2v"},
		Short:   "Create a text-to-video task",
		Long: `Create a text-to-video generation task and print the API response.

Unspecified parameters default to model kling-v1-5, duration 5,
aspect ratio 16:9 and mode std. Words after the command are joined
into the prompt.

A request file may supply every field; flags and the prompt argument
override it.

Example request file (t2v.yaml):
  model_name: kling-v1-6
  prompt: A cat playing with a ball in a sunny garden
  negative_prompt: blurry
  duration: "10"
  aspect_ratio: "9:16"
  mode: pro

Examples:
  kling video "a cat surfing"
  kling video a cat surfing --mode pro --duration 10
  kling video -f t2v.yaml`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && f.inputFile == "" {
				return newUsageError(synopsis, "video: missing prompt")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var req kling.TextToVideoRequest
			if f.inputFile != "" {
				if err := cli.LoadRequest(f.inputFile, &req); err != nil {
					return err
				}
			}
			if len(args) > 0 {
				req.Prompt = strings.Join(args, " ")
			}

			override(cmd, "model", f.model, &req.Model)
			override(cmd, "duration", f.duration, &req.Duration)
			override(cmd, "aspect-ratio", f.aspectRatio, &req.AspectRatio)
			override(cmd, "mode", f.mode, &req.Mode)
			if cmd.Flags().Changed("negative-prompt") {
				req.NegativePrompt = f.negativePrompt
			}
			if cmd.Flags().Changed("cfg-scale") {
				req.CFGScale = &f.cfgScale
			}
			if cmd.Flags().Changed("callback-url") {
				req.CallbackURL = f.callbackURL
			}
			if cmd.Flags().Changed("external-task-id") {
				req.ExternalTaskID = f.externalTaskID
			}

			a.logger().Debug("create text2video", "model", req.Model, "duration", req.Duration,
				"aspect_ratio", req.AspectRatio, "mode", req.Mode, "prompt", req.Prompt)

			return a.call(cmd, "create text2video task", func(ctx context.Context, c *kling.Client) (json.RawMessage, error) {
				return c.Video.CreateTextToVideo(ctx, &req)
			})
		},
	}

	f.register(cmd, true, false)
	return cmd
}

func (a *app) imageToVideoCommand() *cobra.Command {
	const synopsis = "kling image2video <image> <prompt>"
	var f videoFlags

	cmd := &cobra.Command{
		Use:     "image2video <image> <prompt>",
		Aliases: []string{"i2v"},
		Short:   "Create an image-to-video task",
		Long: `Create an image-to-video generation task and print the API response.

The image is the first frame. It is sent as given (a URL or base64 data)
unless it starts with @, in which case the named local file is read and
sent base64-encoded. --image-tail accepts the same forms.
Unspecified parameters default to model kling-v1-5, duration 5 and mode std.

Examples:
  kling image2video https://example.com/cat.png "the cat starts running"
  kling i2v https://example.com/a.png "zoom out" --image-tail https://example.com/b.png
  kling i2v @first.png "the camera pulls back"
  kling image2video -f i2v.yaml`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 && f.inputFile == "" {
				return newUsageError(synopsis, "image2video: missing image or prompt")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var req kling.ImageToVideoRequest
			if f.inputFile != "" {
				if err := cli.LoadRequest(f.inputFile, &req); err != nil {
					return err
				}
			}
			if len(args) > 0 {
				req.Image = args[0]
			}
			if len(args) > 1 {
				req.Prompt = strings.Join(args[1:], " ")
			}

			override(cmd, "model", f.model, &req.Model)
			override(cmd, "duration", f.duration, &req.Duration)
			override(cmd, "mode", f.mode, &req.Mode)
			if cmd.Flags().Changed("image-tail") {
				req.ImageTail = f.imageTail
			}
			var err error
			if req.Image, err = resolveImage(req.Image); err != nil {
				return err
			}
			if req.ImageTail != "" {
				if req.ImageTail, err = resolveImage(req.ImageTail); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("negative-prompt") {
				req.NegativePrompt = f.negativePrompt
			}
			if cmd.Flags().Changed("cfg-scale") {
				req.CFGScale = &f.cfgScale
			}
			if cmd.Flags().Changed("callback-url") {
				req.CallbackURL = f.callbackURL
			}
			if cmd.Flags().Changed("external-task-id") {
				req.ExternalTaskID = f.externalTaskID
			}

			a.logger().Debug("create image2video", "model", req.Model, "duration", req.Duration,
				"mode", req.Mode, "prompt", req.Prompt)

			return a.call(cmd, "create image2video task", func(ctx context.Context, c *kling.Client) (json.RawMessage, error) {
				return c.Video.CreateImageToVideo(ctx, &req)
			})
		},
	}

	f.register(cmd, false, true)
	return cmd
}
