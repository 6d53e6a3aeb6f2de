package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/zhubert/emailwriter/internal/clipboard"
	"github.com/zhubert/emailwriter/internal/config"
	"github.com/zhubert/emailwriter/internal/logger"
	"github.com/zhubert/emailwriter/internal/reply"
	"github.com/zhubert/emailwriter/internal/tone"
)

// generateOptions holds the flags of the generate command
type generateOptions struct {
	tone   string
	file   string
	copy   bool
	hold   time.Duration
	output string
}

var genOpts generateOptions

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one reply without the interactive screen",
	Long: `Reads the original email from --file (or stdin), asks the reply service
for a reply in the given tone and prints the draft to stdout. Notices go to
stderr, so the draft can be piped.

When the service is unavailable the standard fallback template is printed
instead, exactly as in the interactive screen.

On X11 and Wayland the copied text lives only as long as the process that
copied it. With --copy the command stays alive until another program takes
over the clipboard or --hold elapses, whichever comes first. Run a
clipboard manager to keep the text after that.`,
	Example: `  pbpaste | emailwriter generate --tone friendly
  emailwriter generate --tone formal --file email.txt --copy
  emailwriter generate -t apologetic -f email.txt -o ~/Desktop/reply.txt`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&genOpts.tone, "tone", "t", "", fmt.Sprintf("Reply tone %v", tone.Values()))
	generateCmd.Flags().StringVarP(&genOpts.file, "file", "f", "", "Read the original email from this file instead of stdin")
	generateCmd.Flags().BoolVarP(&genOpts.copy, "copy", "c", false, "Also copy the draft to the clipboard")
	generateCmd.Flags().DurationVar(&genOpts.hold, "hold", 30*time.Second, "With --copy on X11/Wayland, how long to keep serving the clipboard")
	generateCmd.Flags().StringVarP(&genOpts.output, "output", "o", "", "Also save the draft to this file (never overwritten)")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	defer logger.Close()

	client := reply.NewClient(reply.ClientConfig{
		BaseURL:   cfg.GetAPIBaseURL(),
		Timeout:   cfg.GetRequestTimeout(),
		UserAgent: "emailwriter/" + version,
	})

	gio := generateIO{
		in:        cmd.InOrStdin(),
		out:       cmd.OutOrStdout(),
		errOut:    cmd.ErrOrStderr(),
		generator: client,
		clipboard: clipboard.System{},
	}
	if clipboard.NeedsOwner() {
		gio.holdClipboard = clipboard.Hold
	}

	return runGenerateWith(cmd.Context(), cfg, genOpts, gio)
}

// generateIO carries the side effects of a generate run so tests can swap them
type generateIO struct {
	in        io.Reader
	out       io.Writer
	errOut    io.Writer
	generator reply.Generator
	clipboard reply.ClipboardWriter

	// holdClipboard keeps copied text available after a copy; nil when the
	// platform clipboard outlives the process
	holdClipboard func(ctx context.Context, limit time.Duration) bool
}

// runGenerateWith drives one attempt through the same Session the
// interactive screen uses.
func runGenerateWith(ctx context.Context, cfg *config.Config, opts generateOptions, gio generateIO) error {
	if ctx == nil {
		ctx = context.Background()
	}

	t, err := tone.Parse(opts.tone)
	if err != nil {
		return err
	}

	email, err := readEmail(opts.file, gio.in)
	if err != nil {
		return err
	}

	session := reply.NewSession()
	session.SetEmail(email)
	if err := session.SetTone(t); err != nil {
		return err
	}

	attempt, err := session.Begin()
	if err != nil {
		fmt.Fprintln(gio.errOut, reply.NoticeMissingInformation)
		return err
	}

	genCtx, cancel := context.WithTimeout(ctx, cfg.GetRequestTimeout())
	defer cancel()

	outcome := reply.NewController(gio.generator).Run(genCtx, attempt.Request)
	notice, _ := session.Complete(attempt.ID, outcome)

	fmt.Fprintln(gio.out, session.Draft())
	fmt.Fprintln(gio.errOut, notice)

	if opts.output != "" {
		x := reply.NewFileExporter(filepath.Dir(opts.output))
		path, err := x.Download(session.Draft(), filepath.Base(opts.output))
		if err != nil {
			return err
		}
		fmt.Fprintf(gio.errOut, "Saved to %s\n", path)
	}

	// Copy last so holding the clipboard does not delay the other outputs
	if opts.copy {
		_, copyNotice := session.Copy(gio.clipboard)
		fmt.Fprintln(gio.errOut, copyNotice)

		if session.Copied() && gio.holdClipboard != nil && opts.hold > 0 {
			fmt.Fprintf(gio.errOut, "Keeping the clipboard for up to %s (ctrl+c to stop)\n", opts.hold)
			gio.holdClipboard(ctx, opts.hold)
		}
	}

	return nil
}

// readEmail reads the original email from path, or from in when path is empty
func readEmail(path string, in io.Reader) (string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("error reading %s: %w", path, err)
		}
		return string(data), nil
	}
	if in == nil {
		return "", nil
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("error reading stdin: %w", err)
	}
	return string(data), nil
}
