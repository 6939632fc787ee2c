package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"cfcs/internal/config"
	"cfcs/internal/report"
)

var (
	shareURL     string
	shareTarget  string
	shareEncoded bool
	shareLink    bool
)

// shareCmd represents the share command.
var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Print the share message for messaging apps",
	Long: `Print the plain-text snapshot that the viewer shares. With --encoded the
text is percent-encoded for a URL query, with --link the full deep link
for --target is printed instead.

--url and --target default to VIEWER_URL and SHARE_TARGET.`,
	RunE: runShare,
}

func init() {
	shareCmd.Flags().StringVar(&shareURL, "url", "", "viewer URL appended to the message")
	shareCmd.Flags().StringVar(&shareTarget, "target", "", "whatsapp or telegram")
	shareCmd.Flags().BoolVar(&shareEncoded, "encoded", false, "print the URL-encoded text")
	shareCmd.Flags().BoolVar(&shareLink, "link", false, "print the deep link")
	shareCmd.MarkFlagsMutuallyExclusive("encoded", "link")
}

func runShare(cmd *cobra.Command, args []string) error {
	url, targetName := shareURL, shareTarget
	if url == "" || targetName == "" {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if url == "" {
			url = cfg.ViewerURL
		}
		if targetName == "" {
			targetName = cfg.ShareTarget
		}
	}
	target, err := report.ParseTarget(targetName)
	if err != nil {
		return err
	}

	ts, err := loadLedger()
	if err != nil {
		return err
	}
	msg, err := report.BuildShare(ts, now(), url, target)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch {
	case shareEncoded:
		fmt.Fprintln(out, msg.Encoded)
	case shareLink:
		fmt.Fprintln(out, msg.Link)
	default:
		fmt.Fprintln(out, msg.Text)
	}
	return nil
}
