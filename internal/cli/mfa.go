package cli

import (
	"fmt"
	"strings"

	"github.com/mdp/qrterminal/v3"
	"github.com/mvidalg/taskdeck/internal/app"
	"github.com/mvidalg/taskdeck/internal/domain"
	"github.com/mvidalg/taskdeck/internal/usecase"
	"github.com/spf13/cobra"
)

// newMFACommand creates the mfa parent command.
func newMFACommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "mfa",
		Short:   "Manage two-factor authentication",
		GroupID: groupAuth,
	}

	cmd.AddCommand(
		newMFASetupCommand(c),
		newMFAEnableCommand(c),
		newMFADisableCommand(c),
	)

	return cmd
}

// newMFASetupCommand creates the mfa setup command.
func newMFASetupCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Request an enrollment secret and print the QR code",
		Long: `Request a new two-factor enrollment secret. Scan the QR code with an
authenticator app, or enter the secret manually, then confirm with
'taskdeck mfa enable --code <code>'.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := resolveUser(cmd, c); err != nil {
				return err
			}

			out, err := c.SetupMFAUseCase().Execute(cmd.Context(), usecase.SetupMFAInput{})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if strings.HasPrefix(out.Enrollment.QRCode, "otpauth://") {
				qrterminal.GenerateWithConfig(out.Enrollment.QRCode, qrterminal.Config{
					Level:      qrterminal.L,
					Writer:     w,
					HalfBlocks: true,
				})
				_, _ = fmt.Fprintln(w)
			}
			_, _ = fmt.Fprintf(w, "Secret: %s\n", out.Enrollment.Secret)
			_, _ = fmt.Fprintln(w, "Confirm with: taskdeck mfa enable --code <6 digits>")
			return nil
		},
	}
}

// newMFAEnableCommand creates the mfa enable command.
func newMFAEnableCommand(c *app.Container) *cobra.Command {
	var code string

	cmd := &cobra.Command{
		Use:   "enable",
		Short: "Confirm enrollment with a code from your authenticator app",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !usecase.ValidMFACode(code) {
				return fmt.Errorf("--code: %w", domain.ErrInvalidMFACode)
			}

			if _, err := c.EnableMFAUseCase().Execute(cmd.Context(), usecase.EnableMFAInput{Code: code}); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Two-factor authentication enabled")
			return nil
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "Six-digit code (required)")
	_ = cmd.MarkFlagRequired("code")

	return cmd
}

// newMFADisableCommand creates the mfa disable command.
func newMFADisableCommand(c *app.Container) *cobra.Command {
	var code string

	cmd := &cobra.Command{
		Use:   "disable",
		Short: "Turn two-factor authentication off",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !usecase.ValidMFACode(code) {
				return fmt.Errorf("--code: %w", domain.ErrInvalidMFACode)
			}

			if _, err := c.DisableMFAUseCase().Execute(cmd.Context(), usecase.DisableMFAInput{Code: code}); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Two-factor authentication disabled")
			return nil
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "Six-digit code (required)")
	_ = cmd.MarkFlagRequired("code")

	return cmd
}
