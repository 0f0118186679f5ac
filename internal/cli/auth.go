package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/mvidalg/taskdeck/internal/app"
	"github.com/mvidalg/taskdeck/internal/domain"
	"github.com/mvidalg/taskdeck/internal/usecase"
	"github.com/spf13/cobra"
)

// newLoginCommand creates the login command.
func newLoginCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Email    string
		Password string
		Code     string
	}

	cmd := &cobra.Command{
		Use:     "login",
		Short:   "Authenticate and store a session token",
		GroupID: groupAuth,
		Long: `Authenticate against the server and store the session token.

When the account has two-factor authentication enabled the first
attempt is answered with a challenge; re-run with --code.

Examples:
  taskdeck login --email dana@example.com
  taskdeck login --email dana@example.com --code 123456`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			password := opts.Password
			if password == "" {
				var err error
				password, err = promptLine(cmd, "Password: ")
				if err != nil {
					return err
				}
			}

			out, err := c.LoginUseCase().Execute(cmd.Context(), usecase.LoginInput{
				Email:    opts.Email,
				Password: password,
				MFACode:  opts.Code,
			})
			if err != nil {
				return err
			}

			if out.RequiresMFA {
				return errors.New("two-factor code required: re-run with --code <6 digits>")
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s <%s>\n", out.User.Name, out.User.Email)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Email, "email", "e", "", "Account email (required)")
	cmd.Flags().StringVarP(&opts.Password, "password", "p", "", "Password (prompted when omitted)")
	cmd.Flags().StringVar(&opts.Code, "code", "", "Two-factor code, when the account requires one")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

// newLogoutCommand creates the logout command.
func newLogoutCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "logout",
		Short:   "Discard the stored session token",
		GroupID: groupAuth,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := c.LogoutUseCase().Execute(cmd.Context(), usecase.LogoutInput{})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

// newRegisterCommand creates the register command.
func newRegisterCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Name     string
		Email    string
		Password string
	}

	cmd := &cobra.Command{
		Use:     "register",
		Short:   "Create an account and log in",
		GroupID: groupAuth,
		RunE: func(cmd *cobra.Command, _ []string) error {
			password := opts.Password
			if password == "" {
				var err error
				password, err = promptLine(cmd, "Password: ")
				if err != nil {
					return err
				}
			}

			check, _ := c.CheckPasswordUseCase().Execute(cmd.Context(), usecase.CheckPasswordInput{Password: password})
			if !check.AllValid {
				return fmt.Errorf("%w: needs %d+ characters with upper, lower, digit and one of %s",
					domain.ErrWeakPassword, domain.MinPasswordLength, domain.SpecialChars)
			}

			out, err := c.RegisterUseCase().Execute(cmd.Context(), usecase.RegisterInput{
				Name:     opts.Name,
				Email:    opts.Email,
				Password: password,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Account created, logged in as %s <%s>\n", out.User.Name, out.User.Email)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Name, "name", "n", "", "Display name (required)")
	cmd.Flags().StringVarP(&opts.Email, "email", "e", "", "Account email (required)")
	cmd.Flags().StringVarP(&opts.Password, "password", "p", "", "Password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

// newWhoamiCommand creates the whoami command.
func newWhoamiCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "whoami",
		Short:   "Show the identity behind the stored token",
		GroupID: groupAuth,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := resolveUser(cmd, c)
			if err != nil {
				return err
			}

			mfa := "disabled"
			if user.TwoFactorEnabled {
				mfa = "enabled"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>\nTwo-factor authentication: %s\n", user.Name, user.Email, mfa)
			return nil
		},
	}
}

// resolveUser validates the stored token and returns the identity behind it.
func resolveUser(cmd *cobra.Command, c *app.Container) (*domain.User, error) {
	out, err := c.ResolveIdentityUseCase().Execute(cmd.Context(), usecase.ResolveIdentityInput{})
	if err != nil {
		return nil, err
	}
	if out.User == nil {
		return nil, errors.New("not logged in: run 'taskdeck login' first")
	}
	return out.User, nil
}

// promptLine reads a single line from the command's input stream.
func promptLine(cmd *cobra.Command, prompt string) (string, error) {
	_, _ = fmt.Fprint(cmd.OutOrStdout(), prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
