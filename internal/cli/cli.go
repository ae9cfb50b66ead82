// Package cli wires the login, sign-up and survey listing use cases into
// cobra commands.
package cli

import (
	"context"
	"fmt"
	"io"

	authvalidator "survey_client/internal/auth/validator"
	"survey_client/internal/domain"
	"survey_client/internal/session"
	"survey_client/platform/logger"
	"survey_client/platform/sanitize"

	"github.com/spf13/cobra"
)

const surveyDateLayout = "02 Jan 2006"

// Deps are the collaborators the commands run against.
type Deps struct {
	Authentication domain.Authentication
	AddAccount     domain.AddAccount
	Surveys        domain.LoadSurveyList
	Account        *session.CurrentAccount
	Prompter       Prompter
	Log            *logger.Logger
}

// NewRootCommand builds the survey command tree.
func NewRootCommand(deps Deps) *cobra.Command {
	if deps.Log == nil {
		deps.Log = logger.Discard()
	}
	// Overlapping logins with the same credentials share one request.
	deps.Authentication = session.NewDedup(deps.Authentication)

	root := &cobra.Command{
		Use:           "survey",
		Short:         "Sign in and browse surveys",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newLoginCommand(deps),
		newSignUpCommand(deps),
		newSurveysCommand(deps),
		newLogoutCommand(deps),
	)
	return root
}

func commandContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, logger.CommandKey, cmd.Name())
}

func newLoginCommand(deps Deps) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with email and password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := commandContext(cmd)
			log := deps.Log.WithContext(ctx)

			form, err := collectForm(ctx, deps.Prompter, authvalidator.Login(), []formField{
				{Name: "email", Message: "Email", Preset: email},
				{Name: "password", Message: "Password", Secret: true, Preset: password},
			})
			if err != nil {
				return err
			}

			account, err := deps.Authentication.Auth(ctx, domain.AuthenticationParams{
				Email:    form.Get("email"),
				Password: form.Get("password"),
			})
			if err != nil {
				log.Debug("login failed", "kind", domain.GetKind(err).String(), "error", err)
				return err
			}

			if err := deps.Account.Save(ctx, account); err != nil {
				return fmt.Errorf("save account: %w", err)
			}
			printWelcome(cmd.OutOrStdout(), account)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	return cmd
}

func newSignUpCommand(deps Deps) *cobra.Command {
	var name, email, password, confirmation string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := commandContext(cmd)
			log := deps.Log.WithContext(ctx)

			form, err := collectForm(ctx, deps.Prompter, authvalidator.SignUp(), []formField{
				{Name: "name", Message: "Name", Preset: name},
				{Name: "email", Message: "Email", Preset: email},
				{Name: "password", Message: "Password", Secret: true, Preset: password},
				{Name: "passwordConfirmation", Message: "Confirm password", Secret: true, Preset: confirmation},
			})
			if err != nil {
				return err
			}

			account, err := deps.AddAccount.Add(ctx, domain.AddAccountParams{
				Name:                 form.Get("name"),
				Email:                form.Get("email"),
				Password:             form.Get("password"),
				PasswordConfirmation: form.Get("passwordConfirmation"),
			})
			if err != nil {
				log.Debug("sign-up failed", "kind", domain.GetKind(err).String(), "error", err)
				return err
			}

			if err := deps.Account.Save(ctx, account); err != nil {
				return fmt.Errorf("save account: %w", err)
			}
			printWelcome(cmd.OutOrStdout(), account)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.Flags().StringVar(&confirmation, "password-confirmation", "", "repeat the password")
	return cmd
}

func newSurveysCommand(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "surveys",
		Short: "List the surveys of the signed-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := commandContext(cmd)

			surveys, err := deps.Surveys.LoadAll(ctx)
			if err != nil {
				deps.Log.WithContext(ctx).Debug("load surveys failed", "error", err)
				return err
			}
			printSurveys(cmd.OutOrStdout(), surveys)
			return nil
		},
	}
}

func newLogoutCommand(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the signed-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := deps.Account.Clear(commandContext(cmd)); err != nil {
				return fmt.Errorf("clear account: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "signed out")
			return nil
		},
	}
}

func printWelcome(w io.Writer, account domain.AccountModel) {
	if account.Name == "" {
		fmt.Fprintln(w, "signed in")
		return
	}
	fmt.Fprintf(w, "signed in as %s\n", sanitize.Text(account.Name))
}

func printSurveys(w io.Writer, surveys []domain.SurveyModel) {
	if len(surveys) == 0 {
		fmt.Fprintln(w, "no surveys yet")
		return
	}

	for _, survey := range surveys {
		mark := " "
		if survey.DidAnswer {
			mark = "x"
		}
		fmt.Fprintf(w, "[%s] %s  %s\n", mark, survey.Date.Format(surveyDateLayout), sanitize.Text(survey.Question))
		for _, answer := range survey.Answers {
			fmt.Fprintf(w, "      - %s\n", sanitize.Text(answer.Answer))
		}
	}
}
