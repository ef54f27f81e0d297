package main

import (
	"errors"
	"fmt"

	"github.com/frontandrew/drivesure/internal/domain"
	"github.com/frontandrew/drivesure/internal/usecase/auth"
	"github.com/spf13/cobra"
)

func newRegisterCmd(get func() *app) *cobra.Command {
	req := &auth.RegisterRequest{}
	var role string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a driver or officer account",
		Example: `  drivesure register --name "Ada Obi" --email ada@example.com --password secret
  drivesure register --name "Sgt. Bello" --email bello@lastma.gov.ng --password secret --role officer`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			req.Role = domain.UserRole(role)

			fmt.Fprintln(cmd.OutOrStdout(), a.t("registering"))
			account, err := a.auth.Register(cmd.Context(), req)
			if err != nil {
				if errors.Is(err, domain.ErrUserAlreadyExists) {
					return errors.New(a.t("registerError"))
				}
				return err
			}

			// После регистрации пользователь сразу входит
			if err := a.auth.SetLoggedInUser(cmd.Context(), account); err != nil {
				return err
			}

			title(cmd.OutOrStdout(), a.t("registerTitle"))
			field(cmd.OutOrStdout(), a.t("name"), account.Name)
			field(cmd.OutOrStdout(), a.t("email"), account.Email)
			field(cmd.OutOrStdout(), a.t("role"), a.t(string(account.Role)))
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "full name")
	cmd.Flags().StringVar(&req.Email, "email", "", "email address")
	cmd.Flags().StringVar(&req.Password, "password", "", "password")
	cmd.Flags().StringVar(&role, "role", string(domain.RoleDriver), "driver or officer")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLoginCmd(get func() *app) *cobra.Command {
	req := &auth.LoginRequest{}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in on this device",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()

			fmt.Fprintln(cmd.OutOrStdout(), a.t("loggingIn"))
			resp, err := a.auth.Login(cmd.Context(), req)
			if err != nil {
				if errors.Is(err, domain.ErrInvalidCredentials) {
					return errors.New(a.t("loginError"))
				}
				return err
			}

			if err := a.auth.SetLoggedInUser(cmd.Context(), resp.User); err != nil {
				return err
			}

			title(cmd.OutOrStdout(), a.t("loginTitle"))
			field(cmd.OutOrStdout(), a.t("name"), resp.User.Name)
			field(cmd.OutOrStdout(), a.t("role"), a.t(string(resp.User.Role)))
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Email, "email", "", "email address")
	cmd.Flags().StringVar(&req.Password, "password", "", "password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCmd(get func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out on this device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			if err := a.auth.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.t("logout"))
			return nil
		},
	}
}

func newWhoamiCmd(get func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			account, err := a.currentAccount(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			field(out, a.t("name"), account.Name)
			field(out, a.t("email"), account.Email)
			field(out, a.t("role"), a.t(string(account.Role)))
			return nil
		},
	}
}
