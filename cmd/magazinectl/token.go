package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"magazine-press/internal/config"
	"magazine-press/internal/handler/http/auth"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue API bearer tokens",
	// tokens need only the signing secret, not the store
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
}

var tokenIssueCmd = &cobra.Command{
	Use:   "issue SUBJECT",
	Short: "Sign a token that allows writes through the HTTP API",
	Long: `Sign an HS256 token with the secret in JWT_SECRET.

The API only checks tokens on POST and PUT requests.`,
	Example: `  JWT_SECRET=... magazinectl token issue jane --role editor --ttl 24h`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		secret := config.GetEnvString("JWT_SECRET", "")
		if secret == "" {
			return errors.New("JWT_SECRET is not set")
		}
		role, _ := cmd.Flags().GetString("role")
		ttl, _ := cmd.Flags().GetDuration("ttl")

		tok, err := auth.IssueToken([]byte(secret), args[0], role, ttl)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), tok)
		return err
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.AddCommand(tokenIssueCmd)

	tokenIssueCmd.Flags().String("role", auth.RoleEditor, "token role: editor or admin")
	tokenIssueCmd.Flags().Duration("ttl", 24*time.Hour, "token lifetime")
}
