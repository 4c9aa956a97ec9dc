package main

import (
	"fmt"
	"strings"

	"github.com/retailbooks/daily_ledger_app/internal/core/domain"
	"github.com/retailbooks/daily_ledger_app/internal/utils"
	"github.com/spf13/cobra"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a development bearer token",
	Long: `Signs a JWT with JWT_SECRET/JWT_ISSUER carrying the given user, role and branch.
Employees must name a branch; administrators may omit it.`,
	Example: "  ledgerctl token --user cashier-1 --role EMPLOYEE --branch 1\n  ledgerctl token --user ops --role ADMIN",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		role, _ := cmd.Flags().GetString("role")
		branchID, _ := cmd.Flags().GetInt64("branch")
		expiry, _ := cmd.Flags().GetDuration("expiry")
		if expiry <= 0 {
			expiry = cfg.JWTExpiryDuration
		}

		caller := domain.CallerContext{UserID: userID, Role: domain.Role(strings.ToUpper(role)), BranchID: branchID}
		if !caller.Role.IsValid() {
			return fmt.Errorf("unknown role %q", role)
		}
		if !caller.IsAdmin() && caller.BranchID <= 0 {
			return fmt.Errorf("--branch is required for role %s", caller.Role)
		}
		token, err := utils.GenerateCallerToken(caller, cfg.JWTSecret, expiry, cfg.JWTIssuer)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.Flags().String("user", "", "User ID placed in the sub claim")
	tokenCmd.Flags().String("role", string(domain.RoleEmployee), "ADMIN or EMPLOYEE")
	tokenCmd.Flags().Int64("branch", 0, "Branch of an EMPLOYEE")
	tokenCmd.Flags().Duration("expiry", 0, "Token lifetime (defaults to JWT_EXPIRY_DURATION)")
	_ = tokenCmd.MarkFlagRequired("user")
}
