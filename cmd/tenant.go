// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/http"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/punchpoint/timeclock-service/internal/types"
)

var httpEndpoint string

var tenantCmd = &cobra.Command{
	Use:   "tenant",
	Short: "Manage tenants",
}

var createTenantCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new tenant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, _ := cmd.Flags().GetString("plan")

		tenant := new(types.Tenant)
		err := newAdminClient(httpEndpoint).do(cmd.Context(), http.MethodPost, "/api/v0/tenants",
			map[string]string{"name": args[0], "plan": plan}, tenant)
		if err != nil {
			return fmt.Errorf("failed to create tenant: %w", err)
		}

		fmt.Printf("Tenant created: %s (ID: %s)\n", tenant.Name, tenant.ID)
		fmt.Printf("Kiosk join token: %s\n", tenant.JoinToken)
		return nil
	},
}

var listTenantsCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tenants",
	RunE: func(cmd *cobra.Command, args []string) error {
		var tenants []*types.Tenant
		err := newAdminClient(httpEndpoint).do(cmd.Context(), http.MethodGet, "/api/v0/tenants", nil, &tenants)
		if err != nil {
			return fmt.Errorf("failed to list tenants: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tPLAN\tCREATED_AT")
		for _, t := range tenants {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.ID, t.Name, t.Plan, t.CreatedAt)
		}
		w.Flush()
		return nil
	},
}

var deleteTenantCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a tenant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		err := newAdminClient(httpEndpoint).do(cmd.Context(), http.MethodDelete, "/api/v0/tenants/"+args[0], nil, nil)
		if err != nil {
			return fmt.Errorf("failed to delete tenant: %w", err)
		}

		fmt.Printf("Tenant deleted: %s\n", args[0])
		return nil
	},
}

var rotateJoinTokenCmd = &cobra.Command{
	Use:   "rotate-token [id]",
	Short: "Rotate a tenant's kiosk join token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := map[string]string{}
		err := newAdminClient(httpEndpoint).do(cmd.Context(), http.MethodPost, "/api/v0/tenants/"+args[0]+"/join-token", nil, &out)
		if err != nil {
			return fmt.Errorf("failed to rotate join token: %w", err)
		}

		fmt.Printf("New join token: %s\n", out["join_token"])
		return nil
	},
}

var listWorkersCmd = &cobra.Command{
	Use:   "workers [id]",
	Short: "List a tenant's roster",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var workers []*types.Worker
		err := newAdminClient(httpEndpoint).do(cmd.Context(), http.MethodGet, "/api/v0/tenants/"+args[0]+"/workers", nil, &workers)
		if err != nil {
			return fmt.Errorf("failed to list workers: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tROLE\tFLOATING\tDEVICE_BOUND")
		for _, worker := range workers {
			fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%t\n", worker.ID, worker.Name, worker.Role, worker.Floating, worker.DeviceToken != nil)
		}
		w.Flush()
		return nil
	},
}

func init() {
	tenantCmd.PersistentFlags().StringVar(&httpEndpoint, "http-endpoint", "http://localhost:8080", "HTTP server endpoint")
	createTenantCmd.Flags().String("plan", string(types.PlanFree), "Subscription plan (Free or Pro)")

	tenantCmd.AddCommand(createTenantCmd)
	tenantCmd.AddCommand(listTenantsCmd)
	tenantCmd.AddCommand(deleteTenantCmd)
	tenantCmd.AddCommand(rotateJoinTokenCmd)
	tenantCmd.AddCommand(listWorkersCmd)

	rootCmd.AddCommand(tenantCmd)
}
