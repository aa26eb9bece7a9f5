package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cloudlift-io/cloudlift-client/pkg/cloudlift"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewAppsCommand creates the apps command group
func NewAppsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "apps",
		Aliases: []string{"app", "applications"},
		Short:   "Manage applications",
		Long:    "List, deploy, and control hosted applications",
	}

	cmd.AddCommand(newAppsListCommand())
	cmd.AddCommand(newAppsGetCommand())
	cmd.AddCommand(newAppsLogsCommand())
	cmd.AddCommand(newAppsStatsCommand())
	cmd.AddCommand(newAppsUploadCommand())
	cmd.AddCommand(newAppsActionCommand("start", "Start an application"))
	cmd.AddCommand(newAppsActionCommand("stop", "Stop an application"))
	cmd.AddCommand(newAppsActionCommand("restart", "Restart an application"))
	cmd.AddCommand(newAppsActionCommand("rebuild", "Rebuild an application from its last deployment"))
	cmd.AddCommand(newAppsDeleteCommand())

	return cmd
}

func newAppsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List applications",
		Long:  "List all applications the token has access to",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			apps, err := client.Apps().List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list applications: %w", err)
			}

			if done, err := renderStructured(apps); done {
				return err
			}

			if len(apps) == 0 {
				fmt.Println("No applications found")
				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Name", "Status", "Created", "Updated")

			for _, app := range apps {
				created := ""
				if !app.CreatedAt.IsZero() {
					created = app.CreatedAt.Format("2006-01-02 15:04:05")
				}

				updated := ""
				if !app.UpdatedAt.IsZero() {
					updated = app.UpdatedAt.Format("2006-01-02 15:04:05")
				}

				_ = table.Append(app.ID, app.Name, string(app.Status), created, updated)
			}

			return table.Render()
		},
	}
}

func newAppsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get APP_ID",
		Short: "Show an application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			app, err := client.Apps().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get application: %w", err)
			}

			return renderApp(app)
		},
	}
}

func newAppsLogsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logs APP_ID",
		Short: "Show recent application logs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			logs, err := client.Apps().Logs(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get logs: %w", err)
			}

			if done, err := renderStructured(logs); done {
				return err
			}

			fmt.Println(logs.Logs)

			return nil
		},
	}
}

func newAppsStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats APP_ID",
		Short: "Show application resource usage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			stats, err := client.Apps().Stats(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get stats: %w", err)
			}

			if done, err := renderStructured(stats); done {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Metric", "Value")
			_ = table.Append("CPU", fmt.Sprintf("%.1f%%", stats.CPU))
			_ = table.Append("Memory", strconv.FormatFloat(stats.Memory, 'f', -1, 64))
			_ = table.Append("Network In", strconv.FormatFloat(stats.Network.In, 'f', -1, 64))
			_ = table.Append("Network Out", strconv.FormatFloat(stats.Network.Out, 'f', -1, 64))

			if stats.Uptime != nil {
				_ = table.Append("Uptime", strconv.FormatInt(*stats.Uptime, 10))
			}

			return table.Render()
		},
	}
}

func newAppsUploadCommand() *cobra.Command {
	var (
		name   string
		fields []string
	)

	cmd := &cobra.Command{
		Use:   "upload ARCHIVE",
		Short: "Deploy a new application archive",
		Long:  "Upload a deployment archive (zip) and create or update an application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			archive := filepath.Clean(args[0])

			data, err := os.ReadFile(archive)
			if err != nil {
				return fmt.Errorf("reading archive: %w", err)
			}

			extra := make(map[string]string)
			for _, field := range fields {
				key, value, ok := strings.Cut(field, "=")
				if !ok {
					return fmt.Errorf("invalid field %q, expected key=value", field)
				}

				extra[key] = value
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			app, err := client.Apps().Upload(context.Background(), &cloudlift.UploadRequest{
				File:     data,
				FileName: filepath.Base(archive),
				Name:     name,
				Extra:    extra,
			})
			if err != nil {
				return fmt.Errorf("failed to upload application: %w", err)
			}

			fmt.Printf("Deployed application %s (%s)\n", app.Name, app.ID)

			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "display name for the application")
	cmd.Flags().StringArrayVarP(&fields, "field", "f", nil, "additional form field (key=value), repeatable")

	return cmd
}

func newAppsActionCommand(action, short string) *cobra.Command {
	return &cobra.Command{
		Use:   action + " APP_ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			apps := client.Apps()
			ctx := context.Background()

			var app *cloudlift.App

			switch action {
			case "start":
				app, err = apps.Start(ctx, args[0])
			case "stop":
				app, err = apps.Stop(ctx, args[0])
			case "restart":
				app, err = apps.Restart(ctx, args[0])
			case "rebuild":
				app, err = apps.Rebuild(ctx, args[0])
			}

			if err != nil {
				return fmt.Errorf("failed to %s application: %w", action, err)
			}

			fmt.Printf("Application %s is now %s\n", app.ID, app.Status)

			return nil
		},
	}
}

func newAppsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete APP_ID",
		Short: "Delete an application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				fmt.Printf("Really delete application %s? (y/N): ", args[0])

				var answer string

				_, _ = fmt.Scanln(&answer)

				if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
					fmt.Println("Aborted")
					return nil
				}
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			result, err := client.Apps().Delete(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete application: %w", err)
			}

			if !result.Success {
				return fmt.Errorf("platform did not acknowledge deletion of %s", args[0])
			}

			fmt.Printf("Deleted application %s\n", args[0])

			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "skip the confirmation prompt")

	return cmd
}

// renderApp prints one application in the active output format.
func renderApp(app *cloudlift.App) error {
	if done, err := renderStructured(app); done {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")
	_ = table.Append("ID", app.ID)
	_ = table.Append("Name", app.Name)
	_ = table.Append("Status", string(app.Status))

	if !app.CreatedAt.IsZero() {
		_ = table.Append("Created", app.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	if !app.UpdatedAt.IsZero() {
		_ = table.Append("Updated", app.UpdatedAt.Format("2006-01-02 15:04:05"))
	}

	for key, value := range app.Extra {
		_ = table.Append(key, fmt.Sprintf("%v", value))
	}

	return table.Render()
}
