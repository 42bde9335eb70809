// todoctl is a terminal front-end for the todo API server. It drives
// the same sync controller a UI would: list with filters, add, toggle,
// delete, and the summarize-and-notify workflow.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Aditya-2aga/todo-assistant/internal/client"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var serverURL string

	cmd := &cobra.Command{
		Use:           "todoctl",
		Short:         "Manage todos and post summaries to Slack",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8080", "todo API server base URL")

	controller := func() *client.Controller {
		return client.NewController(client.New(serverURL))
	}

	var filter string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List todos",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := controller()
			if err := ctrl.Refresh(cmd.Context()); err != nil {
				return err
			}
			ctrl.SetFilter(client.Filter(filter))
			printList(ctrl)
			return nil
		},
	}
	listCmd.Flags().StringVar(&filter, "filter", "all", "all, active or completed")

	addCmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a todo",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := controller()
			if err := ctrl.Add(cmd.Context(), strings.Join(args, " ")); err != nil {
				return err
			}
			printList(ctrl)
			return nil
		},
	}

	doneCmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a todo's completed flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}
			ctrl := controller()
			if err := ctrl.Refresh(cmd.Context()); err != nil {
				return err
			}
			if err := ctrl.Toggle(cmd.Context(), id); err != nil {
				return err
			}
			printList(ctrl)
			return nil
		},
	}

	rmCmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}
			ctrl := controller()
			if err := ctrl.Refresh(cmd.Context()); err != nil {
				return err
			}
			if err := ctrl.Remove(cmd.Context(), id); err != nil {
				return err
			}
			printList(ctrl)
			return nil
		},
	}

	summarizeCmd := &cobra.Command{
		Use:   "summarize",
		Short: "Summarize pending todos and post the result to Slack",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := controller()
			out, err := ctrl.Summarize(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Println(out.Message)
			fmt.Println()
			fmt.Println(out.Summary)
			if !out.SlackSent {
				fmt.Println()
				fmt.Println("(the summary was not posted to Slack)")
			}
			return nil
		},
	}

	cmd.AddCommand(listCmd, addCmd, doneCmd, rmCmd, summarizeCmd)
	return cmd
}

func printList(ctrl *client.Controller) {
	items := ctrl.Visible()
	if len(items) == 0 {
		fmt.Println("No todos.")
		return
	}
	for _, it := range items {
		mark := " "
		if it.Completed {
			mark = "x"
		}
		fmt.Printf("[%s] %4d  %s\n", mark, it.ID, it.Title)
	}
	fmt.Printf("\n%d item(s) left\n", ctrl.ActiveCount())
}
