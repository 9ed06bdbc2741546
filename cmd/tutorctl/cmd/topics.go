package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/saulo-duarte/adaptive-tutor/internal/topic"
	"github.com/spf13/cobra"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List, remove, rename or clear topics",
}

var topicsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List topics with their content counts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := topicService(cmd.Context(), cmd)
		if err != nil {
			return err
		}
		topics, err := svc.List(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(topics) == 0 {
			fmt.Fprintln(out, "No topics found.")
			return nil
		}
		for _, t := range topics {
			fmt.Fprintf(out, "%s\n  Content items: %d\n  Added: %s (last %s)\n\n",
				t.Topic, t.Count, t.FirstAdded.Format("2006-01-02"), t.LastAdded.Format("2006-01-02"))
		}
		return nil
	},
}

var topicsRemoveCmd = &cobra.Command{
	Use:   "remove <topic>",
	Short: "Remove a topic with its chat and quiz history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirm(cmd, fmt.Sprintf("Remove topic %q and all related sessions?", args[0])) {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
		svc, err := topicService(cmd.Context(), cmd)
		if err != nil {
			return err
		}
		removed, err := svc.Remove(cmd.Context(), args[0])
		if errors.Is(err, topic.ErrTopicNotFound) {
			return fmt.Errorf("topic %q not found", args[0])
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %d content items, %d chat sessions, %d quiz sessions.\n",
			removed.ContentItems, removed.ChatSessions, removed.QuizSessions)
		return nil
	},
}

var topicsRenameCmd = &cobra.Command{
	Use:   "rename <old> <new>",
	Short: "Rename a topic everywhere it is referenced",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := topicService(cmd.Context(), cmd)
		if err != nil {
			return err
		}
		moved, err := svc.Rename(cmd.Context(), args[0], args[1])
		switch {
		case errors.Is(err, topic.ErrTopicNotFound):
			return fmt.Errorf("topic %q not found", args[0])
		case errors.Is(err, topic.ErrTopicExists):
			return fmt.Errorf("topic %q already exists, choose a different name", args[1])
		case err != nil:
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Renamed %q to %q (%d content items).\n", args[0], args[1], moved)
		return nil
	},
}

var topicsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete ALL tutor data",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirm(cmd, "This removes ALL content, chat and quiz data. Continue?") {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
		svc, err := topicService(cmd.Context(), cmd)
		if err != nil {
			return err
		}
		if err := svc.Clear(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "All data cleared.")
		return nil
	},
}

func confirm(cmd *cobra.Command, prompt string) bool {
	if force, _ := cmd.Flags().GetBool("force"); force {
		return true
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s (y/N): ", prompt)
	input, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func init() {
	topicsRemoveCmd.Flags().BoolP("force", "f", false, "Skip confirmation")
	topicsClearCmd.Flags().BoolP("force", "f", false, "Skip confirmation")

	topicsCmd.AddCommand(topicsListCmd, topicsRemoveCmd, topicsRenameCmd, topicsClearCmd)
}
