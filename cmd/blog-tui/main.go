// Command blog-tui is a terminal browser for a running blog server.
package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var (
		addr    string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:          "blog-tui",
		Short:        "Browse blogs on a blog server",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := tea.NewProgram(initialModel(newClient(addr, timeout)))
			_, err := p.Run()
			return err
		},
	}

	defaultAddr := os.Getenv("BLOG_SERVER_URL")
	if defaultAddr == "" {
		defaultAddr = "http://127.0.0.1:8000"
	}
	cmd.Flags().StringVarP(&addr, "addr", "a", defaultAddr, "base URL of the blog server")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "HTTP request timeout")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
