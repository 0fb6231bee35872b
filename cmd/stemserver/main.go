// Stemserver answers one line of text per TCP connection with the stem of
// every word on the line, or acts as an interactive client for such a server
package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/lingproj/metatype/meta"
	"github.com/lingproj/metatype/process"
	"github.com/spf13/cobra"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if err := New().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func New() *cobra.Command {
	var port int
	var charset, host string
	var client bool

	cmd := &cobra.Command{
		Use:   `stemserver --port <port> [--client]`,
		Short: `Serve stems of whitespace separated words over TCP`,
		Long: `Stemserver reads a single line from each connection and answers with one
word/stem pair per word before it closes the connection. Words may carry a
part of speech tag after their last slash. With --client the command instead
reads lines from stdin and lets the server stem them.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if client {
				return process.RunClient(host, port, os.Stdin, os.Stdout, os.Stderr)
			}
			return meta.Try(func() error {
				meta.Set(`process.port`, port)
				meta.Set(`process.charset`, charset)
				srv := process.NewServer(func(word, _ string) string {
					return strings.ToLower(word)
				}, meta.NewStdLogger())
				return srv.Serve(cmd.Context())
			})
		},
	}
	fs := cmd.Flags()
	fs.IntVar(&port, `port`, 0, `TCP port to serve on or connect to`)
	fs.StringVar(&charset, `charset`, `utf-8`, `character set of the socket streams`)
	fs.BoolVar(&client, `client`, false, `run an interactive client instead of the server`)
	fs.StringVar(&host, `host`, `localhost`, `host to connect to in client mode`)
	_ = cmd.MarkFlagRequired(`port`)
	return cmd
}
