// Command hopwire fetches a URL over HTTP/1.1 with a fresh connection per
// hop, printing the terminal response body to stdout.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/avaserth/hopwire"
)

var (
	flagMethod       string
	flagHeaders      []string
	flagQuery        []string
	flagNoFollow     bool
	flagMaxRedirects int
	flagVerbose      bool
	flagInclude      bool
)

var rootCmd = &cobra.Command{
	Use:          "hopwire [flags] URL",
	Short:        "fetch a URL over HTTP/1.1, following redirects",
	Args:         cobra.ExactArgs(1),
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&flagMethod, "method", "X", "GET", "request method")
	f.StringArrayVarP(&flagHeaders, "header", "H", nil, "request header as name:value, repeatable")
	f.StringArrayVarP(&flagQuery, "query", "q", nil, "query pair as key=value, repeatable")
	f.BoolVar(&flagNoFollow, "no-follow", false, "return 3xx responses instead of following them")
	f.IntVar(&flagMaxRedirects, "max-redirects", hopwire.DefaultMaxRedirects, "redirect cap for one fetch")
	f.BoolVarP(&flagVerbose, "verbose", "v", false, "log every hop to stderr")
	f.BoolVarP(&flagInclude, "include", "i", false, "print response status and headers to stderr")
}

func run(cmd *cobra.Command, args []string) error {
	req, err := hopwire.NewRequest(args[0])
	if err != nil {
		return err
	}
	req.SetMethod(strings.ToUpper(flagMethod))
	req.SetFollowRedirects(!flagNoFollow)
	for _, h := range flagHeaders {
		name, value, ok := strings.Cut(h, ":")
		if !ok {
			return fmt.Errorf("malformed header %q, want name:value", h)
		}
		if err := req.AppendHeader(strings.TrimSpace(name), strings.TrimSpace(value)); err != nil {
			return err
		}
	}
	for _, q := range flagQuery {
		key, value, _ := strings.Cut(q, "=")
		req.AddQueryParam(key, value)
	}

	cl := &hopwire.Client{MaxRedirects: flagMaxRedirects}
	if flagVerbose {
		cl.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
	resp, err := cl.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if flagInclude {
		statusColor := color.New(color.FgGreen)
		switch {
		case resp.StatusCode >= 500:
			statusColor = color.New(color.FgRed)
		case resp.StatusCode >= 400:
			statusColor = color.New(color.FgYellow)
		case resp.StatusCode >= 300:
			statusColor = color.New(color.FgCyan)
		}
		statusColor.Fprintf(os.Stderr, "%s %s\n", resp.Proto, resp.Status)
		for name, values := range resp.Header {
			for _, v := range values {
				fmt.Fprintf(os.Stderr, "%s: %s\n", name, v)
			}
		}
		fmt.Fprintln(os.Stderr)
	}
	_, err = io.Copy(os.Stdout, resp.TextReader())
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
