package main

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formkit/pkg/config"
	"github.com/dmitrymomot/formkit/pkg/contact"
	"github.com/dmitrymomot/formkit/pkg/contact/client"
)

var errSubmissionFailed = errors.New("submission failed")

func submitCmd() *cobra.Command {
	var (
		endpoint    string
		timeout     time.Duration
		messageFile string
		s           contact.Submission
	)

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Validate a submission locally and post it to an endpoint",
		Long: `Validate, sanitize and rate-limit a submission locally, then post it to
a formkit endpoint. The JSON result is printed to stdout; the exit code is
non-zero unless the submission was accepted.

Example:
  formkit submit --endpoint http://localhost:8080/api/send-email \
    --name "Jane Doe" --email jane@example.com --project-type Website \
    --budget '$5k' --timeline "1 month" --message-file message.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if messageFile != "" {
				msg, err := readMessage(cmd.InOrStdin(), messageFile)
				if err != nil {
					return err
				}
				s.Message = msg
			}

			var appCfg appConfig
			if err := config.Load(&appCfg); err != nil {
				return err
			}

			c, err := client.New(endpoint,
				client.WithTimeout(timeout),
				client.WithLogger(newLogger(appCfg, cmd.ErrOrStderr())),
			)
			if err != nil {
				return err
			}

			res := c.Submit(cmd.Context(), s)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(res); err != nil {
				return err
			}
			if !res.Success {
				return errSubmissionFailed
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&endpoint, "endpoint", envOr("FORMKIT_ENDPOINT", "http://localhost:8080/api/send-email"), "contact endpoint URL")
	f.DurationVar(&timeout, "timeout", client.DefaultTimeout, "request timeout")
	f.StringVar(&s.Name, "name", "", "full name")
	f.StringVar(&s.Email, "email", "", "reply address")
	f.StringVar(&s.Phone, "phone", "", "phone number")
	f.StringVar(&s.Company, "company", "", "company")
	f.StringVar(&s.ProjectType, "project-type", "", "project type")
	f.StringVar(&s.Budget, "budget", "", "budget range")
	f.StringVar(&s.Timeline, "timeline", "", "timeline")
	f.StringVar(&s.Message, "message", "", "message text")
	f.StringVar(&messageFile, "message-file", "", `read the message from a file, "-" for stdin`)
	cmd.MarkFlagsMutuallyExclusive("message", "message-file")

	return cmd
}

func readMessage(stdin io.Reader, path string) (string, error) {
	var (
		b   []byte
		err error
	)
	if path == "-" {
		b, err = io.ReadAll(io.LimitReader(stdin, 1<<20))
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
