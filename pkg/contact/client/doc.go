// Package client submits contact forms to a remote formkit endpoint.
//
// The client runs the full contact pipeline locally before any network call:
// admission keyed by the submitter's normalized email, field validation and
// sanitization. Only a submission that passes is posted, as JSON, to the
// endpoint, which repeats every check itself.
//
//	c, err := client.New("https://example.com/api/send-email")
//	if err != nil {
//	    return err
//	}
//	res := c.Submit(ctx, contact.Submission{...})
//	if !res.Success {
//	    fmt.Println(res.Message)
//	}
//
// When the endpoint rejects a submission its Result is returned as is, with
// Outcome derived from the response status and RetryAfter from the
// Retry-After header.
package client
