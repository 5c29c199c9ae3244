// Package gmail implements mail.Provider over the Gmail API, read-only.
package gmail

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gmailapi "google.golang.org/api/gmail/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/joseph-ayodele/orders-tracker/internal/common"
	"github.com/joseph-ayodele/orders-tracker/internal/mail"
)

const pageSize = 100

// Client lists and fetches messages matching the configured search
// criteria. Credentials and token files follow the usual Gmail OAuth
// layout (credentials.json + token.json); acquiring the token is not
// this client's job.
type Client struct {
	svc    *gmailapi.Service
	cfg    common.MailConfig
	logger *slog.Logger
}

func NewClient(ctx context.Context, cfg common.MailConfig, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}
	credBytes, err := os.ReadFile(cfg.CredentialsFile)
	if err != nil {
		return nil, common.WrapError(err, "read credentials file")
	}
	oauthCfg, err := google.ConfigFromJSON(credBytes, gmailapi.GmailReadonlyScope)
	if err != nil {
		return nil, common.WrapError(err, "parse credentials file")
	}
	tok, err := tokenFromFile(cfg.TokenFile)
	if err != nil {
		return nil, common.WrapError(err, "load token file (run the OAuth flow first)")
	}
	svc, err := gmailapi.NewService(ctx, option.WithTokenSource(oauthCfg.TokenSource(ctx, tok)))
	if err != nil {
		return nil, common.WrapError(err, "create gmail service")
	}
	return &Client{svc: svc, cfg: cfg, logger: logger}, nil
}

func tokenFromFile(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tok := &oauth2.Token{}
	return tok, json.NewDecoder(f).Decode(tok)
}

// Query builds the Gmail search expression from the configured sender,
// subject keywords, and date bounds.
func (c *Client) Query() string {
	terms := []string{"from:" + c.cfg.Sender}
	if len(c.cfg.SubjectKeywords) > 0 {
		subj := make([]string, 0, len(c.cfg.SubjectKeywords))
		for _, kw := range c.cfg.SubjectKeywords {
			subj = append(subj, fmt.Sprintf("subject:%q", kw))
		}
		terms = append(terms, "("+strings.Join(subj, " OR ")+")")
	}
	if c.cfg.StartDate != "" {
		terms = append(terms, "after:"+c.cfg.StartDate)
	}
	if c.cfg.EndDate != "" {
		terms = append(terms, "before:"+c.cfg.EndDate)
	}
	return strings.Join(terms, " ")
}

// ListIDs pages through the search results, newest first, capped at the
// configured MaxMessages.
func (c *Client) ListIDs(ctx context.Context) ([]string, error) {
	query := c.Query()
	c.logger.Debug("gmail.list.start", "query", query)

	var ids []string
	pageToken := ""
	for {
		call := c.svc.Users.Messages.List("me").Q(query).MaxResults(pageSize).Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		resp, err := call.Do()
		if err != nil {
			return nil, classify(err)
		}
		for _, m := range resp.Messages {
			ids = append(ids, m.Id)
			if c.cfg.MaxMessages > 0 && int64(len(ids)) >= c.cfg.MaxMessages {
				return ids, nil
			}
		}
		if resp.NextPageToken == "" {
			return ids, nil
		}
		pageToken = resp.NextPageToken
	}
}

// Fetch resolves one message to headers plus a body string, preferring
// the text/html part over text/plain.
func (c *Client) Fetch(ctx context.Context, id string) (*mail.Message, error) {
	m, err := c.svc.Users.Messages.Get("me", id).Format("full").Context(ctx).Do()
	if err != nil {
		return nil, classify(err)
	}
	msg := &mail.Message{ID: id}
	if m.Payload != nil {
		for _, h := range m.Payload.Headers {
			switch strings.ToLower(h.Name) {
			case "subject":
				msg.Subject = h.Value
			case "from":
				msg.From = h.Value
			case "date":
				msg.Date = h.Value
			}
		}
		msg.Body = extractBody(m.Payload)
	}
	return msg, nil
}

// extractBody walks the MIME tree and returns the first text/html part,
// falling back to text/plain, then to the top-level body data.
func extractBody(p *gmailapi.MessagePart) string {
	if body := findPart(p, "text/html"); body != "" {
		return body
	}
	if body := findPart(p, "text/plain"); body != "" {
		return body
	}
	if p.Body != nil {
		return decodeBody(p.Body.Data)
	}
	return ""
}

func findPart(p *gmailapi.MessagePart, mimeType string) string {
	if p == nil {
		return ""
	}
	if strings.HasPrefix(p.MimeType, mimeType) && p.Body != nil && p.Body.Data != "" {
		return decodeBody(p.Body.Data)
	}
	for _, part := range p.Parts {
		if body := findPart(part, mimeType); body != "" {
			return body
		}
	}
	return ""
}

// decodeBody decodes Gmail's unpadded base64url payload encoding.
func decodeBody(data string) string {
	b, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(data, "="))
	if err != nil {
		return ""
	}
	return string(b)
}

// classify maps rate-limit and server-side API errors onto the
// transient sentinel so the retry layer knows to back off.
func classify(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && (gerr.Code == http.StatusTooManyRequests || gerr.Code >= 500) {
		return fmt.Errorf("%w: %v", common.ErrRateLimited, err)
	}
	return err
}
