// Package pluralkit looks up the human sender behind messages proxied
// through the PluralKit webhook bot.
package pluralkit

import (
	"net/http"
	"time"

	simplejson "github.com/bitly/go-simplejson"
	"github.com/disgoorg/snowflake/v2"
	"github.com/pkg/errors"

	"github.com/mirefield/discord-quote/integrations/custom_http"
)

const defaultBaseURL = "https://api.pluralkit.me"

type Client interface {
	// SenderOf returns the user id of the account a proxied message was
	// sent on behalf of. It fails when the message was not proxied or
	// the lookup itself errors; callers decide how to degrade.
	SenderOf(messageID snowflake.ID) (snowflake.ID, error)
}

type defaultClient struct {
	client custom_http.Client
}

var (
	client  Client
	baseURL = defaultBaseURL
	token   string
)

// Configure overrides the API base URL and token before the first
// GetClient call. Empty values keep the defaults.
func Configure(base string, tok string) {
	if base != "" {
		baseURL = base
	}
	token = tok
	client = nil
}

func GetClient() Client {
	if client == nil {
		client = makeClient()
	}
	return client
}

func makeClient() Client {
	headers := make(map[string]string)
	headers["accept"] = "application/json"
	headers["User-Agent"] = "discord-quote"
	if token != "" {
		headers["Authorization"] = token
	}
	var httpClient custom_http.Client = &custom_http.DefaultClient{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 10 * time.Second},
		Headers: headers,
	}

	return &defaultClient{
		client: httpClient,
	}
}

func (dc *defaultClient) SenderOf(messageID snowflake.ID) (snowflake.ID, error) {
	req, err := dc.client.GetRequest("/v2/messages/" + messageID.String())
	if err != nil {
		return 0, err
	}
	body, err := dc.client.Do(req)
	if err != nil {
		return 0, err
	}
	js, err := simplejson.NewJson(body)
	if err != nil {
		return 0, err
	}
	sender, err := js.Get("sender").String()
	if err != nil {
		return 0, errors.Wrapf(err, "no sender in proxy record of message %s", messageID)
	}
	return snowflake.Parse(sender)
}
