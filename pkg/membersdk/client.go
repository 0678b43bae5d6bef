package membersdk

import (
	"net/http"
	"strings"
	"time"
)

// Client talks to the public endpoints of the membership service and hands
// out Admin and Member handles for the gated ones.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Admin returns a handle that authenticates with the admin secret.
func (c *Client) Admin(secret string) *Admin {
	return &Admin{client: c, secret: secret}
}

// Member returns a handle that authenticates with a member token, as
// returned by Register.
func (c *Client) Member(accessToken string) *Member {
	return &Member{client: c, token: accessToken}
}

// Admin performs operations gated by the admin secret.
type Admin struct {
	client *Client
	secret string
}

// Member performs operations as one member.
type Member struct {
	client *Client
	token  string
}
