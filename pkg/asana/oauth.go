package asana

import "golang.org/x/oauth2"

// Endpoint is the Asana OAuth 2.0 endpoint, for use with oauth2.Config.
var Endpoint = oauth2.Endpoint{
	AuthURL:  "https://app.asana.com/-/oauth_authorize",
	TokenURL: "https://app.asana.com/-/oauth_token",
}
