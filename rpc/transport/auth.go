package transport

import "encoding/base64"

// basicAuthHeader renders the value of an HTTP Basic Authorization header,
// matching the encoding net/http uses internally for Request.SetBasicAuth.
func basicAuthHeader(username, password string) string {
	auth := username + ":" + password
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(auth))
}
