package dnsdumpster

import "net/http"

const apiKeyHeader = "X-API-Key"

func setUserAgent(request *http.Request) {
	request.Header.Set("User-Agent", "dnsdumpster-cli github.com/qdm12/dnsdumpster")
}

func setAccept(request *http.Request, acceptContent string) {
	request.Header.Set("Accept", acceptContent)
}

func setAPIKey(request *http.Request, apiKey string) {
	request.Header.Set(apiKeyHeader, apiKey)
}
