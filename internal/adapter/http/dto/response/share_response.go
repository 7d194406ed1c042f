package response

// ShareLinkResponse carries a prefilled wa.me or mailto URL; the client
// opens it, nothing is sent server-side.
type ShareLinkResponse struct {
	URL string `json:"url"`
}
