package api

import "context"

// costResponse is the wire shape of the cost endpoint. Exactly one of the
// two fields is populated; a usable cost never co-occurs with an error.
type costResponse struct {
	Cost  string `json:"cost"`
	Error string `json:"error"`
}

// EstimateCost asks the backend what a generation run for this repository
// would cost. A message the backend reports (repository too large, key
// required) comes back as *BackendError so callers can surface it verbatim.
func (c *Client) EstimateCost(ctx context.Context, genReq GenerateRequest) (string, error) {
	var resp costResponse
	if err := c.postJSON(ctx, "/generate/cost", genReq, &resp); err != nil {
		return "", err
	}
	if resp.Error != "" {
		return "", &BackendError{Message: resp.Error}
	}
	return resp.Cost, nil
}
