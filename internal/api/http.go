package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/amishk599/jobdesk/internal/model"
)

// maxErrorBody caps how much of an error response is kept in HTTPError.
const maxErrorBody = 512

// checkStatus converts a non-2xx response into a *model.HTTPError carrying
// the start of the response body.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return &model.HTTPError{
		StatusCode: resp.StatusCode,
		Err:        fmt.Errorf("unexpected status: %s", msg),
	}
}

func isNotFound(err error) bool {
	var httpErr *model.HTTPError
	return errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound
}
