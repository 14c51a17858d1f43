package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/bornholm/mustdo/internal/http/handler/common"
	"github.com/pkg/errors"
)

const apiPrefix = "/api"

func (c *Client) request(ctx context.Context, method string, path string, header http.Header, body io.Reader, result io.Writer) error {
	url, err := url.Parse(path)
	if err != nil {
		return errors.WithStack(err)
	}

	url.Scheme = c.baseURL.Scheme
	url.Host = c.baseURL.Host
	url.User = c.baseURL.User
	url.Path = c.baseURL.JoinPath(apiPrefix, url.Path).Path

	slog.DebugContext(ctx, "new client request",
		slog.String("method", method),
		slog.String("path", url.Path),
		slog.String("host", url.Host),
	)

	req, err := http.NewRequestWithContext(ctx, method, url.String(), body)
	if err != nil {
		return errors.WithStack(err)
	}

	for k, v := range header {
		req.Header[k] = v
	}

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return errors.WithStack(ctxErr)
		}

		return errors.Wrap(ErrTransient, err.Error())
	}

	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusBadRequest {
		var errRes common.ErrorResponse

		data, _ := io.ReadAll(io.LimitReader(res.Body, 1<<16))
		if err := json.Unmarshal(data, &errRes); err != nil {
			slog.DebugContext(ctx, "could not decode error response", slog.Int("status", res.StatusCode), slog.String("body", string(data)))
		}

		return errors.WithStack(newResponseError(res.StatusCode, errRes))
	}

	if result == nil {
		return nil
	}

	if _, err := io.Copy(result, res.Body); err != nil {
		return errors.Wrap(ErrTransient, err.Error())
	}

	return nil
}

func (c *Client) jsonRequest(ctx context.Context, method string, path string, payload any, result any) error {
	var body io.Reader

	header := http.Header{}
	header.Set("Accept", "application/json")

	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return errors.WithStack(err)
		}

		body = bytes.NewReader(data)
		header.Set("Content-Type", "application/json")
	}

	var buff bytes.Buffer

	if err := c.request(ctx, method, path, header, body, &buff); err != nil {
		return errors.WithStack(err)
	}

	if result == nil {
		return nil
	}

	if err := json.Unmarshal(buff.Bytes(), result); err != nil {
		return errors.Wrap(ErrTransient, err.Error())
	}

	return nil
}
