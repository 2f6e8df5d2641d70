package transcriber

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"

	"github.com/airenas/groq-transcriber/internal/pkg/cmdapp"
	"github.com/airenas/groq-transcriber/internal/pkg/transcription"
	"github.com/airenas/groq-transcriber/internal/pkg/utils"
)

// DefaultURL is the Groq Cloud transcription endpoint
const DefaultURL = "https://api.groq.com/openai/v1/audio/transcriptions"

// Config is explicit client configuration, no ambient state
type Config struct {
	URL     string
	Key     string
	Model   transcription.Model
	Timeout time.Duration
}

// Client communicates with the Groq transcription service
type Client struct {
	httpclient *retryablehttp.Client
	url        string
	key        string
	model      transcription.Model
	timeout    time.Duration
}

// NewClient creates a transcriber client
func NewClient(cfg Config) (*Client, error) {
	res := Client{}
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	urlRes, err := url.Parse(cfg.URL)
	if err != nil || urlRes.Host == "" {
		return nil, errors.New("can't parse url " + cfg.URL)
	}
	res.url = urlRes.String()
	if cfg.Key == "" {
		return nil, errors.New("no API key provided")
	}
	res.key = cfg.Key
	res.model = cfg.Model
	if res.model == "" {
		res.model = transcription.DefaultModel
	}
	if _, err := transcription.ParseModel(string(res.model)); err != nil {
		return nil, err
	}
	res.timeout = cfg.Timeout
	if res.timeout <= 0 {
		res.timeout = time.Minute
	}
	res.httpclient = retryablehttp.NewClient()
	res.httpclient.RetryMax = 3
	res.httpclient.Logger = nil
	return &res, nil
}

// Transcribe sends the audio file and parses the response by the request format
func (c *Client) Transcribe(ctx context.Context, req *transcription.Request) (*transcription.Result, error) {
	if req == nil {
		return nil, errors.New("no request provided")
	}
	file, err := os.Open(req.File())
	if err != nil {
		return nil, errors.Wrap(err, "can't open file "+req.File())
	}
	defer file.Close()

	body, contentType, err := c.makeBody(req, file)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.url, body)
	if err != nil {
		return nil, errors.Wrap(err, "can't prepare request")
	}
	httpReq.Header.Set("Content-Type", contentType)
	httpReq.Header.Set("Authorization", "Bearer "+c.key)

	rID := uuid.New().String()
	cmdapp.Log.Infof("Sending audio to %s, model: %s, format: %s, key: %s, requestID: %s",
		c.url, c.modelFor(req), req.Format(), utils.MaskKey(c.key), rID)

	resp, err := c.httpclient.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(err, "can't call transcription service")
	}
	defer resp.Body.Close()
	if err := utils.ValidateResponse(resp); err != nil {
		return nil, errors.Wrap(err, "transcription failed")
	}
	return parseResponse(resp.Body, req.Format())
}

func (c *Client) modelFor(req *transcription.Request) transcription.Model {
	if req.Model() != "" {
		return req.Model()
	}
	return c.model
}

func (c *Client) makeBody(req *transcription.Request, file io.Reader) (io.Reader, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filepath.Base(req.File()))
	if err != nil {
		return nil, "", errors.Wrap(err, "can't add file to request")
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, "", errors.Wrap(err, "can't add file to request")
	}
	writer.WriteField("model", string(c.modelFor(req)))
	writer.WriteField("response_format", string(req.Format()))
	if req.Language() != "" {
		writer.WriteField("language", req.Language())
	}
	if err := writer.Close(); err != nil {
		return nil, "", errors.Wrap(err, "can't close multipart writer")
	}
	return body, writer.FormDataContentType(), nil
}

func parseResponse(body io.Reader, format transcription.Format) (*transcription.Result, error) {
	if format == transcription.FormatText {
		b, err := io.ReadAll(body)
		if err != nil {
			return nil, errors.Wrap(err, "can't read response")
		}
		return &transcription.Result{Text: strings.TrimSpace(string(b))}, nil
	}
	var res transcription.Result
	if err := json.NewDecoder(body).Decode(&res); err != nil {
		return nil, errors.Wrap(err, "can't decode response")
	}
	return &res, nil
}
