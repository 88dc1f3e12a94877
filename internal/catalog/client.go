package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"runtime"
	"time"

	"github.com/project/bookshelf/internal/entity"
	"github.com/project/bookshelf/pkg/logger"
	"go.uber.org/zap"
)

const (
	dialerTimeoutSeconds                  = 30
	dialerKeepAliveSeconds                = 180
	transportMaxIdleConns                 = 100
	transportIdleConnTimeoutSeconds       = 90
	transportTLSHandshakeTimeoutSeconds   = 15
	transportExpectContinueTimeoutSeconds = 2
)

var ErrNoResults = errors.New("catalog search returned no results")

type Client struct {
	logger  *zap.Logger
	client  *http.Client
	baseURL string
	apiKey  string
}

func New(log *zap.Logger, baseURL, apiKey string, timeout time.Duration) *Client {
	dialer := &net.Dialer{
		Timeout:   dialerTimeoutSeconds * time.Second,
		KeepAlive: dialerKeepAliveSeconds * time.Second,
	}

	transport := &http.Transport{
		DialContext:           dialer.DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          transportMaxIdleConns,
		IdleConnTimeout:       transportIdleConnTimeoutSeconds * time.Second,
		TLSHandshakeTimeout:   transportTLSHandshakeTimeoutSeconds * time.Second,
		ExpectContinueTimeout: transportExpectContinueTimeoutSeconds * time.Second,
		MaxIdleConnsPerHost:   runtime.GOMAXPROCS(0) + 1,
	}

	return &Client{
		logger: log,
		client: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// volumesResponse mirrors the wire shape of the external volumes API.
type volumesResponse struct {
	Items []struct {
		VolumeInfo struct {
			Title         string   `json:"title"`
			PublishedDate string   `json:"publishedDate"`
			PageCount     int      `json:"pageCount"`
			AverageRating float64  `json:"averageRating"`
			Language      string   `json:"language"`
			Description   string   `json:"description"`
			Authors       []string `json:"authors"`
		} `json:"volumeInfo"`
	} `json:"items"`
}

// Search queries the external catalog by title, narrowed by author surname
// when one is given (the `inauthor:` operator). An empty result set is
// ErrNoResults, callers must not hand an empty match to the shelf engine.
func (c *Client) Search(ctx context.Context, title, authorSurname string) ([]entity.Volume, error) {
	q := url.QueryEscape(title)
	if authorSurname != "" {
		q += "+inauthor:" + url.QueryEscape(authorSurname)
	}

	requestURL := c.baseURL + "?q=" + q
	if c.apiKey != "" {
		requestURL += "&key=" + url.QueryEscape(c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)

	if err != nil {
		return nil, fmt.Errorf("can not build catalog request: %w", err)
	}

	response, err := c.client.Do(req)

	if logger.CheckError(err, c.logger, "catalog request failed", zap.Error(err)) {
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}

	defer response.Body.Close()

	if response.StatusCode/100 != 2 {
		return nil, fmt.Errorf("catalog responded with status %d", response.StatusCode)
	}

	var decoded volumesResponse
	if err = json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("can not decode catalog response: %w", err)
	}

	if len(decoded.Items) == 0 {
		return nil, ErrNoResults
	}

	volumes := make([]entity.Volume, 0, len(decoded.Items))
	for _, item := range decoded.Items {
		volumes = append(volumes, entity.Volume{
			Title:         item.VolumeInfo.Title,
			PublishedDate: item.VolumeInfo.PublishedDate,
			PageCount:     item.VolumeInfo.PageCount,
			AverageRating: item.VolumeInfo.AverageRating,
			Language:      item.VolumeInfo.Language,
			Description:   item.VolumeInfo.Description,
			Authors:       item.VolumeInfo.Authors,
		})
	}

	logger.MakeInfo(c.logger, "catalog search done",
		zap.String("title", title),
		zap.String("author_surname", authorSurname),
		zap.Int("results", len(volumes)))

	return volumes, nil
}
