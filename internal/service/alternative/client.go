package alternative

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MatthewLee0811/InvestPulse/internal/domain/models"
	xhttp "github.com/MatthewLee0811/InvestPulse/pkg/http"
	"github.com/MatthewLee0811/InvestPulse/pkg/util"
)

const defaultBaseURL = "https://api.alternative.me"

// Client fetches the crypto Fear & Greed index from alternative.me.
// The endpoint is keyless.
type Client struct {
	httpc   *xhttp.Client
	baseURL string
}

func New(httpc *xhttp.Client, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{httpc: httpc, baseURL: baseURL}
}

type fngResponse struct {
	Data []struct {
		Value               string `json:"value"`
		ValueClassification string `json:"value_classification"`
		Timestamp           string `json:"timestamp"`
	} `json:"data"`
}

// Fetch returns the latest index reading plus yesterday's value when the
// provider supplies it. An empty data array is an error; there is no
// meaningful zero reading to degrade to.
func (c *Client) Fetch(ctx context.Context) (models.SentimentReading, error) {
	var resp fngResponse
	err := c.httpc.GetJSON(ctx, c.baseURL+"/fng/", map[string]string{
		"limit": "2",
	}, nil, &resp)
	if err != nil {
		return models.SentimentReading{}, fmt.Errorf("fear greed index: %w", err)
	}
	if len(resp.Data) == 0 {
		return models.SentimentReading{}, fmt.Errorf("fear greed index: empty data")
	}

	latest := resp.Data[0]
	value, err := strconv.Atoi(latest.Value)
	if err != nil {
		return models.SentimentReading{}, fmt.Errorf("fear greed index: bad value %q", latest.Value)
	}

	// The provider stamps entries with unix seconds as a string.
	ts, _ := util.ParseTime(latest.Timestamp)
	reading := models.SentimentReading{
		Value:     value,
		Label:     latest.ValueClassification,
		LabelKo:   koLabel(latest.ValueClassification),
		Timestamp: ts.UTC(),
	}

	if len(resp.Data) > 1 {
		if prev, err := strconv.Atoi(resp.Data[1].Value); err == nil {
			reading.PreviousValue = &prev
			reading.PreviousLabel = resp.Data[1].ValueClassification
		}
	}
	return reading, nil
}

// koLabel localizes the crowd classification. Substring matching keeps it
// tolerant of provider casing; "extreme" variants must be checked first.
func koLabel(classification string) string {
	lower := strings.ToLower(classification)
	switch {
	case strings.Contains(lower, "extreme fear"):
		return "극심한 공포"
	case strings.Contains(lower, "extreme greed"):
		return "극심한 탐욕"
	case strings.Contains(lower, "fear"):
		return "공포"
	case strings.Contains(lower, "greed"):
		return "탐욕"
	default:
		return "중립"
	}
}
