package pubmed

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rsharda/medreview/internal/cache"
	"github.com/rsharda/medreview/internal/model"
	"github.com/rsharda/medreview/internal/worker"
)

// DefaultBaseURL is the NCBI E-utilities endpoint
const DefaultBaseURL = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"

// NCBI allows 3 requests/second without an API key and 10/second with one.
const (
	rateWithoutKey = 3.0
	rateWithKey    = 10.0
)

// Client searches the PubMed database via ESearch/EFetch. Search is
// fail-open: transient network or parse failures yield an empty result so
// the resolver can proceed to an UNSUBSTANTIATED determination instead of
// aborting the whole report.
type Client struct {
	baseURL      string
	apiKey       string
	searchClient *http.Client
	fetchClient  *http.Client
	limiter      *worker.Limiter
	fetchCache   cache.Cache // Optional; memoizes EFetch bodies across overlapping queries
}

// NewClient creates a PubMed client. apiKey may be empty; fetchCache may be
// nil to disable fetch-body caching.
func NewClient(cfg model.PubMedConfig, fetchCache cache.Cache) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	searchTimeout := cfg.SearchTimeout
	if searchTimeout == 0 {
		searchTimeout = 10 * time.Second
	}
	fetchTimeout := cfg.FetchTimeout
	if fetchTimeout == 0 {
		fetchTimeout = 15 * time.Second
	}

	rps := rateWithoutKey
	if cfg.APIKey != "" {
		rps = rateWithKey
	}

	return &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		apiKey:       cfg.APIKey,
		searchClient: &http.Client{Timeout: searchTimeout},
		fetchClient:  &http.Client{Timeout: fetchTimeout},
		limiter:      worker.NewLimiter(rps, 1),
		fetchCache:   fetchCache,
	}
}

// Search finds up to maxResults articles matching query, published within the
// last years years, and fetches their full records in a single batch request.
// External failures are logged and degrade to an empty result; an error is
// returned only for invalid arguments.
func (c *Client) Search(ctx context.Context, query string, maxResults, years int) ([]model.Article, error) {
	if maxResults <= 0 {
		return nil, fmt.Errorf("pubmed: maxResults must be positive, got %d", maxResults)
	}
	if years <= 0 {
		return nil, fmt.Errorf("pubmed: years must be positive, got %d", years)
	}

	pmids := c.search(ctx, query, maxResults, years)
	if len(pmids) == 0 {
		return nil, nil
	}
	return c.fetchArticles(ctx, pmids), nil
}

// esearchResponse is the JSON envelope returned by esearch.fcgi
type esearchResponse struct {
	Result struct {
		IDList []string `json:"idlist"`
	} `json:"esearchresult"`
}

// search runs the ESearch step and returns matching PMIDs
func (c *Client) search(ctx context.Context, query string, maxResults, years int) []string {
	params := url.Values{}
	params.Set("db", "pubmed")
	params.Set("term", query)
	params.Set("retmax", strconv.Itoa(maxResults))
	params.Set("retmode", "json")
	params.Set("datetype", "pdat")
	params.Set("reldate", strconv.Itoa(years*365))
	if c.apiKey != "" {
		params.Set("api_key", c.apiKey)
	}

	body, err := c.get(ctx, c.searchClient, c.baseURL+"/esearch.fcgi", params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: PubMed search error: %v\n", err)
		return nil
	}

	var resp esearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: PubMed search parse error: %v\n", err)
		return nil
	}
	return resp.Result.IDList
}

// fetchArticles runs the EFetch step for all PMIDs in one batch request
func (c *Client) fetchArticles(ctx context.Context, pmids []string) []model.Article {
	ids := strings.Join(pmids, ",")

	var key string
	if c.fetchCache != nil {
		key = cache.Key("efetch:" + ids)
		if body, found := c.fetchCache.Get(key); found {
			return parseArticles(body)
		}
	}

	params := url.Values{}
	params.Set("db", "pubmed")
	params.Set("id", ids)
	params.Set("retmode", "xml")
	if c.apiKey != "" {
		params.Set("api_key", c.apiKey)
	}

	body, err := c.get(ctx, c.fetchClient, c.baseURL+"/efetch.fcgi", params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: PubMed fetch error: %v\n", err)
		return nil
	}

	articles := parseArticles(body)
	if c.fetchCache != nil && len(articles) > 0 {
		_ = c.fetchCache.Set(key, body, 0) // Default TTL
	}
	return articles
}

// get issues a rate-limited GET and returns the response body
func (c *Client) get(ctx context.Context, client *http.Client, endpoint string, params url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx, endpoint); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}

// PubMed EFetch XML structures. Fields are individually optional; a missing
// title/journal/year degrades to an empty value rather than failing the record.
type efetchResult struct {
	XMLName  xml.Name        `xml:"PubmedArticleSet"`
	Articles []pubmedArticle `xml:"PubmedArticle"`
}

type pubmedArticle struct {
	PMID          string         `xml:"MedlineCitation>PMID"`
	Title         string         `xml:"MedlineCitation>Article>ArticleTitle"`
	Authors       []pubmedAuthor `xml:"MedlineCitation>Article>AuthorList>Author"`
	Journal       string         `xml:"MedlineCitation>Article>Journal>Title"`
	Year          string         `xml:"MedlineCitation>Article>Journal>JournalIssue>PubDate>Year"`
	MedlineDate   string         `xml:"MedlineCitation>Article>Journal>JournalIssue>PubDate>MedlineDate"`
	AbstractParts []string       `xml:"MedlineCitation>Article>Abstract>AbstractText"`
}

type pubmedAuthor struct {
	LastName string `xml:"LastName"`
	ForeName string `xml:"ForeName"`
}

// parseArticles decodes an EFetch XML body into article records
func parseArticles(body []byte) []model.Article {
	var result efetchResult
	if err := xml.Unmarshal(body, &result); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: PubMed XML parse error: %v\n", err)
		return nil
	}

	articles := make([]model.Article, 0, len(result.Articles))
	for _, a := range result.Articles {
		var authors []string
		for _, author := range a.Authors {
			if author.LastName == "" {
				continue
			}
			name := author.LastName
			if author.ForeName != "" {
				name = author.ForeName + " " + name
			}
			authors = append(authors, name)
			if len(authors) == model.MaxArticleAuthors {
				break
			}
		}

		var parts []string
		for _, p := range a.AbstractParts {
			if s := strings.TrimSpace(p); s != "" {
				parts = append(parts, s)
			}
		}

		articles = append(articles, model.Article{
			PMID:     strings.TrimSpace(a.PMID),
			Title:    strings.TrimSpace(a.Title),
			Authors:  authors,
			Journal:  strings.TrimSpace(a.Journal),
			Year:     parseYear(a.Year, a.MedlineDate),
			Abstract: strings.Join(parts, " "),
		})
	}
	return articles
}

// parseYear resolves the publication year, falling back to the MedlineDate
// prefix and then to the current year so recency boosting stays well-defined.
func parseYear(year, medlineDate string) string {
	year = strings.TrimSpace(year)
	if len(year) >= 4 {
		if _, err := strconv.Atoi(year[:4]); err == nil {
			return year[:4]
		}
	}
	medlineDate = strings.TrimSpace(medlineDate)
	if len(medlineDate) >= 4 {
		if _, err := strconv.Atoi(medlineDate[:4]); err == nil {
			return medlineDate[:4]
		}
	}
	return strconv.Itoa(nowFunc().Year())
}
