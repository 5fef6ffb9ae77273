package anne

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"l4d2stats/internal/assert"
	"l4d2stats/internal/components/telemetry"
	"l4d2stats/internal/errcode"
	"l4d2stats/internal/playerid"
	"l4d2stats/internal/upstream"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	report_client_search_players = "client.search-players"
	report_client_player_detail  = "client.player-detail"
	report_client_resolve_name   = "client.resolve-name"
	report_client_top            = "client.top"
)

const (
	DefaultPlayerURL = "https://sb.trygek.com/l4d_stats/ranking/player.php"
	DefaultSearchURL = "https://sb.trygek.com/l4d_stats/ranking/search.php"
	DefaultRankURL   = "https://sb.trygek.com/l4d_stats/ranking/index.php"
	DefaultTopLimit  = 10
)

var tracer = otel.Tracer("l4d2stats/scrapers/anne")
var meter = otel.Meter("l4d2stats/scrapers/anne")

var lookupCounter, _ = meter.Int64Counter(
	"anne.lookups",
	metric.WithDescription("Lookups against the anne stats site by operation and outcome."),
)

type Options struct {
	PlayerURL string           `json:"player_url" env:"PLAYER_URL"`
	SearchURL string           `json:"search_url" env:"SEARCH_URL"`
	RankURL   string           `json:"rank_url" env:"RANK_URL"`
	TopLimit  int              `json:"top_limit" env:"TOP_LIMIT"`
	HTTP      upstream.Options `json:"http" envPrefix:"HTTP_"`
}

func (o Options) withDefaults() Options {
	if o.PlayerURL == "" {
		o.PlayerURL = DefaultPlayerURL
	}
	if o.SearchURL == "" {
		o.SearchURL = DefaultSearchURL
	}
	if o.RankURL == "" {
		o.RankURL = DefaultRankURL
	}
	if o.TopLimit <= 0 {
		o.TopLimit = DefaultTopLimit
	}
	return o
}

// Client looks players up on the anne server stats site. It keeps no state
// between calls and is safe for concurrent use.
type Client struct {
	http *upstream.Client
	opts Options
	tel  telemetry.API
}

func NewClient(opts Options, tel telemetry.API) (*Client, error) {
	assert.NotNil(tel, "telemetry")

	httpClient, err := upstream.NewClient(opts.HTTP, tel)
	if err != nil {
		return nil, err
	}
	return &Client{
		http: httpClient,
		opts: opts.withDefaults(),
		tel:  telemetry.NewScopedAPI("anne", tel),
	}, nil
}

func (c *Client) count(ctx context.Context, op string, err error) {
	result := "ok"
	if err != nil {
		result = errcode.KindOf(err).String()
	}
	lookupCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("op", op),
		attribute.String("result", result),
	))
}

func (c *Client) report(id string, err error, params ...any) {
	if errcode.KindOf(err) == errcode.KindStructuralParse {
		c.tel.ReportBroken(id, append([]any{err}, params...)...)
		return
	}
	c.tel.ReportWarning(id, append([]any{err}, params...)...)
}

// SearchPlayers returns up to SearchLimit players whose name matches keyword.
func (c *Client) SearchPlayers(ctx context.Context, keyword string) ([]SearchResult, error) {
	ctx, span := tracer.Start(ctx, "client:SearchPlayers")
	defer span.End()

	results, err := c.searchPlayers(ctx, keyword)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		c.report(report_client_search_players, err, keyword)
	} else {
		c.tel.ReportCount(report_client_search_players, int64(len(results)))
	}
	c.count(ctx, "search", err)
	return results, err
}

func (c *Client) searchPlayers(ctx context.Context, keyword string) ([]SearchResult, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, errcode.Caller(errcode.BadParams, fmt.Errorf("empty search keyword"))
	}
	markup, err := upstream.Markup(c.http.Do(ctx, upstream.Request{
		URL:    c.opts.SearchURL,
		Method: http.MethodPost,
		Form:   map[string]string{"search": keyword},
	}))
	if err != nil {
		return nil, err
	}
	return ParseSearchPage(markup)
}

// PlayerDetail fetches the full record of a player. identifier is either a
// steam id in any common form or a display name, names are resolved through
// a search first.
func (c *Client) PlayerDetail(ctx context.Context, identifier string) (PlayerRecord, error) {
	ctx, span := tracer.Start(ctx, "client:PlayerDetail")
	defer span.End()

	record, err := c.playerDetail(ctx, identifier)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		c.report(report_client_player_detail, err, identifier)
	}
	c.count(ctx, "player", err)
	return record, err
}

func (c *Client) playerDetail(ctx context.Context, identifier string) (PlayerRecord, error) {
	steamID, err := c.Resolve(ctx, identifier)
	if err != nil {
		return PlayerRecord{}, err
	}
	trace.SpanFromContext(ctx).SetAttributes(attribute.String("steam_id", steamID))

	markup, err := upstream.Markup(c.http.Do(ctx, upstream.Request{
		URL:    c.opts.PlayerURL,
		Params: map[string]string{"steamid": steamID},
	}))
	if err != nil {
		return PlayerRecord{}, err
	}
	return ParsePlayerPage(markup)
}

// Resolve turns identifier into the STEAM_1:y:z id the player page is keyed
// on. Names go through a search and the closest name wins.
func (c *Client) Resolve(ctx context.Context, identifier string) (string, error) {
	id, err := playerid.Parse(identifier)
	if err != nil {
		return "", err
	}
	if id.Kind == playerid.KindSteamID {
		return id.SteamID, nil
	}

	candidates, err := c.searchPlayers(ctx, id.Raw)
	if err != nil {
		return "", err
	}
	names := make([]string, len(candidates))
	for i, candidate := range candidates {
		names[i] = candidate.Name
	}
	best := playerid.BestMatch(id.Raw, names)
	if best < 0 {
		return "", errcode.Upstream(errcode.EmptyResult)
	}
	c.tel.ReportDebug(
		report_client_resolve_name,
		"name", id.Raw,
		"match", candidates[best].Name,
		"steam_id", candidates[best].SteamID,
	)
	return candidates[best].SteamID, nil
}

// Top returns the first TopLimit rows of the coop ranking.
func (c *Client) Top(ctx context.Context) ([]SearchResult, error) {
	ctx, span := tracer.Start(ctx, "client:Top")
	defer span.End()

	markup, err := upstream.Markup(c.http.Do(ctx, upstream.Request{
		URL:    c.opts.RankURL,
		Params: map[string]string{"type": "coop"},
	}))
	var results []SearchResult
	if err == nil {
		results, err = ParseRankPage(markup, c.opts.TopLimit)
	}
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		c.report(report_client_top, err)
	}
	c.count(ctx, "top", err)
	return results, err
}
