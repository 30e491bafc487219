package transport

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rpggio/resiliency/internal/domain/activity"
	"github.com/rpggio/resiliency/internal/domain/filter"
	"github.com/rpggio/resiliency/internal/domain/greenpath"
	"github.com/rpggio/resiliency/internal/domain/technology"
)

// filtersFromQuery reads the shareable-link parameters of a request.
func filtersFromQuery(r *http.Request) filter.State {
	return filter.Decode(r.URL.RawQuery)
}

func recordSort(r *http.Request) (technology.SortKey, technology.Direction, error) {
	key, err := technology.ParseSortKey(r.URL.Query().Get("sort"))
	if err != nil {
		return "", "", fmt.Errorf("%w: %q", err, r.URL.Query().Get("sort"))
	}
	return key, technology.ParseDirection(r.URL.Query().Get("dir")), nil
}

func summarySort(r *http.Request) (greenpath.SummaryKey, technology.Direction, error) {
	key, err := greenpath.ParseSummaryKey(r.URL.Query().Get("sort"))
	if err != nil {
		return "", "", err
	}
	return key, technology.ParseDirection(r.URL.Query().Get("dir")), nil
}

// recommendationSort keeps the plan's own order when no sort is given.
func recommendationSort(r *http.Request) (greenpath.RecommendationKey, technology.Direction, error) {
	raw := r.URL.Query().Get("sort")
	dir := technology.ParseDirection(r.URL.Query().Get("dir"))
	if raw == "" {
		return "", dir, nil
	}
	key, err := greenpath.ParseRecommendationKey(raw)
	if err != nil {
		return "", "", err
	}
	return key, dir, nil
}

func activityOptions(r *http.Request) activity.ListActivityOptions {
	q := r.URL.Query()
	opts := activity.ListActivityOptions{
		Limit:  intParam(q, "limit"),
		Offset: intParam(q, "offset"),
	}
	if v := q.Get("session"); v != "" {
		opts.SessionID = &v
	}
	if v := q.Get("record"); v != "" {
		opts.RecordID = &v
	}
	if v := q.Get("type"); v != "" {
		kind := activity.ActivityType(v)
		opts.ActivityType = &kind
	}
	return opts
}

func intParam(q url.Values, name string) int {
	v, err := strconv.Atoi(q.Get(name))
	if err != nil {
		return 0
	}
	return v
}

// pathParam returns a decoded URL parameter. Installation names carry
// spaces and punctuation.
func pathParam(r *http.Request, name string) string {
	raw := chi.URLParam(r, name)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}
